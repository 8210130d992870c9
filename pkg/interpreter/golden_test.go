package interpreter_test

import (
	"bytes"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/lazyreg/pkg/interpreter"
	"github.com/rhino1998/lazyreg/pkg/script"
	"github.com/stretchr/testify/require"
)

func TestScripts(t *testing.T) {
	t.Parallel()

	dir := os.DirFS("./testdata/")
	testFiles, err := fs.Glob(dir, "*.txt")
	if err != nil {
		t.Fatal(err)
	}

	for _, testFile := range testFiles {
		name := strings.Split(testFile, ".")[0]
		t.Run(name, func(t *testing.T) {
			r := require.New(t)
			logger := slogt.New(t)

			testData, err := fs.ReadFile(dir, testFile)
			r.NoError(err)

			parts := bytes.SplitN(testData, []byte("\n---\n"), 2)
			r.Len(parts, 2)
			source := bytes.TrimSpace(parts[0])
			expected := strings.TrimSpace(string(parts[1]))

			commands, err := script.Decode(bytes.NewReader(source))
			r.NoError(err)

			state, err := interpreter.New(logger, interpreter.Config{})
			r.NoError(err)

			outputs, err := state.Execute(commands)
			r.NoError(err)

			result := strings.TrimSpace(strings.Join(outputs, "\n"))
			r.Equal(expected, result)
		})
	}
}
