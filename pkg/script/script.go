// Package script reads and writes command lists as YAML.
//
// A script is a sequence of mappings, one per command:
//
//	- op: add
//	  register: A
//	  value: 10
//	- op: lazy_add
//	  target: B
//	  source: A
//	- op: print
//	  register: B
//	- op: quit
package script

import (
	"errors"
	"fmt"
	"io"

	"github.com/rhino1998/lazyreg/pkg/interpreter"
	"gopkg.in/yaml.v3"
)

const (
	OpQuit     = "quit"
	OpPrint    = "print"
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpLazyAdd  = "lazy_add"
)

type entry struct {
	Op       string `yaml:"op"`
	Register string `yaml:"register,omitempty"`
	Value    int64  `yaml:"value,omitempty"`
	Target   string `yaml:"target,omitempty"`
	Source   string `yaml:"source,omitempty"`
}

// DecodeError reports a malformed entry by its position in the script.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func Decode(r io.Reader) ([]interpreter.Command, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var entries []entry
	err := decoder.Decode(&entries)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	commands := make([]interpreter.Command, 0, len(entries))
	for i, e := range entries {
		cmd, err := e.command()
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

func (e entry) command() (interpreter.Command, error) {
	switch e.Op {
	case OpQuit:
		return interpreter.Quit{}, nil
	case OpPrint:
		if e.Register == "" {
			return nil, fmt.Errorf("%s requires a register", e.Op)
		}
		return interpreter.Print{Register: e.Register}, nil
	case OpAdd, OpSubtract, OpMultiply:
		if e.Register == "" {
			return nil, fmt.Errorf("%s requires a register", e.Op)
		}

		switch e.Op {
		case OpAdd:
			return interpreter.Add{Register: e.Register, Delta: e.Value}, nil
		case OpSubtract:
			return interpreter.Subtract{Register: e.Register, Delta: e.Value}, nil
		default:
			return interpreter.Multiply{Register: e.Register, Factor: e.Value}, nil
		}
	case OpLazyAdd:
		if e.Target == "" || e.Source == "" {
			return nil, fmt.Errorf("%s requires a target and a source", e.Op)
		}
		return interpreter.LazyAdd{Target: e.Target, Source: e.Source}, nil
	case "":
		return nil, fmt.Errorf("missing op")
	default:
		return nil, fmt.Errorf("unknown op %q", e.Op)
	}
}

func Encode(w io.Writer, commands []interpreter.Command) error {
	entries := make([]entry, 0, len(commands))
	for i, cmd := range commands {
		var e entry
		switch cmd := cmd.(type) {
		case interpreter.Quit:
			e = entry{Op: OpQuit}
		case interpreter.Print:
			e = entry{Op: OpPrint, Register: cmd.Register}
		case interpreter.Add:
			e = entry{Op: OpAdd, Register: cmd.Register, Value: cmd.Delta}
		case interpreter.Subtract:
			e = entry{Op: OpSubtract, Register: cmd.Register, Value: cmd.Delta}
		case interpreter.Multiply:
			e = entry{Op: OpMultiply, Register: cmd.Register, Value: cmd.Factor}
		case interpreter.LazyAdd:
			e = entry{Op: OpLazyAdd, Target: cmd.Target, Source: cmd.Source}
		default:
			return fmt.Errorf("entry %d: unhandled command type: %T", i, cmd)
		}

		entries = append(entries, e)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(entries)
	if err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}

	return encoder.Close()
}
