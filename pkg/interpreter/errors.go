package interpreter

import (
	"errors"
	"fmt"
)

var ErrHalted = errors.New("interpreter halted")

// CommandError reports the command that stopped execution and its index in
// the command sequence.
type CommandError struct {
	Index   int
	Command Command
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %d (%s): %v", e.Index, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
