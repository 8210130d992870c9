package interpreter

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rhino1998/lazyreg/pkg/registers"
	"github.com/rhino1998/lazyreg/pkg/value"
)

type Status int

const (
	StatusRunning Status = iota
	StatusHalted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHalted:
		return "halted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// HandleCommands runs commands against a fresh register table and returns one
// output per PRINT executed before the first QUIT. A command that fails stops
// processing the same way QUIT does; the failure is logged.
func HandleCommands(commands []Command) []string {
	logger := slog.Default()

	state, err := New(logger, Config{})
	if err != nil {
		logger.Error("failed to initialize interpreter", "error", err)
		return []string{}
	}

	outputs, err := state.Execute(commands)
	if err != nil {
		logger.Warn("command sequence stopped early", "error", err)
	}

	return outputs
}

// State is a dispatcher over a register table. It may execute several
// batches of commands until a QUIT halts it. Command indexes count from the
// first command of the first batch.
type State struct {
	logger *slog.Logger
	config Config

	table  *registers.Table
	status Status
	index  int
}

func New(logger *slog.Logger, config Config) (*State, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate interpreter config: %w", err)
	}

	return &State{
		logger: logger,
		config: config,
		table:  registers.NewTable(value.NewArena(config.MaxChain)),
		status: StatusRunning,
	}, nil
}

func (s *State) Status() Status {
	return s.status
}

func (s *State) Registers() *registers.Table {
	return s.table
}

// Execute runs commands in order and returns the outputs of every PRINT run
// before a QUIT or a failing command. On failure the outputs gathered so far
// are returned alongside a *CommandError.
func (s *State) Execute(commands []Command) ([]string, error) {
	if s.status == StatusHalted {
		return nil, ErrHalted
	}

	outputs := []string{}

	for _, cmd := range commands {
		index := s.index
		s.index++

		s.logger.Debug("executing command", "index", index, "command", cmd)

		if _, ok := cmd.(Quit); ok {
			s.status = StatusHalted
			s.logger.Debug("halted", "index", index, "outputs", len(outputs))
			return outputs, nil
		}

		output, ok, err := s.executeCommand(index, cmd)
		if err != nil {
			return outputs, &CommandError{Index: index, Command: cmd, Err: err}
		}

		if ok {
			outputs = append(outputs, output)
		}
	}

	return outputs, nil
}

func (s *State) executeCommand(index int, cmd Command) (string, bool, error) {
	switch cmd := cmd.(type) {
	case Print:
		h, ok := s.table.Lookup(cmd.Register)
		if !ok {
			return fmt.Sprintf("Register %s was uninitialized when command PRINT with index %d was executed.", cmd.Register, index), true, nil
		}

		total, err := s.table.Arena().Total(h)
		if err != nil {
			return "", false, err
		}

		return strconv.FormatInt(total, 10), true, nil
	case Add:
		return "", false, s.update(cmd.Register, func(n int64) int64 { return n + cmd.Delta })
	case Subtract:
		return "", false, s.update(cmd.Register, func(n int64) int64 { return n - cmd.Delta })
	case Multiply:
		return "", false, s.update(cmd.Register, func(n int64) int64 { return n * cmd.Factor })
	case LazyAdd:
		target := s.table.Resolve(cmd.Target)
		source := s.table.Resolve(cmd.Source)

		err := s.table.Arena().Link(target, source)
		if err != nil {
			return "", false, fmt.Errorf("failed to link %s to %s: %w", cmd.Target, cmd.Source, err)
		}

		return "", false, nil
	default:
		return "", false, fmt.Errorf("unhandled command type: %T", cmd)
	}
}

func (s *State) update(register string, f func(int64) int64) error {
	node, err := s.table.Arena().Node(s.table.Resolve(register))
	if err != nil {
		return err
	}

	node.Number = f(node.Number)
	return nil
}
