package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rhino1998/lazyreg/pkg/interpreter"
	"github.com/rhino1998/lazyreg/pkg/script"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var demoCommands = []interpreter.Command{
	interpreter.Add{Register: "A", Delta: 1},
	interpreter.Add{Register: "B", Delta: 5},
	interpreter.LazyAdd{Target: "A", Source: "B"},
	interpreter.Add{Register: "B", Delta: 5},
	interpreter.Print{Register: "A"},
	interpreter.Print{Register: "B"},
	interpreter.Print{Register: "C"},
	interpreter.Quit{},
	interpreter.Print{Register: "A"},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := func() []cli.Flag {
		return []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "log every command to stderr",
			},
			&cli.IntFlag{
				Name:  "max-chain",
				Usage: "fail totals that visit more than this many nodes (0 for no limit)",
			},
			&cli.BoolFlag{
				Name:    "registers",
				Aliases: []string{"r"},
				Usage:   "print every register total after the outputs",
			},
		}
	}

	cmd := &cli.Command{
		Name:  "lazyreg",
		Usage: "Run register commands with lazily linked values",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Run the built-in demonstration commands",
				Flags: flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					return execute(newLogger(c.Bool("debug")), os.Stdout, demoCommands, configFromFlags(c), c.Bool("registers"))
				},
			},
			{
				Name:      "run",
				Usage:     "Run a YAML command script from a file or stdin",
				ArgsUsage: "[script.yaml]",
				Flags:     flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() > 1 {
						return fmt.Errorf("expected at most one script file")
					}

					var in io.Reader
					if c.Args().Len() == 1 {
						f, err := os.Open(c.Args().First())
						if err != nil {
							return fmt.Errorf("failed to open script: %w", err)
						}
						defer f.Close()

						in = f
					} else {
						if term.IsTerminal(int(os.Stdin.Fd())) {
							return fmt.Errorf("no script file given and stdin is a terminal")
						}

						in = os.Stdin
					}

					commands, err := script.Decode(in)
					if err != nil {
						return err
					}

					return execute(newLogger(c.Bool("debug")), os.Stdout, commands, configFromFlags(c), c.Bool("registers"))
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func configFromFlags(c *cli.Command) interpreter.Config {
	return interpreter.Config{
		MaxChain: int(c.Int("max-chain")),
	}
}

// execute writes one line per output. Outputs produced before a failing
// command are still written.
func execute(logger *slog.Logger, w io.Writer, commands []interpreter.Command, config interpreter.Config, dumpRegisters bool) error {
	state, err := interpreter.New(logger, config)
	if err != nil {
		return fmt.Errorf("failed to initialize interpreter: %w", err)
	}

	outputs, execErr := state.Execute(commands)
	for _, output := range outputs {
		fmt.Fprintln(w, output)
	}

	if execErr != nil {
		return execErr
	}

	if !dumpRegisters {
		return nil
	}

	table := state.Registers()
	order, err := table.Order()
	if err != nil {
		return err
	}

	for _, name := range order {
		total, err := table.Total(name)
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}

		fmt.Fprintf(w, "%s = %d\n", name, total)
	}

	return nil
}
