package interpreter

import "fmt"

// Command is one instruction for the dispatcher. The set of commands is
// closed.
type Command interface {
	fmt.Stringer
	command()
}

type Quit struct{}

type Print struct {
	Register string
}

type Add struct {
	Register string
	Delta    int64
}

type Subtract struct {
	Register string
	Delta    int64
}

type Multiply struct {
	Register string
	Factor   int64
}

// LazyAdd links Target's node to Source's node. Later changes to Source are
// seen by Target.
type LazyAdd struct {
	Target string
	Source string
}

func (Quit) command()     {}
func (Print) command()    {}
func (Add) command()      {}
func (Subtract) command() {}
func (Multiply) command() {}
func (LazyAdd) command()  {}

func (Quit) String() string {
	return "QUIT"
}

func (c Print) String() string {
	return fmt.Sprintf("PRINT %s", c.Register)
}

func (c Add) String() string {
	return fmt.Sprintf("ADD %s %d", c.Register, c.Delta)
}

func (c Subtract) String() string {
	return fmt.Sprintf("SUBTRACT %s %d", c.Register, c.Delta)
}

func (c Multiply) String() string {
	return fmt.Sprintf("MULTIPLY %s %d", c.Register, c.Factor)
}

func (c LazyAdd) String() string {
	return fmt.Sprintf("LAZYADD %s %s", c.Target, c.Source)
}
