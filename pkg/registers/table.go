package registers

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rhino1998/lazyreg/pkg/topological"
	"github.com/rhino1998/lazyreg/pkg/value"
)

// Table maps register names to nodes in an arena. Several names may hold the
// same handle.
type Table struct {
	arena *value.Arena
	names map[string]value.Handle
}

func NewTable(arena *value.Arena) *Table {
	return &Table{
		arena: arena,
		names: make(map[string]value.Handle),
	}
}

func (t *Table) Arena() *value.Arena {
	return t.arena
}

func (t *Table) Len() int {
	return len(t.names)
}

// Resolve returns the handle for name, allocating a zeroed node the first
// time name is seen.
func (t *Table) Resolve(name string) value.Handle {
	h, ok := t.names[name]
	if ok {
		return h
	}

	h = t.arena.Alloc()
	t.names[name] = h
	return h
}

// Lookup returns the handle for name without creating one.
func (t *Table) Lookup(name string) (value.Handle, bool) {
	h, ok := t.names[name]
	return h, ok
}

func (t *Table) Names() []string {
	names := slices.Collect(maps.Keys(t.names))
	slices.Sort(names)
	return names
}

func (t *Table) Total(name string) (int64, error) {
	h, ok := t.names[name]
	if !ok {
		return 0, fmt.Errorf("no such register %q", name)
	}

	return t.arena.Total(h)
}

// Order lists register names so that each register comes after every
// register whose node its own node links to directly.
func (t *Table) Order() ([]string, error) {
	holders := make(map[value.Handle][]string)
	for name, h := range t.names {
		holders[h] = append(holders[h], name)
	}

	var lookupErr error
	order, err := topological.Sort(t.Names(), func(name string) []string {
		node, err := t.arena.Node(t.names[name])
		if err != nil {
			lookupErr = err
			return nil
		}

		next := node.Next()
		if next == value.Nil {
			return nil
		}

		return holders[next]
	})
	if err != nil {
		return nil, fmt.Errorf("failed to order registers: %w", err)
	}

	if lookupErr != nil {
		return nil, fmt.Errorf("failed to order registers: %w", lookupErr)
	}

	return order, nil
}
