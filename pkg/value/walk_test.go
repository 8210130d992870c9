package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotal_Cycle(t *testing.T) {
	r := require.New(t)
	a := NewArena(0)

	x, y := a.Alloc(), a.Alloc()
	a.nodes[x-1].next = y
	a.nodes[y-1].next = x

	_, err := a.Total(x)
	r.ErrorIs(err, ErrCycleDetected)

	_, err = a.Chain(y)
	r.ErrorIs(err, ErrCycleDetected)
}

func TestTotal_SelfLoop(t *testing.T) {
	r := require.New(t)
	a := NewArena(0)

	x := a.Alloc()
	a.nodes[x-1].next = x

	_, err := a.Total(x)
	r.ErrorIs(err, ErrCycleDetected)
}

func TestTotal_LongChain(t *testing.T) {
	r := require.New(t)
	a := NewArena(0)

	const n = 100000
	head := a.Alloc()
	a.nodes[head-1].Number = 1
	prev := head
	for range n - 1 {
		h := a.Alloc()
		a.nodes[h-1].Number = 1
		a.nodes[prev-1].next = h
		prev = h
	}

	total, err := a.Total(head)
	r.NoError(err)
	r.Equal(int64(n), total)
}
