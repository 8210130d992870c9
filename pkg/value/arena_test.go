package value_test

import (
	"testing"

	"github.com/rhino1998/lazyreg/pkg/value"
	"github.com/stretchr/testify/require"
)

func TestArena_TotalSingle(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	h := a.Alloc()
	n, err := a.Node(h)
	r.NoError(err)
	n.Number = 7

	total, err := a.Total(h)
	r.NoError(err)
	r.Equal(int64(7), total)
}

func TestArena_LinkShares(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	x := a.Alloc()
	y := a.Alloc()

	xn, err := a.Node(x)
	r.NoError(err)
	xn.Number = 1

	yn, err := a.Node(y)
	r.NoError(err)
	yn.Number = 5

	r.NoError(a.Link(x, y))

	yn.Number = 10

	total, err := a.Total(x)
	r.NoError(err)
	r.Equal(int64(11), total)
}

func TestArena_Chain(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	x, y, z := a.Alloc(), a.Alloc(), a.Alloc()
	r.NoError(a.Link(y, z))
	r.NoError(a.Link(x, y))

	chain, err := a.Chain(x)
	r.NoError(err)
	r.Equal([]value.Handle{x, y, z}, chain)
}

func TestArena_LinkRejectsCycle(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	x, y := a.Alloc(), a.Alloc()
	r.NoError(a.Link(x, y))

	err := a.Link(y, x)
	r.ErrorIs(err, value.ErrCycleDetected)

	err = a.Link(x, x)
	r.ErrorIs(err, value.ErrCycleDetected)

	yn, err := a.Node(y)
	r.NoError(err)
	r.Equal(value.Nil, yn.Next())
}

func TestArena_Relink(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	x, y, z := a.Alloc(), a.Alloc(), a.Alloc()
	r.NoError(a.Link(x, y))
	r.NoError(a.Link(x, z))

	zn, err := a.Node(z)
	r.NoError(err)
	zn.Number = 3

	yn, err := a.Node(y)
	r.NoError(err)
	yn.Number = 100

	total, err := a.Total(x)
	r.NoError(err)
	r.Equal(int64(3), total)
}

func TestArena_MaxChain(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(2)

	x, y, z := a.Alloc(), a.Alloc(), a.Alloc()
	r.NoError(a.Link(x, y))

	_, err := a.Total(x)
	r.NoError(err)

	err = a.Link(y, z)
	r.NoError(err)

	_, err = a.Total(x)
	r.ErrorIs(err, value.ErrChainTooLong)
}

func TestArena_InvalidHandle(t *testing.T) {
	r := require.New(t)
	a := value.NewArena(0)

	_, err := a.Node(value.Nil)
	r.ErrorIs(err, value.ErrInvalidHandle)

	_, err = a.Total(value.Handle(3))
	r.ErrorIs(err, value.ErrInvalidHandle)

	total, err := a.Total(value.Nil)
	r.NoError(err)
	r.Zero(total)
}
