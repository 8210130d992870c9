package value

import (
	"errors"
	"fmt"
)

var (
	ErrCycleDetected = errors.New("cycle detected")
	ErrChainTooLong  = errors.New("chain too long")
	ErrInvalidHandle = errors.New("invalid handle")
)

// Handle addresses a Node inside an Arena. The zero Handle is Nil and never
// refers to a node.
type Handle int

const Nil Handle = 0

func (h Handle) String() string {
	if h == Nil {
		return "nil"
	}

	return fmt.Sprintf("node%02x", int(h))
}

type Node struct {
	Number int64
	next   Handle
}

func (n *Node) Next() Handle {
	return n.next
}

// Arena owns every node. Nodes are never freed, so a handle stays valid for
// the lifetime of the arena no matter how many registers hold it.
type Arena struct {
	nodes    []Node
	maxChain int
}

// NewArena returns an empty arena. maxChain bounds the number of nodes a
// single Total may visit; 0 means unbounded.
func NewArena(maxChain int) *Arena {
	return &Arena{
		maxChain: maxChain,
	}
}

func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) Alloc() Handle {
	a.nodes = append(a.nodes, Node{})
	return Handle(len(a.nodes))
}

func (a *Arena) Node(h Handle) (*Node, error) {
	if h <= Nil || int(h) > len(a.nodes) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}

	return &a.nodes[h-1], nil
}

// Link points from's next at to. The node is shared, not copied. Linking is
// refused if to already reaches from, since the chain would loop.
func (a *Arena) Link(from, to Handle) error {
	node, err := a.Node(from)
	if err != nil {
		return err
	}

	reaches, err := a.Reaches(to, from)
	if err != nil {
		return err
	}

	if reaches {
		return fmt.Errorf("%w: linking %s to %s", ErrCycleDetected, from, to)
	}

	node.next = to
	return nil
}

// Reaches reports whether target is start or is reachable from start by
// following next links.
func (a *Arena) Reaches(start, target Handle) (bool, error) {
	found := false
	err := a.walk(start, func(h Handle, _ *Node) {
		if h == target {
			found = true
		}
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// Chain returns the handles visited when walking from h, h first.
func (a *Arena) Chain(h Handle) ([]Handle, error) {
	var chain []Handle
	err := a.walk(h, func(h Handle, _ *Node) {
		chain = append(chain, h)
	})
	if err != nil {
		return nil, err
	}

	return chain, nil
}

// Total sums the numbers of every node reachable from h. Totals are computed
// at call time from live nodes and never cached.
func (a *Arena) Total(h Handle) (int64, error) {
	var total int64
	err := a.walk(h, func(_ Handle, n *Node) {
		total += n.Number
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (a *Arena) walk(h Handle, visit func(Handle, *Node)) error {
	visited := make(map[Handle]struct{})

	for cur := h; cur != Nil; {
		if _, ok := visited[cur]; ok {
			return fmt.Errorf("%w: %s revisited while walking from %s", ErrCycleDetected, cur, h)
		}

		if a.maxChain > 0 && len(visited) >= a.maxChain {
			return fmt.Errorf("%w: more than %d nodes from %s", ErrChainTooLong, a.maxChain, h)
		}

		node, err := a.Node(cur)
		if err != nil {
			return err
		}

		visited[cur] = struct{}{}
		visit(cur, node)
		cur = node.next
	}

	return nil
}
