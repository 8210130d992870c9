package topological

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

var ErrCycleDetected = errors.New("cycle detected")

// CycleError reports the keys that form a dependency cycle, in walk order,
// with the first key repeated at the end.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}

const (
	unvisited = iota
	visiting
	done
)

// Sort orders keys so that every key comes after the keys depFunc returns
// for it. Dependencies that are not in keys are ignored. Independent keys keep
// ascending order.
func Sort[K constraints.Ordered](keys []K, depFunc func(K) []K) ([]K, error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	state := make(map[K]int, len(sorted))
	for _, key := range sorted {
		state[key] = unvisited
	}

	list := make([]K, 0, len(sorted))
	var stack []K

	var visit func(K) error
	visit = func(key K) error {
		switch state[key] {
		case done:
			return nil
		case visiting:
			start := slices.Index(stack, key)
			path := make([]string, 0, len(stack)-start+1)
			for _, k := range stack[start:] {
				path = append(path, fmt.Sprint(k))
			}
			path = append(path, fmt.Sprint(key))
			return &CycleError{Path: path}
		}

		state[key] = visiting
		stack = append(stack, key)

		deps := slices.Clone(depFunc(key))
		slices.Sort(deps)
		for _, dep := range deps {
			if _, ok := state[dep]; !ok {
				continue
			}

			err := visit(dep)
			if err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[key] = done
		list = append(list, key)
		return nil
	}

	for _, key := range sorted {
		err := visit(key)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}
