package cspace

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration space operations.
var (
	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("cspace: configuration space is frozen")

	// ErrUnknownState indicates a persisted state value outside {0, 1, 2}.
	ErrUnknownState = errors.New("cspace: unknown cell state")

	// ErrNilStates indicates FromStates was given a nil store.
	ErrNilStates = errors.New("cspace: state grid is nil")
)

// State classifies one cell. The numeric values are the persisted encoding.
type State uint8

const (
	// Free cells are traversable.
	Free State = iota
	// Object cells lie inside an obstacle's true radius.
	Object
	// Padded cells lie within the agent radius of an obstacle or grid edge.
	Padded
)

// ParseState converts a persisted integer into a State.
// Returns ErrUnknownState for anything but 0, 1 or 2.
func ParseState(v int) (State, error) {
	if v < int(Free) || v > int(Padded) {
		return Free, fmt.Errorf("%w: %d", ErrUnknownState, v)
	}

	return State(v), nil
}

// String returns "free", "object" or "padded".
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Object:
		return "object"
	case Padded:
		return "padded"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// rank orders states by precedence: Free < Padded < Object.
func (s State) rank() uint8 {
	switch s {
	case Object:
		return 2
	case Padded:
		return 1
	default:
		return 0
	}
}

// Counts tallies cells per state.
type Counts struct {
	Free   int `json:"free"`
	Object int `json:"object"`
	Padded int `json:"padded"`
}
