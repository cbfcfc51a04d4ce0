package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridplan/grid"
)

// Diagnostic errors: expected "no plan possible" outcomes.
var (
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("planner: start is outside the grid")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("planner: goal is outside the grid")

	// ErrStartBlocked indicates the start cell is not Free.
	ErrStartBlocked = errors.New("planner: start is not accessible")

	// ErrGoalBlocked indicates the goal cell is not Free.
	ErrGoalBlocked = errors.New("planner: goal is not accessible")

	// ErrStartIsGoal indicates start and goal coincide.
	ErrStartIsGoal = errors.New("planner: start equals goal")

	// ErrNoRoute indicates the search exhausted its frontier.
	ErrNoRoute = errors.New("planner: no route to goal")
)

// ErrUnknownKind is returned by ParseKind for an unrecognised planner name.
var ErrUnknownKind = errors.New("planner: unknown planner kind")

// IsNoPlan reports whether err is one of the diagnostic sentinels.
func IsNoPlan(err error) bool {
	return errors.Is(err, ErrStartOutOfBounds) ||
		errors.Is(err, ErrGoalOutOfBounds) ||
		errors.Is(err, ErrStartBlocked) ||
		errors.Is(err, ErrGoalBlocked) ||
		errors.Is(err, ErrStartIsGoal) ||
		errors.Is(err, ErrNoRoute)
}

// Planner finds a route between two cells of a configuration space.
// Implementations hold only read-only state and may be shared by goroutines.
type Planner interface {
	Plan(start, goal grid.Cell) (Result, error)
}

// Result is the outcome of one Plan call.
type Result struct {
	// Route from start to goal inclusive; empty when no plan was found.
	Route Route `json:"route"`

	// Expanded counts the cells taken off the frontier.
	Expanded int `json:"expanded"`

	// Cost is the accumulated path cost of the goal under the planner's cost model.
	Cost float64 `json:"cost"`
}

// Found reports whether the result carries a route.
func (r Result) Found() bool { return !r.Route.Empty() }

// Route is an ordered sequence of cells, start first.
type Route []grid.Cell

// Len returns the number of cells.
func (r Route) Len() int { return len(r) }

// Empty reports whether the route has no cells.
func (r Route) Empty() bool { return len(r) == 0 }

// Moves returns the number of steps between consecutive cells.
func (r Route) Moves() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Length returns the Euclidean length of the polyline through the cell centers.
func (r Route) Length() float64 {
	var sum float64
	for i := 1; i < len(r); i++ {
		sum += r[i-1].Distance(r[i])
	}

	return sum
}

// String renders the route as "(x, y) -> (x, y) -> ...", or "<empty>".
func (r Route) String() string {
	if len(r) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

// Kind names a planner implementation.
type Kind int

const (
	// AStar is the Euclidean-heuristic best-first search.
	AStar Kind = iota
	// Dijkstra is uniform-cost search.
	Dijkstra
	// BFS is breadth-first search (fewest moves).
	BFS
)

// String returns the canonical lower-case name.
func (k Kind) String() string {
	switch k {
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts the canonical names, case-insensitively, plus "a*".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	default:
		return AStar, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
