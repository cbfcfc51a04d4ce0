package scenario

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/raster"
)

// ErrUnknownKind indicates a scenario number or name outside the presets.
var ErrUnknownKind = errors.New("scenario: unknown scenario")

// Kind selects a preset layout. The numeric values are the command line cases.
type Kind int

// Preset layouts.
const (
	None Kind = iota + 1
	Impossible
	Simple
	Complex
	Maze
)

var names = map[Kind]string{
	None:       "none",
	Impossible: "impossible",
	Simple:     "simple",
	Complex:    "complex",
	Maze:       "maze",
}

// String returns the lower-case name.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}

	return fmt.Sprintf("scenario(%d)", int(k))
}

// ParseKind accepts a case number ("1".."5") or a name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k >= None && k <= Maze {
			return k, nil
		}

		return 0, fmt.Errorf("%w: case %d (want 1..5)", ErrUnknownKind, n)
	}
	for k, n := range names {
		if n == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Obstacles returns the layout for kind on a width×height grid with the given
// agent radius.
func Obstacles(kind Kind, width, height, agentRadius uint) ([]raster.Circle, error) {
	nx, ny := width, height
	m := min(nx, ny)
	at := func(r uint, cells ...grid.Cell) []raster.Circle {
		out := make([]raster.Circle, len(cells))
		for i, c := range cells {
			out[i] = raster.Circle{Center: c, Radius: r}
		}

		return out
	}
	last := func(n uint) uint { return sub(n, 1) }

	switch kind {
	case None:
		return nil, nil
	case Impossible:
		return at(m/2, grid.C(nx/2, ny/2)), nil
	case Simple:
		return at(sub(m/2, agentRadius),
			grid.C(0, last(ny)),
			grid.C(last(nx), 0),
		), nil
	case Complex:
		return at(sub(m/8, agentRadius),
			grid.C(0, ny/4), grid.C(0, ny/2), grid.C(0, 3*ny/4),

			grid.C(nx/4, 0), grid.C(nx/4, ny/3), grid.C(nx/4, 2*ny/3), grid.C(nx/4, last(ny)),

			grid.C(nx/2, ny/4), grid.C(nx/2, ny/2), grid.C(nx/2, 3*ny/4),

			grid.C(3*nx/4, 0), grid.C(3*nx/4, ny/3), grid.C(3*nx/4, 2*ny/3), grid.C(3*nx/4, last(ny)),

			grid.C(last(nx), ny/4), grid.C(last(nx), ny/2), grid.C(last(nx), 3*ny/4),
		), nil
	case Maze:
		var cells []grid.Cell
		for col := uint(1); col <= 4; col++ {
			x := col * nx / 5
			// odd walls touch the top edge, even walls the bottom edge
			if col%2 == 1 {
				cells = append(cells, grid.C(x, 0))
			}
			for _, y := range []uint{ny / 6, ny / 3, ny / 2, 2 * ny / 3, 5 * ny / 6} {
				cells = append(cells, grid.C(x, y))
			}
			if col%2 == 0 {
				cells = append(cells, grid.C(x, last(ny)))
			}
		}

		return at(sub(m/10, agentRadius), cells...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// DefaultEndpoints returns the start (k+1, k+1) and goal (W−k−1, H−k−1): the
// first Free cells inside the padded boundary at opposite corners.
// Coordinates saturate at zero on grids too small for the agent.
func DefaultEndpoints(width, height, agentRadius uint) (start, goal grid.Cell) {
	k := agentRadius
	start = grid.C(k+1, k+1)
	goal = grid.C(sub(width, k+1), sub(height, k+1))

	return start, goal
}

// sub returns a−b, or 0 when b > a.
func sub(a, b uint) uint {
	if b > a {
		return 0
	}

	return a - b
}
