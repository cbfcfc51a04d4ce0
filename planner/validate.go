package planner

import (
	"fmt"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
)

// Validate runs the pre-search checks shared by all planners.
// It returns nil when a search may start, or a wrapped diagnostic sentinel.
func Validate(v *cspace.View, start, goal grid.Cell) error {
	switch {
	case !v.Contains(start):
		return fmt.Errorf("%w: %v on %d×%d grid", ErrStartOutOfBounds, start, v.Width(), v.Height())
	case !v.Contains(goal):
		return fmt.Errorf("%w: %v on %d×%d grid", ErrGoalOutOfBounds, goal, v.Width(), v.Height())
	case !v.IsAccessible(start):
		return fmt.Errorf("%w: %v is %v", ErrStartBlocked, start, v.State(start))
	case !v.IsAccessible(goal):
		return fmt.Errorf("%w: %v is %v", ErrGoalBlocked, goal, v.State(goal))
	case start == goal:
		return fmt.Errorf("%w: %v", ErrStartIsGoal, start)
	}

	return nil
}
