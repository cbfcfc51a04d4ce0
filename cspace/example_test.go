package cspace_test

import (
	"fmt"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/raster"
)

// ExampleSpace builds a 9×7 space for an agent of radius 1 with one obstacle
// and prints the resulting grid.
func ExampleSpace() {
	s, err := cspace.New(9, 7, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = s.AddObstacles(raster.NewCircle(4, 3, 1)); err != nil {
		fmt.Println("error:", err)
		return
	}
	v := s.Freeze()
	fmt.Print(v)
	fmt.Println(v.Counts(), v.IsAccessible(grid.C(2, 2)))
	// Output:
	// 2 2 2 2 2 2 2 2 2
	// 2 0 0 0 0 0 0 0 2
	// 2 0 0 2 2 2 0 0 2
	// 2 0 0 2 1 2 0 0 2
	// 2 0 0 2 2 2 0 0 2
	// 2 0 0 0 0 0 0 0 2
	// 2 2 2 2 2 2 2 2 2
	// {26 1 36} true
}

// ExampleView_AccessibleNeighbors lists the free neighbors of a cell next to
// the padded boundary.
func ExampleView_AccessibleNeighbors() {
	s, _ := cspace.New(5, 5, 1)
	nbrs, n := s.Freeze().AccessibleNeighbors(grid.C(1, 1))
	fmt.Println(n, nbrs[:n])
	// Output: 3 [(2, 1) (1, 2) (2, 2)]
}
