package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridplan/bfs"
	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
)

// ExampleWalk demonstrates BFS layering on an open 3×3 grid from its corner.
func ExampleWalk() {
	s, _ := cspace.New(3, 3, 0)
	tree, err := bfs.Walk(s.Freeze(), grid.C(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := tree.PathTo(grid.C(2, 1))
	fmt.Println(len(tree.Order), route)
	// Output: 9 (0, 0) -> (1, 0) -> (2, 1)
}

// ExamplePlanner_Plan finds a fewest-moves route.
func ExamplePlanner_Plan() {
	s, _ := cspace.New(7, 7, 1)
	res, err := bfs.New(s.Freeze()).Plan(grid.C(1, 1), grid.C(5, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Route.Moves(), res.Route)
	// Output: 4 (1, 1) -> (2, 1) -> (3, 1) -> (4, 1) -> (5, 2)
}
