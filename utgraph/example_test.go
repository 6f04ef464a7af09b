package utgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// ExampleGraph_Path demonstrates walk search on a small network with an
// isolated vertex.
//
//	    [0]     _[5]--[6]--[7]   [11]
//	   / | \   /      / \
//	[1] [2] [3]     [8] [9]
//	      \ /         \ /
//	      [4]--------[10]
func ExampleGraph_Path() {
	g, err := utgraph.Build(12, []utgraph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {2, 3}, {3, 4}, {3, 5}, {5, 6},
		{6, 7}, {6, 8}, {6, 9}, {8, 10}, {9, 10}, {10, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	walk, ok, _ := g.Path(0, 6)
	fmt.Println(walk, ok)

	_, ok, _ = g.Path(0, 11)
	fmt.Println("0 reaches 11?", ok)

	// Output:
	// [0 2 3 4 10 8 6] true
	// 0 reaches 11? false
}

// ExampleGraph_IsStar shows the star check before and after breaking the
// N-1 edge count.
func ExampleGraph_IsStar() {
	g, _ := utgraph.Build(4, []utgraph.Edge{{0, 2}, {1, 2}, {3, 2}})
	star, _ := g.IsStar()
	fmt.Println("claw is star:", star)

	_ = g.Connect(0, 1)
	star, _ = g.IsStar()
	fmt.Println("paw is star:", star)

	// Output:
	// claw is star: true
	// paw is star: false
}

// ExampleGraph_Connect shows how contract violations are classified.
func ExampleGraph_Connect() {
	g, _ := utgraph.New(3)
	fmt.Println(g.Connect(0, 1))

	err := g.Connect(1, 0)
	fmt.Println(errors.Is(err, utgraph.ErrDuplicateEdge), errors.Is(err, utgraph.ErrContractViolation))

	deg, ok := g.Degree(7)
	fmt.Println(deg, ok)

	// Output:
	// <nil>
	// true true
	// 0 false
}
