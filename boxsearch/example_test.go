package boxsearch_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/boxsearch"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleSearch finds where three ranges overlap closest to the origin.
func ExampleSearch() {
	bots := []boxsearch.Bot{
		{Pos: grid.XYZ(10, 0, 2), R: 4},
		{Pos: grid.XYZ(14, 0, 2), R: 4},
		{Pos: grid.XYZ(12, 3, 2), R: 4},
		{Pos: grid.XYZ(-20, 0, 0), R: 1},
	}
	res, err := boxsearch.Search(bots)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Point, res.Count, res.Distance)
	// Output:
	// (12,0,1) 3 13
}
