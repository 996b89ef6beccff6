package simgraph_test

import (
	"fmt"

	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/simgraph"
)

// ExampleNormalized builds the factorization target W for a tiny two-cluster
// dataset and prints it with the pipeline's 4-decimal convention.
//
// The two coincident points share all their affinity (W[0][1] ≈ 1), while the
// distant third point is effectively disconnected.
func ExampleNormalized() {
	pts, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0},
		{0, 0},
		{10, 10},
	})

	W, _ := simgraph.Normalized(pts)

	n := W.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := W.At(i, j)
			if j > 0 {
				fmt.Print(",")
			}
			fmt.Printf("%.4f", v)
		}
		fmt.Println()
	}
	// Output:
	// 0.0000,1.0000,0.0000
	// 1.0000,0.0000,0.0000
	// 0.0000,0.0000,0.0000
}
