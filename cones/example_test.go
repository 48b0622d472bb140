package cones_test

import (
	"fmt"

	"github.com/katalvlaran/raocp/cones"
)

// ExampleCart_ProjectBlocks projects four blocks onto Uni × Zero × NonnegOrth × SOC.
func ExampleCart_ProjectBlocks() {
	uni, _ := cones.NewUni(2)
	zero, _ := cones.NewZero(3)
	nonneg, _ := cones.NewNonnegOrth(2)
	soc, _ := cones.NewSOC(3)

	cart, err := cones.NewCart(uni, zero, nonneg, soc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x0 := []float64{-1, 2}
	x1 := []float64{4, 4, 5}
	blocks, err := cart.ProjectBlocks([][]float64{x0, x1, x0, x1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cart.Type())
	for _, b := range blocks {
		fmt.Printf("%.4f\n", b)
	}
	// Output:
	// Cart(Uni, Zero, NonnegOrth, SOC)
	// [-1.0000 2.0000]
	// [0.0000 0.0000 0.0000]
	// [0.0000 2.0000]
	// [3.7678 3.7678 5.3284]
}
