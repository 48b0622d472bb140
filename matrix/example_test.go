package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/raocp/matrix"
)

// ExampleVStack assembles the block matrix [2·I; −I; 1ᵀ] used by
// AVaR-type ambiguity sets.
func ExampleVStack() {
	I, _ := matrix.NewIdentity(2)
	scaled, _ := matrix.Scale(I, 2)
	neg, _ := matrix.Scale(I, -1)
	ones, _ := matrix.NewOnes(1, 2)

	E, err := matrix.VStack(scaled, neg, ones)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(E)
	// Output:
	// [2, 0]
	// [0, 2]
	// [-1, -0]
	// [-0, -1]
	// [1, 1]
}
