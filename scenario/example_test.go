package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/scenario"
)

// ExampleMarkovChainFactory builds a three-state tree that branches until
// stage 3 and is frozen afterwards.
func ExampleMarkovChainFactory() {
	p, _ := matrix.NewFromRows([][]float64{
		{0.1, 0.8, 0.1},
		{0.4, 0.6, 0},
		{0, 0.3, 0.7},
	})
	f, err := scenario.NewMarkovChainFactory(p, []float64{0.5, 0.5, 0}, 4, scenario.WithStoppingTime(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tree, err := f.Create()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tree)
	kids, _ := tree.ChildrenOf(1)
	pi, _ := tree.ConditionalProbabilitiesOfChildren(1)
	fmt.Println("children of 1:", kids, pi)
	prob, _ := tree.ProbabilityOfNode(8)
	fmt.Printf("P(node 8) = %.3f\n", prob)
	// Output:
	// ScenarioTree(nodes=32, stages=4, stopping_time=3) widths=[1 2 5 12 12]
	// children of 1: [3, 6) [0.1 0.8 0.1]
	// P(node 8) = 0.005
}
