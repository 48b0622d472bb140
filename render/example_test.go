package render_test

import (
	"fmt"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/render"
	"github.com/katalvlaran/raocp/scenario"
)

// ExampleMermaid renders a chain that starts in state 0 and may jump to the
// absorbing state 1.
func ExampleMermaid() {
	p, _ := matrix.NewFromRows([][]float64{{0.9, 0.1}, {0, 1}})
	f, _ := scenario.NewMarkovChainFactory(p, []float64{1, 0}, 2)
	tree, _ := f.Create()

	out, err := render.Mermaid(tree)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)
	// Output:
	// graph TD
	//     n0(("root"))
	//     n0 -- "1" --> n1
	//     n1["1: w=0"]
	//     n1 -- "0.9" --> n2
	//     n1 -- "0.1" --> n3
	//     n2["2: w=0"]
	//     n3["3: w=1"]
}
