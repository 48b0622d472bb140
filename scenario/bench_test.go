package scenario_test

import (
	"testing"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/scenario"
)

func BenchmarkCreate(b *testing.B) {
	p, _ := matrix.NewFromRows([][]float64{
		{0.1, 0.8, 0.1},
		{0.4, 0.6, 0},
		{0, 0.3, 0.7},
	})
	f, err := scenario.NewMarkovChainFactory(p, []float64{0.5, 0.4, 0.1}, 12, scenario.WithStoppingTime(6))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = f.Create(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProbabilitiesAtStage(b *testing.B) {
	p, _ := matrix.NewFromRows([][]float64{
		{0.1, 0.8, 0.1},
		{0.4, 0.6, 0},
		{0, 0.3, 0.7},
	})
	f, _ := scenario.NewMarkovChainFactory(p, []float64{0.5, 0.4, 0.1}, 12, scenario.WithStoppingTime(6))
	tree, _ := f.Create()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.ProbabilitiesAtStage(12)
	}
}
