package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

func TestValidateProbabilityVector(t *testing.T) {
	cases := []struct {
		name string
		p    []float64
		want error
	}{
		{"valid", []float64{0.5, 0.4, 0.1}, nil},
		{"zeros allowed", []float64{0, 1, 0}, nil},
		{"tiny negative round-off", []float64{-1e-17, 1}, nil},
		{"negative", []float64{-0.1, 1.1}, matrix.ErrNotProbability},
		{"bad sum", []float64{0.5, 0.4}, matrix.ErrNotProbability},
		{"nan", []float64{math.NaN(), 1}, matrix.ErrNaNInf},
		{"empty", nil, matrix.ErrNilMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateProbabilityVector(tc.p, tol)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateRowStochastic(t *testing.T) {
	p, _ := matrix.NewFromRows([][]float64{
		{0.1, 0.8, 0.1},
		{0.4, 0.6, 0},
		{0, 0.3, 0.7},
	})
	require.NoError(t, matrix.ValidateRowStochastic(p, tol))

	bad, _ := matrix.NewFromRows([][]float64{{0.5, 0.6}, {0.5, 0.5}})
	require.ErrorIs(t, matrix.ValidateRowStochastic(bad, tol), matrix.ErrNotProbability)

	rect, _ := matrix.NewFromRows([][]float64{{0.5, 0.5}})
	require.ErrorIs(t, matrix.ValidateRowStochastic(rect, tol), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateRowStochastic(nil, tol), matrix.ErrNilMatrix)
}
