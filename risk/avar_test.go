package risk_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raocp/cones"
	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/risk"
	"github.com/katalvlaran/raocp/scenario"
	"github.com/stretchr/testify/require"
)

func TestNewAVaR_Construction(t *testing.T) {
	item, err := risk.NewAVaR(0.5, []float64{0.2, 0.3, 0.5}, 7)
	require.NoError(t, err)

	require.Equal(t, "AVaR", item.Type())
	require.Equal(t, 0.5, item.Alpha())
	require.Equal(t, 3, item.NumChildren())
	require.Equal(t, 7, item.Node())
	require.Equal(t, []float64{0.2, 0.3, 0.5}, item.Pi())

	E := item.E()
	require.Equal(t, 7, E.Rows())
	require.Equal(t, 3, E.Cols())
	wantE := [][]float64{
		{0.5, 0, 0},
		{0, 0.5, 0},
		{0, 0, 0.5},
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
		{1, 1, 1},
	}
	for i := range wantE {
		for j := range wantE[i] {
			v, err := E.At(i, j)
			require.NoError(t, err)
			require.Equal(t, wantE[i][j], v, "E[%d][%d]", i, j)
		}
	}

	F := item.F()
	require.Equal(t, 7, F.Rows())
	require.Equal(t, 3, F.Cols())
	for i := 0; i < 7; i++ {
		for j := 0; j < 3; j++ {
			v, _ := F.At(i, j)
			require.Zero(t, v)
		}
	}

	require.Equal(t, []float64{0.2, 0.3, 0.5, 0, 0, 0, 1}, item.B())

	cart, ok := item.Cone().(*cones.Cart)
	require.True(t, ok)
	require.Equal(t, []cones.Kind{cones.KindNonnegOrth, cones.KindNonnegOrth, cones.KindZero}, cart.Kinds())
	require.Equal(t, 7, item.Cone().Dimension())
	require.Equal(t, "Cart(NonnegOrth, NonnegOrth, Zero)", item.Cone().Type())
}

func TestNewAVaR_DimensionDiscipline(t *testing.T) {
	for m := 1; m <= 6; m++ {
		pi := make([]float64, m)
		for i := range pi {
			pi[i] = 1 / float64(m)
		}
		item, err := risk.NewAVaR(0.3, pi, 0)
		require.NoError(t, err)
		require.Equal(t, 2*m+1, item.Cone().Dimension())
		require.Equal(t, 2*m+1, item.E().Rows())
		b := item.B()
		require.Len(t, b, 2*m+1)
		require.Equal(t, 1.0, b[2*m])
	}
}

func TestNewAVaR_InvalidParameter(t *testing.T) {
	pi := []float64{0.2, 0.3, 0.5}
	for _, alpha := range []float64{0, -0.1, 1.5, math.NaN()} {
		_, err := risk.NewAVaR(alpha, pi, 0)
		require.ErrorIs(t, err, risk.ErrInvalidParameter, "alpha=%g", alpha)
	}

	_, err := risk.NewAVaR(0.5, []float64{0.2, 0.3}, 0)
	require.ErrorIs(t, err, risk.ErrInvalidParameter)
	require.ErrorIs(t, err, matrix.ErrNotProbability)

	_, err = risk.NewAVaR(0.5, []float64{-0.2, 1.2}, 0)
	require.ErrorIs(t, err, risk.ErrInvalidParameter)

	_, err = risk.NewAVaR(0.5, nil, 0)
	require.ErrorIs(t, err, risk.ErrInvalidParameter)

	// alpha = 1 is admissible.
	_, err = risk.NewAVaR(1, pi, 0)
	require.NoError(t, err)
}

func TestAVaR_AccessorsReturnCopies(t *testing.T) {
	item, _ := risk.NewAVaR(0.5, []float64{0.4, 0.6}, 0)

	b := item.B()
	b[0] = 42
	require.Equal(t, 0.4, item.B()[0])

	E := item.E()
	require.NoError(t, E.Set(0, 0, 42))
	v, _ := item.E().At(0, 0)
	require.Equal(t, 0.5, v)

	pi := item.Pi()
	pi[1] = 0
	require.Equal(t, 0.6, item.Pi()[1])
}

func TestAVaR_InEnvelope(t *testing.T) {
	item, err := risk.NewAVaR(0.5, []float64{0.2, 0.3, 0.5}, 0)
	require.NoError(t, err)

	cases := []struct {
		name string
		mu   []float64
		want bool
	}{
		{"nominal distribution", []float64{0.2, 0.3, 0.5}, true},
		{"upper bound active", []float64{0.4, 0.6, 0}, true},
		{"exceeds pi/alpha", []float64{0.5, 0.5, 0}, false},
		{"negative weight", []float64{-0.1, 0.6, 0.5}, false},
		{"does not sum to one", []float64{0.1, 0.1, 0.1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := item.InEnvelope(tc.mu, 1e-12)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err = item.InEnvelope([]float64{1}, 1e-12)
	require.ErrorIs(t, err, cones.ErrDimensionMismatch)
}

func TestAVaR_String(t *testing.T) {
	item, _ := risk.NewAVaR(0.5, []float64{0.4, 0.6}, 3)
	require.Equal(t, "Risk item at node 3; type: AVaR, alpha: 0.5; cone: Cart(NonnegOrth, NonnegOrth, Zero)", item.String())
}

func TestNewAVaRForTree(t *testing.T) {
	p, _ := matrix.NewFromRows([][]float64{
		{0.1, 0.8, 0.1},
		{0.4, 0.6, 0},
		{0, 0.3, 0.7},
	})
	f, err := scenario.NewMarkovChainFactory(p, []float64{0.5, 0.4, 0.1}, 8, scenario.WithStoppingTime(5))
	require.NoError(t, err)
	tree, err := f.Create()
	require.NoError(t, err)

	items, err := risk.NewAVaRForTree(tree, 0.5)
	require.NoError(t, err)
	require.Len(t, items, tree.NumNonLeafNodes())
	for n, item := range items {
		kids, _ := tree.ChildrenOf(n)
		require.Equal(t, n, item.Node())
		require.Equal(t, kids.Len(), item.NumChildren())
		// The nominal conditional distribution is always admissible.
		ok, err := item.InEnvelope(item.Pi(), 1e-9)
		require.NoError(t, err)
		require.True(t, ok, "node %d", n)
	}

	_, err = risk.NewAVaRForTree(tree, 2)
	require.ErrorIs(t, err, risk.ErrInvalidParameter)
	_, err = risk.NewAVaRForTree(nil, 0.5)
	require.ErrorIs(t, err, risk.ErrInvalidParameter)
}
