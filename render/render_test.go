package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/render"
	"github.com/katalvlaran/raocp/scenario"
	"github.com/stretchr/testify/require"
)

func smallTree(t *testing.T) *scenario.Tree {
	t.Helper()
	p, err := matrix.NewFromRows([][]float64{{0.5, 0.5}, {0, 1}})
	require.NoError(t, err)
	f, err := scenario.NewMarkovChainFactory(p, []float64{1, 0}, 2)
	require.NoError(t, err)
	tree, err := f.Create()
	require.NoError(t, err)
	return tree
}

func TestMermaid(t *testing.T) {
	out, err := render.Mermaid(smallTree(t))
	require.NoError(t, err)
	want := strings.Join([]string{
		"graph TD",
		`    n0(("root"))`,
		`    n0 -- "1" --> n1`,
		`    n1["1: w=0"]`,
		`    n1 -- "0.5" --> n2`,
		`    n1 -- "0.5" --> n3`,
		`    n2["2: w=0"]`,
		`    n3["3: w=1"]`,
		"",
	}, "\n")
	require.Equal(t, want, out)
}

func TestBullsEye(t *testing.T) {
	tree := smallTree(t)
	points, err := render.BullsEye(tree, 100)
	require.NoError(t, err)
	require.Len(t, points, 4)

	// Leaves 2 and 3 at 0° and 180° on the outer circle.
	require.Equal(t, 100.0, points[2].Radius)
	require.Equal(t, 0.0, points[2].Angle)
	require.Equal(t, 180.0, points[3].Angle)
	// Node 1 at the mean angle, half radius; root at the centre.
	require.Equal(t, 90.0, points[1].Angle)
	require.Equal(t, 50.0, points[1].Radius)
	require.Equal(t, 0.0, points[0].Radius)

	x, y := points[1].XY()
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 50, y, 1e-9)
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, smallTree(t), render.SVGOptions{}))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<svg "))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
	require.Equal(t, 3, strings.Count(out, "<line "))
	require.Equal(t, 2+4, strings.Count(out, "<circle "))
}
