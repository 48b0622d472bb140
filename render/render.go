// Package render draws scenario trees using only their public query surface.
//
// Two formats are provided:
//   - Mermaid: a "graph TD" flowchart with edges labelled by conditional
//     probabilities, suitable for Markdown documentation.
//   - Bulls-eye: a polar layout where leaves sit evenly on the outer circle,
//     each inner node sits at the mean angle of its children, and every stage
//     has its own concentric circle. SVG writes that layout as a document.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/raocp/scenario"
)

// Mermaid produces a Mermaid flowchart of the tree. Node labels carry the id
// and chain state; edges carry the conditional probability of the child.
func Mermaid(t *scenario.Tree) (string, error) {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for n := 0; n < t.NumNodes(); n++ {
		v, err := t.ValueAtNode(n)
		if err != nil {
			return "", err
		}
		if n == 0 {
			sb.WriteString("    n0((\"root\"))\n")
		} else {
			sb.WriteString(fmt.Sprintf("    n%d[\"%d: w=%d\"]\n", n, n, v))
		}

		kids, err := t.ChildrenOf(n)
		if err != nil {
			return "", err
		}
		pi, err := t.ConditionalProbabilitiesOfChildren(n)
		if err != nil {
			return "", err
		}
		for i, c := range kids.Nodes() {
			sb.WriteString(fmt.Sprintf("    n%d -- \"%.4g\" --> n%d\n", n, pi[i], c))
		}
	}

	return sb.String(), nil
}

// Point is a node position in the bulls-eye layout.
type Point struct {
	Node   int
	Stage  int
	Radius float64
	Angle  float64 // degrees
}

// XY returns the Cartesian coordinates of p.
func (p Point) XY() (x, y float64) {
	rad := p.Angle * math.Pi / 180
	return p.Radius * math.Cos(rad), p.Radius * math.Sin(rad)
}

// BullsEye lays the tree out on concentric circles of the given outer
// radius: stage s sits on radius outer·s/N, the root at the centre.
// The returned slice is indexed by node id.
func BullsEye(t *scenario.Tree, outer float64) ([]Point, error) {
	N := t.NumStages()
	points := make([]Point, t.NumNodes())

	leaves, err := t.NodesAtStage(N)
	if err != nil {
		return nil, err
	}
	step := 360 / float64(leaves.Len())
	for i, n := range leaves.Nodes() {
		points[n] = Point{Node: n, Stage: N, Radius: outer, Angle: float64(i) * step}
	}

	for s := N - 1; s >= 0; s-- {
		nodes, err := t.NodesAtStage(s)
		if err != nil {
			return nil, err
		}
		radius := outer * float64(s) / float64(N)
		for _, n := range nodes.Nodes() {
			kids, err := t.ChildrenOf(n)
			if err != nil {
				return nil, err
			}
			var sum float64
			for c := kids.Start; c < kids.Stop; c++ {
				sum += points[c].Angle
			}
			points[n] = Point{Node: n, Stage: s, Radius: radius, Angle: sum / float64(kids.Len())}
		}
	}

	return points, nil
}

// SVGOptions controls the SVG output.
type SVGOptions struct {
	Radius  float64 // outer circle radius in px; default 300
	DotSize float64 // node dot radius in px; default 3
}

// SVG writes the bulls-eye layout of t to w: grey stage circles, black
// parent→child segments and node dots.
func SVG(w io.Writer, t *scenario.Tree, opts SVGOptions) error {
	if opts.Radius <= 0 {
		opts.Radius = 300
	}
	if opts.DotSize <= 0 {
		opts.DotSize = 3
	}
	points, err := BullsEye(t, opts.Radius)
	if err != nil {
		return err
	}

	size := 2 * (opts.Radius + 2*opts.DotSize)
	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"%.1f %.1f %.1f %.1f\">\n",
		size, size, -size/2, -size/2, size, size)

	for s := 1; s <= t.NumStages(); s++ {
		r := opts.Radius * float64(s) / float64(t.NumStages())
		fmt.Fprintf(&sb, "  <circle cx=\"0\" cy=\"0\" r=\"%.2f\" fill=\"none\" stroke=\"gray\"/>\n", r)
	}
	for n := 1; n < len(points); n++ {
		a, err := t.AncestorOf(n)
		if err != nil {
			return err
		}
		x1, y1 := points[a].XY()
		x2, y2 := points[n].XY()
		fmt.Fprintf(&sb, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"black\"/>\n", x1, -y1, x2, -y2)
	}
	for _, p := range points {
		x, y := p.XY()
		fmt.Fprintf(&sb, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.1f\" fill=\"black\"/>\n", x, -y, opts.DotSize)
	}
	sb.WriteString("</svg>\n")

	_, err = io.WriteString(w, sb.String())
	return err
}
