package risk

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/raocp/cones"
	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/scenario"
)

// ErrInvalidParameter is returned when the risk level or the probability
// vector violates its contract.
var ErrInvalidParameter = errors.New("risk: invalid parameter")

// TypeAVaR labels Average Value-at-Risk items.
const TypeAVaR = "AVaR"

// Measure is the conic description (E, F, cone, b) shared by all
// risk-measure types. Matrix accessors return copies.
type Measure interface {
	Type() string
	E() matrix.Matrix
	F() matrix.Matrix
	Cone() cones.Cone
	B() []float64
}

// AVaR is the ambiguity set of Average Value-at-Risk at one node.
// It is immutable after NewAVaR.
type AVaR struct {
	alpha float64
	pi    []float64
	node  int

	e    *matrix.Dense // (2m+1)×m
	f    *matrix.Dense // (2m+1)×m, all zeros
	cone *cones.Cart   // NonnegOrth(m) × NonnegOrth(m) × Zero(1)
	b    []float64     // [π; 0; 1]
}

var _ Measure = (*AVaR)(nil)

// NewAVaR builds the AVaR ambiguity set for risk level alpha and conditional
// child probabilities pi. node is kept for diagnostics only.
//
// Implementation:
//   - Stage 1: validate alpha ∈ (0, 1] and pi a probability vector.
//   - Stage 2: E = [α·I; −I; 1ᵀ], F = 0, b = [π; 0; 1].
//   - Stage 3: cone = Cart(NonnegOrth(m), NonnegOrth(m), Zero(1)).
//
// Errors:
//   - ErrInvalidParameter (wrapping the matrix sentinel when pi is at fault).
//
// Complexity: O(m²).
func NewAVaR(alpha float64, pi []float64, node int) (*AVaR, error) {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must lie in (0, 1] (got %g)", ErrInvalidParameter, alpha)
	}
	if err := matrix.ValidateProbabilityVector(pi, scenario.ProbabilityTol); err != nil {
		return nil, fmt.Errorf("%w: node %d: %w", ErrInvalidParameter, node, err)
	}
	m := len(pi)

	eye, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(eye, alpha)
	if err != nil {
		return nil, err
	}
	negEye, err := matrix.Scale(eye, -1)
	if err != nil {
		return nil, err
	}
	ones, err := matrix.NewOnes(1, m)
	if err != nil {
		return nil, err
	}
	e, err := matrix.VStack(scaled, negEye, ones)
	if err != nil {
		return nil, err
	}
	f, err := matrix.NewZeros(2*m+1, m)
	if err != nil {
		return nil, err
	}

	upper, err := cones.NewNonnegOrth(m)
	if err != nil {
		return nil, err
	}
	lower, err := cones.NewNonnegOrth(m)
	if err != nil {
		return nil, err
	}
	sum, err := cones.NewZero(1)
	if err != nil {
		return nil, err
	}
	cone, err := cones.NewCart(upper, lower, sum)
	if err != nil {
		return nil, err
	}

	b := make([]float64, 2*m+1)
	copy(b, pi)
	b[2*m] = 1

	return &AVaR{
		alpha: alpha,
		pi:    append([]float64(nil), pi...),
		node:  node,
		e:     e,
		f:     f,
		cone:  cone,
		b:     b,
	}, nil
}

// Type returns TypeAVaR.
func (a *AVaR) Type() string { return TypeAVaR }

// Alpha returns the risk level.
func (a *AVaR) Alpha() float64 { return a.alpha }

// NumChildren returns m.
func (a *AVaR) NumChildren() int { return len(a.pi) }

// Node returns the node the item was built for.
func (a *AVaR) Node() int { return a.node }

// Pi returns a copy of the conditional child probabilities.
func (a *AVaR) Pi() []float64 { return append([]float64(nil), a.pi...) }

// E returns a copy of E.
func (a *AVaR) E() matrix.Matrix { return a.e.Clone() }

// F returns a copy of F.
func (a *AVaR) F() matrix.Matrix { return a.f.Clone() }

// Cone returns the ambiguity cone. Cones are immutable and may be shared.
func (a *AVaR) Cone() cones.Cone { return a.cone }

// B returns a copy of b.
func (a *AVaR) B() []float64 { return append([]float64(nil), a.b...) }

// InEnvelope reports whether mu satisfies E·mu ⪯_K b, i.e. b − E·mu ∈ K
// within tol.
//
// Errors: cones.ErrDimensionMismatch if len(mu) != NumChildren().
func (a *AVaR) InEnvelope(mu []float64, tol float64) (bool, error) {
	if len(mu) != len(a.pi) {
		return false, fmt.Errorf("risk: got %d weights, want %d: %w", len(mu), len(a.pi), cones.ErrDimensionMismatch)
	}
	em, err := matrix.MatVec(a.e, mu)
	if err != nil {
		return false, err
	}
	slack := make([]float64, len(a.b))
	for i := range slack {
		slack[i] = a.b[i] - em[i]
	}

	return cones.Contains(a.cone, slack, tol)
}

// String describes the item for logs.
func (a *AVaR) String() string {
	return fmt.Sprintf("Risk item at node %d; type: %s, alpha: %g; cone: %s", a.node, TypeAVaR, a.alpha, a.cone.Type())
}

// NewAVaRForTree builds one AVaR item per non-leaf node of tree, in id order,
// using the node's conditional child probabilities. Items are independent
// and built concurrently; the first failure is returned.
func NewAVaRForTree(tree *scenario.Tree, alpha float64) ([]*AVaR, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidParameter)
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must lie in (0, 1] (got %g)", ErrInvalidParameter, alpha)
	}

	items := make([]*AVaR, tree.NumNonLeafNodes())
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n := range items {
		n := n // per-iteration copy (Go <1.22 loop-variable semantics)
		g.Go(func() error {
			pi, err := tree.ConditionalProbabilitiesOfChildren(n)
			if err != nil {
				return err
			}
			item, err := NewAVaR(alpha, pi, n)
			if err != nil {
				return err
			}
			items[n] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}
