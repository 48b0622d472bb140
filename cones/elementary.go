package cones

import "math"

// Uni is the whole space Rⁿ.
type Uni struct{ n int }

// Zero is the singleton cone {0} ⊂ Rⁿ.
type Zero struct{ n int }

// NonnegOrth is the non-negative orthant Rⁿ₊.
type NonnegOrth struct{ n int }

// SOC is the second-order (Lorentz) cone {(x, t) ∈ Rⁿ⁻¹×R : ‖x‖ ≤ t}.
// The radius t is the trailing coordinate of every vector.
type SOC struct{ n int }

// Compile-time assertions.
var (
	_ Cone = (*Uni)(nil)
	_ Cone = (*Zero)(nil)
	_ Cone = (*NonnegOrth)(nil)
	_ Cone = (*SOC)(nil)
)

func validDim(n int) error {
	if n < 1 {
		return ErrInvalidDimension
	}
	return nil
}

// NewUni returns the whole space of dimension n.
func NewUni(n int) (*Uni, error) {
	if err := validDim(n); err != nil {
		return nil, err
	}
	return &Uni{n: n}, nil
}

// NewZero returns the zero cone of dimension n.
func NewZero(n int) (*Zero, error) {
	if err := validDim(n); err != nil {
		return nil, err
	}
	return &Zero{n: n}, nil
}

// NewNonnegOrth returns the non-negative orthant of dimension n.
func NewNonnegOrth(n int) (*NonnegOrth, error) {
	if err := validDim(n); err != nil {
		return nil, err
	}
	return &NonnegOrth{n: n}, nil
}

// NewSOC returns the second-order cone of total dimension n
// (n-1 vector coordinates followed by the radius).
func NewSOC(n int) (*SOC, error) {
	if err := validDim(n); err != nil {
		return nil, err
	}
	return &SOC{n: n}, nil
}

// ---------- Uni ----------

func (c *Uni) Kind() Kind { return KindUni }
func (c *Uni) Type() string { return KindUni.String() }
func (c *Uni) Dimension() int { return c.n }
func (c *Uni) Dual() Cone { return &Zero{n: c.n} }

// Project returns a copy of x.
func (c *Uni) Project(x []float64) ([]float64, error) {
	if err := checkDim(c, x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out, nil
}

// ---------- Zero ----------

func (c *Zero) Kind() Kind { return KindZero }
func (c *Zero) Type() string { return KindZero.String() }
func (c *Zero) Dimension() int { return c.n }
func (c *Zero) Dual() Cone { return &Uni{n: c.n} }

// Project returns the zero vector.
func (c *Zero) Project(x []float64) ([]float64, error) {
	if err := checkDim(c, x); err != nil {
		return nil, err
	}
	return make([]float64, len(x)), nil
}

// ---------- NonnegOrth ----------

func (c *NonnegOrth) Kind() Kind { return KindNonnegOrth }
func (c *NonnegOrth) Type() string { return KindNonnegOrth.String() }
func (c *NonnegOrth) Dimension() int { return c.n }
func (c *NonnegOrth) Dual() Cone { return &NonnegOrth{n: c.n} }

// Project clamps every coordinate at zero: max(0, x_i).
func (c *NonnegOrth) Project(x []float64) ([]float64, error) {
	if err := checkDim(c, x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Max(0, v)
	}

	return out, nil
}

// ---------- SOC ----------

func (c *SOC) Kind() Kind { return KindSOC }
func (c *SOC) Type() string { return KindSOC.String() }
func (c *SOC) Dimension() int { return c.n }
func (c *SOC) Dual() Cone { return &SOC{n: c.n} }

// Project maps (x, t) onto the second-order cone. With r = ‖x‖:
//
//	r ≤ t   → (x, t) unchanged
//	r ≤ −t  → origin
//	else    → (x·(r+t)/(2r), (r+t)/2)
func (c *SOC) Project(x []float64) ([]float64, error) {
	if err := checkDim(c, x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	last := len(x) - 1
	t := x[last]
	var sq float64
	for _, v := range x[:last] {
		sq += v * v
	}
	r := math.Sqrt(sq)

	switch {
	case r <= t:
		copy(out, x)
	case r <= -t:
		// out is already the origin
	default:
		// r > |t| >= 0 here, so the division is safe.
		scale := (r + t) / (2 * r)
		for i, v := range x[:last] {
			out[i] = v * scale
		}
		out[last] = (r + t) / 2
	}

	return out, nil
}

// Contains reports whether x lies in c within tol, measured as the
// max-norm distance between x and its projection.
func Contains(c Cone, x []float64, tol float64) (bool, error) {
	p, err := c.Project(x)
	if err != nil {
		return false, err
	}
	for i := range x {
		if math.Abs(x[i]-p[i]) > tol {
			return false, nil
		}
	}

	return true, nil
}
