package cones

import (
	"errors"
	"fmt"
)

// Sentinel errors for cone construction and projection.
var (
	// ErrDimensionMismatch is returned when a vector's length differs from the cone dimension.
	ErrDimensionMismatch = errors.New("cones: dimension mismatch")

	// ErrInvalidDimension is returned when a cone is constructed with dimension < 1.
	ErrInvalidDimension = errors.New("cones: dimension must be >= 1")

	// ErrNoMembers is returned when a Cart is built from an empty member list.
	ErrNoMembers = errors.New("cones: cartesian cone needs at least one member")

	// ErrNilCone is returned when a nil member is passed to NewCart.
	ErrNilCone = errors.New("cones: nil cone")
)

// Kind labels a cone variant.
type Kind int

// Cone variants.
const (
	KindUni Kind = iota
	KindZero
	KindNonnegOrth
	KindSOC
	KindCart
)

var kindNames = [...]string{
	KindUni:        "Uni",
	KindZero:       "Zero",
	KindNonnegOrth: "NonnegOrth",
	KindSOC:        "SOC",
	KindCart:       "Cart",
}

// String returns the variant label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Cone is a closed convex cone with a Euclidean projection.
type Cone interface {
	// Kind returns the variant of the cone.
	Kind() Kind

	// Type returns a human-readable label. Elementary cones return their Kind
	// label; a Cart returns the ordered member labels, e.g.
	// "Cart(NonnegOrth, NonnegOrth, Zero)".
	Type() string

	// Dimension is the length of vectors accepted by Project.
	Dimension() int

	// Project returns the nearest point of the cone to x.
	Project(x []float64) ([]float64, error)

	// Dual returns the dual cone K* = {y : ⟨x, y⟩ ≥ 0 for all x ∈ K}.
	Dual() Cone
}

// checkDim validates len(x) against the cone dimension.
func checkDim(c Cone, x []float64) error {
	if len(x) != c.Dimension() {
		return fmt.Errorf("%s: got vector of length %d, want %d: %w", c.Type(), len(x), c.Dimension(), ErrDimensionMismatch)
	}
	return nil
}
