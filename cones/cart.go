package cones

import (
	"fmt"
	"strings"
)

// Cart is the Cartesian product K₁ × K₂ × … × K_p of its member cones.
// A vector for a Cart is the concatenation of one block per member, in order.
type Cart struct {
	members []Cone
	offsets []int // offsets[i] is the first coordinate of block i; len == p+1
}

var _ Cone = (*Cart)(nil)

// NewCart composes members into a Cartesian cone. The member slice is copied.
//
// Errors:
//   - ErrNoMembers if no members are given.
//   - ErrNilCone if any member is nil.
func NewCart(members ...Cone) (*Cart, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	c := &Cart{
		members: make([]Cone, len(members)),
		offsets: make([]int, len(members)+1),
	}
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("member %d: %w", i, ErrNilCone)
		}
		c.members[i] = m
		c.offsets[i+1] = c.offsets[i] + m.Dimension()
	}

	return c, nil
}

// Kind returns KindCart.
func (c *Cart) Kind() Kind { return KindCart }

// Type returns "Cart(<member type>, ...)" with members in order.
func (c *Cart) Type() string {
	labels := make([]string, len(c.members))
	for i, m := range c.members {
		labels[i] = m.Type()
	}
	return KindCart.String() + "(" + strings.Join(labels, ", ") + ")"
}

// Kinds returns the ordered member kinds.
func (c *Cart) Kinds() []Kind {
	out := make([]Kind, len(c.members))
	for i, m := range c.members {
		out[i] = m.Kind()
	}
	return out
}

// Members returns a copy of the member list.
func (c *Cart) Members() []Cone {
	out := make([]Cone, len(c.members))
	copy(out, c.members)
	return out
}

// Dimension is the sum of member dimensions.
func (c *Cart) Dimension() int { return c.offsets[len(c.members)] }

// Dual returns the Cart of member duals.
func (c *Cart) Dual() Cone {
	duals := make([]Cone, len(c.members))
	for i, m := range c.members {
		duals[i] = m.Dual()
	}
	d, _ := NewCart(duals...) // members are non-nil by construction

	return d
}

// ProjectBlocks projects xs[i] onto member i and returns the blocks in order.
//
// Errors:
//   - ErrDimensionMismatch if len(xs) differs from the member count or a block
//     has the wrong length for its member.
func (c *Cart) ProjectBlocks(xs [][]float64) ([][]float64, error) {
	if len(xs) != len(c.members) {
		return nil, fmt.Errorf("%s: got %d blocks, want %d: %w", c.Type(), len(xs), len(c.members), ErrDimensionMismatch)
	}
	out := make([][]float64, len(xs))
	for i, m := range c.members {
		p, err := m.Project(xs[i])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out[i] = p
	}

	return out, nil
}

// Project projects a concatenated vector blockwise and reassembles it.
func (c *Cart) Project(x []float64) ([]float64, error) {
	parts, err := c.Split(x)
	if err != nil {
		return nil, err
	}
	blocks, err := c.ProjectBlocks(parts)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(x))
	for _, b := range blocks {
		out = append(out, b...)
	}

	return out, nil
}

// Split slices x into member blocks without copying.
func (c *Cart) Split(x []float64) ([][]float64, error) {
	if err := checkDim(c, x); err != nil {
		return nil, err
	}
	blocks := make([][]float64, len(c.members))
	for i := range c.members {
		blocks[i] = x[c.offsets[i]:c.offsets[i+1]:c.offsets[i+1]]
	}
	return blocks, nil
}
