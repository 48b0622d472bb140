// Package cones provides Euclidean projections onto closed convex cones and
// their Cartesian (direct-sum) composition.
//
// What
//
//   - Uni        — the whole space Rⁿ; projection is the identity.
//   - Zero       — the origin {0}; projection is the zero vector.
//   - NonnegOrth — the non-negative orthant; projection clamps at zero.
//   - SOC        — the second-order cone {(x, t) : ‖x‖ ≤ t}, with the radius t
//     stored as the trailing coordinate.
//   - Cart       — an ordered product of member cones acting on consecutive
//     coordinate blocks.
//
// Why
//
//	Ambiguity sets of coherent risk measures (AVaR and friends) are written as
//	conic inequalities E·μ ⪯_K b. Downstream first-order solvers need the
//	nearest-point map onto K and onto its dual K*, block by block.
//
// Contract
//
//   - Every projection is idempotent: Project(Project(x)) == Project(x).
//   - Project never mutates its argument; it returns a fresh slice.
//   - A vector whose length differs from Dimension() yields ErrDimensionMismatch.
//   - Cones are immutable after construction and safe for concurrent use.
//
// Duals
//
//	NonnegOrth and SOC are self-dual; Uni and Zero are dual to each other;
//	the dual of a Cart is the Cart of member duals.
package cones
