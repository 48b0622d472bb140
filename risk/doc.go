// Package risk builds conic representations of the ambiguity sets of coherent
// risk measures on a scenario tree.
//
// A risk measure at a non-leaf node with m children is represented by the
// tuple (E, F, K, b): the set of admissible probability distributions μ over
// the children is
//
//	{ μ : E·μ ⪯_K b }    i.e.    b − E·μ ∈ K.
//
// F is carried for interface uniformity across measure types (measures with
// an auxiliary variable use it); AVaR leaves it at zero.
//
// AVaR at level α ∈ (0, 1] with conditional child probabilities π:
//
//	E = [ α·I ; −I ; 1ᵀ ],  b = [ π ; 0 ; 1 ],  K = R₊ᵐ × R₊ᵐ × {0}
//
// which encodes 0 ≤ α·μ ≤ π and Σμ = 1.
package risk
