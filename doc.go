// Package raocp is the modelling layer for risk-averse optimal control of
// Markov jump systems: scenario trees, convex cones and risk ambiguity sets.
//
// What is inside?
//
//	matrix/   — dense matrices, stochasticity validators, block stacking
//	scenario/ — Markov-chain scenario-tree factory and the read-only Tree
//	traverse/ — breadth-first walks and scenario paths over a Tree
//	cones/    — Uni, Zero, NonnegOrth, SOC and Cartesian-product projections
//	risk/     — AVaR ambiguity sets (E, F, K, b) per non-leaf node
//	render/   — Mermaid and bulls-eye SVG drawings of a Tree
//	config/   — YAML scenario documents validated by JSON Schema
//	cmd/raocp — command-line front end
//
// Quick start:
//
//	p, _ := matrix.NewFromRows([][]float64{{0.1, 0.8, 0.1}, {0.4, 0.6, 0}, {0, 0.3, 0.7}})
//	f, _ := scenario.NewMarkovChainFactory(p, []float64{0.5, 0.5, 0}, 4, scenario.WithStoppingTime(3))
//	tree, _ := f.Create()
//	items, _ := risk.NewAVaRForTree(tree, 0.5)
//
// Every package reports failures through sentinel errors matched with
// errors.Is; none of them panics on user input.
package raocp
