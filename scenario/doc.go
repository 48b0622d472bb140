// Package scenario builds scenario trees for a finite-state Markov chain over a
// fixed horizon and answers structural and probabilistic queries on them.
//
// What
//
//   - MarkovChainFactory validates a row-stochastic transition matrix P and an
//     initial distribution v, then lays out the tree stage by stage:
//   - node 0 is the root (stage 0, no ancestor, value -1);
//   - stage 1 holds one node per state with v[j] > 0;
//   - before the stopping time τ every node branches into the states
//     reachable from its own state with non-zero probability;
//   - from τ on, every node has exactly one child carrying the same state.
//   - Tree is the read-only result: ancestors, stages, chain-state values,
//     contiguous children and stage ranges, and on-demand probabilities.
//
// Node numbering
//
//	Ids are assigned in breadth-first stage order, so ancestor(n) < n for every
//	non-root node, the nodes of a stage form a contiguous range, and so do the
//	children of a common parent. Queries return NodeRange values instead of
//	materialised id lists.
//
// Probabilities
//
//	Nothing is stored per node. ProbabilityOfNode multiplies one-step
//	conditional probabilities along the root-to-node path; edges out of the
//	root use v, branching edges use P, frozen edges have probability 1.
//
// Concurrency
//
//	The structural arrays are immutable after Create and safe for concurrent
//	readers. The optional per-node payload (SetDataAtNode/DataAtNode) is
//	guarded by its own RWMutex.
//
// Errors
//
//	ErrInvalidDistribution - P or v is not a probability object (checked before any node exists).
//	ErrInvalidArgument     - bad horizon, stopping time, node id or stage index.
package scenario
