package scenario

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/raocp/matrix"
)

// Tree is an immutable scenario tree produced by MarkovChainFactory.Create.
//
// Node n has ancestor ancestors[n] (NoAncestor for the root), stage stages[n]
// and chain state values[n] (NoValue for the root). Children and stage ranges
// are derived once at construction.
type Tree struct {
	ancestors []int
	stages    []int
	values    []int

	children   []NodeRange // children[n]; empty range for leaves
	stageStart []int       // stageStart[s] is the first id of stage s; len == NumStages()+2

	transition   *matrix.Dense
	initial      []float64
	stoppingTime int

	muData sync.RWMutex
	data   []any // optional per-node payload
}

// newTree assembles a Tree from factory output. The arrays are owned by the tree.
func newTree(ancestors, stages, values []int, transition *matrix.Dense, initial []float64, stoppingTime int) *Tree {
	n := len(ancestors)
	t := &Tree{
		ancestors:    ancestors,
		stages:       stages,
		values:       values,
		children:     make([]NodeRange, n),
		transition:   transition,
		initial:      initial,
		stoppingTime: stoppingTime,
		data:         make([]any, n),
	}

	// Children of a common parent are contiguous because ids follow the
	// parent's id order within each stage.
	for id := 1; id < n; id++ {
		a := ancestors[id]
		if t.children[a].Len() == 0 {
			t.children[a] = NodeRange{Start: id, Stop: id + 1}
			continue
		}
		t.children[a].Stop = id + 1
	}

	last := stages[n-1]
	t.stageStart = make([]int, last+2)
	for id := n - 1; id >= 0; id-- {
		t.stageStart[stages[id]] = id
	}
	t.stageStart[last+1] = n

	return t
}

// checkNode validates a node id.
func (t *Tree) checkNode(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: node id cannot be negative (got %d)", ErrInvalidArgument, n)
	}
	if n >= len(t.ancestors) {
		return fmt.Errorf("%w: node id %d out of range [0, %d)", ErrInvalidArgument, n, len(t.ancestors))
	}
	return nil
}

// NumNodes returns the total number of nodes.
func (t *Tree) NumNodes() int { return len(t.ancestors) }

// NumStages returns the horizon N; stages are numbered 0..N.
func (t *Tree) NumStages() int { return t.stages[len(t.stages)-1] }

// StoppingTime returns the stage τ from which the tree stops branching.
func (t *Tree) StoppingTime() int { return t.stoppingTime }

// NumNonLeafNodes returns the number of nodes at stages < N.
func (t *Tree) NumNonLeafNodes() int { return t.stageStart[t.NumStages()] }

// AncestorOf returns the parent of n, or NoAncestor for the root.
func (t *Tree) AncestorOf(n int) (int, error) {
	if err := t.checkNode(n); err != nil {
		return 0, err
	}
	return t.ancestors[n], nil
}

// StageOf returns the stage of n.
func (t *Tree) StageOf(n int) (int, error) {
	if err := t.checkNode(n); err != nil {
		return 0, err
	}
	return t.stages[n], nil
}

// ValueAtNode returns the chain state of n, or NoValue for the root.
func (t *Tree) ValueAtNode(n int) (int, error) {
	if err := t.checkNode(n); err != nil {
		return 0, err
	}
	return t.values[n], nil
}

// IsLeaf reports whether n lies on the last stage.
func (t *Tree) IsLeaf(n int) (bool, error) {
	if err := t.checkNode(n); err != nil {
		return false, err
	}
	return t.children[n].Len() == 0, nil
}

// ChildrenOf returns the children of n; the range is empty for leaves.
func (t *Tree) ChildrenOf(n int) (NodeRange, error) {
	if err := t.checkNode(n); err != nil {
		return NodeRange{}, err
	}
	return t.children[n], nil
}

// NodesAtStage returns the contiguous id range of stage s.
func (t *Tree) NodesAtStage(s int) (NodeRange, error) {
	if s < 0 || s > t.NumStages() {
		return NodeRange{}, fmt.Errorf("%w: stage %d out of range [0, %d]", ErrInvalidArgument, s, t.NumStages())
	}
	return NodeRange{Start: t.stageStart[s], Stop: t.stageStart[s+1]}, nil
}

// SiblingsOfNode returns the children of n's ancestor, n included.
// The root is its own single sibling.
func (t *Tree) SiblingsOfNode(n int) (NodeRange, error) {
	if err := t.checkNode(n); err != nil {
		return NodeRange{}, err
	}
	if n == 0 {
		return NodeRange{Start: 0, Stop: 1}, nil
	}
	return t.children[t.ancestors[n]], nil
}

// edgeProbability is the one-step probability of reaching n from its ancestor.
// n must not be the root.
func (t *Tree) edgeProbability(n int) float64 {
	a := t.ancestors[n]
	switch {
	case a == 0:
		return t.initial[t.values[n]]
	case t.stages[a] >= t.stoppingTime:
		return 1 // frozen edge
	default:
		p, _ := t.transition.At(t.values[a], t.values[n]) // states are in range by construction
		return p
	}
}

// ProbabilityOfNode returns the unconditional probability of reaching n:
// the product of one-step probabilities along the root-to-n path.
//
// Complexity: O(stage of n).
func (t *Tree) ProbabilityOfNode(n int) (float64, error) {
	if err := t.checkNode(n); err != nil {
		return 0, err
	}
	prob := 1.0
	for cur := n; cur != 0; cur = t.ancestors[cur] {
		prob *= t.edgeProbability(cur)
	}
	return prob, nil
}

// ProbabilitiesAtStage returns ProbabilityOfNode for every node of stage s,
// in id order. The entries sum to 1 within round-off.
func (t *Tree) ProbabilitiesAtStage(s int) ([]float64, error) {
	r, err := t.NodesAtStage(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, r.Len())
	for n := r.Start; n < r.Stop; n++ {
		p, _ := t.ProbabilityOfNode(n)
		out = append(out, p)
	}
	return out, nil
}

// ConditionalProbabilitiesOfChildren returns, for every child of n in id
// order, the probability of moving from n to that child: v at the root, P
// while branching and a single 1 in the frozen phase. Leaves yield an empty
// slice.
func (t *Tree) ConditionalProbabilitiesOfChildren(n int) ([]float64, error) {
	if err := t.checkNode(n); err != nil {
		return nil, err
	}
	r := t.children[n]
	out := make([]float64, 0, r.Len())
	for c := r.Start; c < r.Stop; c++ {
		out = append(out, t.edgeProbability(c))
	}
	return out, nil
}

// SetDataAtNode attaches an arbitrary payload to node n.
// Safe for concurrent use; the tree structure itself is unaffected.
func (t *Tree) SetDataAtNode(n int, v any) error {
	if err := t.checkNode(n); err != nil {
		return err
	}
	t.muData.Lock()
	defer t.muData.Unlock()
	t.data[n] = v

	return nil
}

// DataAtNode returns the payload attached to n (nil if none).
func (t *Tree) DataAtNode(n int) (any, error) {
	if err := t.checkNode(n); err != nil {
		return nil, err
	}
	t.muData.RLock()
	defer t.muData.RUnlock()

	return t.data[n], nil
}

// String summarises the tree: node count, horizon, stopping time and the
// width of every stage.
func (t *Tree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ScenarioTree(nodes=%d, stages=%d, stopping_time=%d) widths=[",
		t.NumNodes(), t.NumStages(), t.stoppingTime)
	for s := 0; s <= t.NumStages(); s++ {
		if s > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", t.stageStart[s+1]-t.stageStart[s])
	}
	sb.WriteString("]")

	return sb.String()
}
