package scenario

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/raocp/matrix"
)

// MarkovChainFactory builds scenario trees for a Markov chain with transition
// matrix P (k×k), initial distribution v (length k), horizon N and stopping
// time τ. A factory is immutable and may create any number of trees.
type MarkovChainFactory struct {
	transition   *matrix.Dense // private copy of P
	initial      []float64     // private copy of v
	numStages    int           // horizon N
	stoppingTime int           // τ ∈ [1, N]
	cover        [][]int       // cover[i] = states j with P[i][j] > 0, ascending
	logger       *slog.Logger
}

// NewMarkovChainFactory validates its inputs and prepares a factory.
//
// Implementation:
//   - Stage 1: apply options; reject invalid option values.
//   - Stage 2: validate P row-stochastic and v a probability vector of length k.
//   - Stage 3: validate 1 ≤ τ ≤ N (τ defaults to N).
//   - Stage 4: copy inputs and precompute the cover of every state.
//
// Errors:
//   - ErrInvalidDistribution (wrapping the matrix sentinel) for bad P or v.
//   - ErrInvalidArgument for N < 1 or τ outside [1, N].
//
// Complexity: O(k²).
func NewMarkovChainFactory(transition matrix.Matrix, initial []float64, numStages int, opts ...Option) (*MarkovChainFactory, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := matrix.ValidateRowStochastic(transition, ProbabilityTol); err != nil {
		return nil, fmt.Errorf("transition matrix: %w: %w", ErrInvalidDistribution, err)
	}
	k := transition.Rows()
	if len(initial) != k {
		return nil, fmt.Errorf("initial distribution has %d entries, want %d: %w: %w",
			len(initial), k, ErrInvalidDistribution, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateProbabilityVector(initial, ProbabilityTol); err != nil {
		return nil, fmt.Errorf("initial distribution: %w: %w", ErrInvalidDistribution, err)
	}

	if numStages < 1 {
		return nil, fmt.Errorf("%w: horizon must be >= 1 (got %d)", ErrInvalidArgument, numStages)
	}
	tau := o.stoppingTime
	if tau == 0 {
		tau = numStages
	}
	if tau > numStages {
		return nil, fmt.Errorf("%w: stopping time %d exceeds horizon %d", ErrInvalidArgument, tau, numStages)
	}

	dense, err := toDense(transition)
	if err != nil {
		return nil, fmt.Errorf("transition matrix: %w: %w", ErrInvalidDistribution, err)
	}
	f := &MarkovChainFactory{
		transition:   dense,
		initial:      append([]float64(nil), initial...),
		numStages:    numStages,
		stoppingTime: tau,
		cover:        make([][]int, k),
		logger:       o.logger,
	}
	for i := 0; i < k; i++ {
		row := f.transition.RawRow(i)
		for j, p := range row {
			if p > 0 {
				f.cover[i] = append(f.cover[i], j)
			}
		}
	}

	return f, nil
}

// toDense copies any Matrix into a fresh *Dense.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		row, err := matrix.Row(m, i)
		if err != nil {
			return nil, err
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// NumStates returns the number of chain states k.
func (f *MarkovChainFactory) NumStates() int { return len(f.initial) }

// StoppingTime returns the effective τ.
func (f *MarkovChainFactory) StoppingTime() int { return f.stoppingTime }

// Horizon returns N.
func (f *MarkovChainFactory) Horizon() int { return f.numStages }

// Cover returns the states reachable in one step from state i, ascending.
// Unknown states yield nil.
func (f *MarkovChainFactory) Cover(i int) []int {
	if i < 0 || i >= len(f.cover) {
		return nil
	}
	return append([]int(nil), f.cover[i]...)
}

// Create lays out the ancestor/stage/value arrays and assembles the tree.
//
// Implementation:
//   - Stage 1: root, then one stage-1 child per state with v[j] > 0.
//   - Stage 2: for s in [1, τ): every node of stage s spawns one child per
//     state of its cover.
//   - Stage 3: for s in [τ, N): every node of stage s spawns one child with
//     its own state.
//   - Stage 4: build the immutable Tree (children and stage ranges).
//
// Complexity: O(number of nodes).
func (f *MarkovChainFactory) Create() (*Tree, error) {
	ancestors := []int{NoAncestor}
	stages := []int{0}
	values := []int{NoValue}

	for j, p := range f.initial {
		if p > 0 {
			ancestors = append(ancestors, 0)
			stages = append(stages, 1)
			values = append(values, j)
		}
	}

	// cursor is the first id of the current stage, width its node count.
	cursor := 1
	width := len(ancestors) - 1
	for s := 1; s < f.stoppingTime; s++ {
		added := 0
		for i := 0; i < width; i++ {
			node := cursor + i
			for _, j := range f.cover[values[node]] {
				ancestors = append(ancestors, node)
				stages = append(stages, s+1)
				values = append(values, j)
				added++
			}
		}
		f.logger.Debug("scenario: branching stage", "stage", s+1, "nodes", added)
		cursor += width
		width = added
	}

	for s := f.stoppingTime; s < f.numStages; s++ {
		for i := 0; i < width; i++ {
			node := cursor + i
			ancestors = append(ancestors, node)
			stages = append(stages, s+1)
			values = append(values, values[node])
		}
		f.logger.Debug("scenario: frozen stage", "stage", s+1, "nodes", width)
		cursor += width
	}

	t := newTree(ancestors, stages, values, f.transition, f.initial, f.stoppingTime)
	f.logger.Info("scenario: tree created",
		"nodes", t.NumNodes(),
		"stages", t.NumStages(),
		"stopping_time", f.stoppingTime,
	)

	return t, nil
}
