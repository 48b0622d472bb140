package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for scenario-tree construction and queries.
var (
	// ErrInvalidDistribution is returned when the transition matrix or the
	// initial distribution is not row-stochastic / a probability vector.
	ErrInvalidDistribution = errors.New("scenario: invalid probability distribution")

	// ErrInvalidArgument is returned for malformed queries (negative or
	// out-of-range ids, unknown stages) and bad horizon / stopping time.
	ErrInvalidArgument = errors.New("scenario: invalid argument")
)

// ProbabilityTol is the tolerance used when validating probability inputs.
const ProbabilityTol = 1e-10

// NoAncestor is the ancestor id of the root; NoValue is the root's chain state.
const (
	NoAncestor = -1
	NoValue    = -1
)

// NodeRange is a half-open range [Start, Stop) of node ids.
type NodeRange struct {
	Start int
	Stop  int
}

// Len returns the number of ids in the range.
func (r NodeRange) Len() int { return r.Stop - r.Start }

// Contains reports whether n lies in the range.
func (r NodeRange) Contains(n int) bool { return n >= r.Start && n < r.Stop }

// Nodes materialises the ids of the range.
func (r NodeRange) Nodes() []int {
	out := make([]int, 0, r.Len())
	for n := r.Start; n < r.Stop; n++ {
		out = append(out, n)
	}
	return out
}

// String renders the range as "[start, stop)".
func (r NodeRange) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.Stop) }

// Option configures a MarkovChainFactory via functional arguments.
// Invalid values are recorded and surfaced by NewMarkovChainFactory.
type Option func(*factoryOptions)

type factoryOptions struct {
	stoppingTime int // 0 means "horizon"
	logger       *slog.Logger
	err          error
}

func defaultOptions() factoryOptions {
	return factoryOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStoppingTime sets the stage τ after which the chain stops branching.
// τ must lie in [1, horizon]; the default is the horizon (no freeze phase).
func WithStoppingTime(tau int) Option {
	return func(o *factoryOptions) {
		if tau < 1 {
			o.err = fmt.Errorf("%w: stopping time must be >= 1 (got %d)", ErrInvalidArgument, tau)
			return
		}
		o.stoppingTime = tau
	}
}

// WithLogger sets a structured logger for construction traces.
func WithLogger(logger *slog.Logger) Option {
	return func(o *factoryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
