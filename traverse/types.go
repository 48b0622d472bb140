// Package traverse provides tunable options and error definitions for
// breadth-first walks over a scenario.Tree.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for tree walks.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrStartNodeNotFound is returned when the start id is not a node.
	ErrStartNodeNotFound = errors.New("traverse: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes outside the walk.
	ErrNotReached = errors.New("traverse: node not reached")
)

// Option configures a walk via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node with its depth below the
	// start node. If it returns an error, the walk aborts.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterChild can prune a subtree by returning false for parent→child.
	FilterChild func(parent, child int) bool

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(int, int) error { return nil },
		FilterChild: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterChild skips children (and their subtrees) when fn returns false.
func WithFilterChild(fn func(parent, child int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Start: the node the walk began at.
//   - Order: nodes in visit sequence.
//   - Depth: distance (in edges) from Start, for every visited node.
type Result struct {
	Start int
	Order []int
	Depth map[int]int
}

// Reached reports whether n was visited.
func (r *Result) Reached(n int) bool {
	_, ok := r.Depth[n]
	return ok
}
