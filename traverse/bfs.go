package traverse

import (
	"fmt"

	"github.com/katalvlaran/raocp/scenario"
)

type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	tree  *scenario.Tree
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS walks the subtree rooted at start level by level. On a scenario tree
// a walk from the root visits nodes in id order, since every stage occupies
// a contiguous id range and children follow their parents' order.
//
// Errors: ErrTreeNil, ErrStartNodeNotFound, ErrOptionViolation, the
// context's error on cancellation, or a wrapped OnVisit error.
func BFS(tree *scenario.Tree, start int, opts ...Option) (*Result, error) {
	if tree == nil {
		return nil, ErrTreeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= tree.NumNodes() {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	w := &walker{
		tree:  tree,
		opts:  o,
		queue: []queueItem{{node: start}},
		res: &Result{
			Start: start,
			Depth: map[int]int{start: 0},
		},
	}
	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at node %d: %w", item.node, err)
		}
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueChildren applies MaxDepth and FilterChild. A tree has no
// cross edges, so no visited set is needed.
func (w *walker) enqueueChildren(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	kids, err := w.tree.ChildrenOf(item.node)
	if err != nil {
		return err
	}
	for c := kids.Start; c < kids.Stop; c++ {
		if !w.opts.FilterChild(item.node, c) {
			continue
		}
		w.res.Depth[c] = next
		w.queue = append(w.queue, queueItem{node: c, depth: next})
	}
	return nil
}

// PathTo reconstructs the scenario path start → … → dest.
func (r *Result) PathTo(tree *scenario.Tree, dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		if i > 0 {
			a, err := tree.AncestorOf(cur)
			if err != nil {
				return nil, err
			}
			cur = a
		}
	}
	return path, nil
}
