package grid

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     Point
	depth int
}

// walker encapsulates mutable BFS state over a grid.
type walker[T any] struct {
	grid  *Grid[T]
	opts  BFSOptions
	queue *linkedlistqueue.Queue
	res   *BFSResult
}

// BFS runs a multi-source breadth-first search over orthogonal neighbors,
// starting from every cell in starts at depth 0.
// Returns ErrOutOfBounds for a start outside the grid, ErrOptionViolation for
// bad options, or any error returned by the OnVisit hook.
// Time: O(W·H·4). Memory: O(W·H).
func (g *Grid[T]) BFS(starts []Point, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Width * g.Height
	w := &walker[T]{
		grid:  g,
		opts:  o,
		queue: linkedlistqueue.New(),
		res: &BFSResult{
			Order:  make([]Point, 0, n),
			Depth:  make(map[Point]int, n),
			Parent: make(map[Point]Point, n),
		},
	}
	for _, s := range starts {
		if !g.InBounds(s) {
			return nil, errors.Wrapf(ErrOutOfBounds, "start %v", s)
		}
		if _, seen := w.res.Depth[s]; seen {
			continue
		}
		w.res.Depth[s] = 0
		w.queue.Enqueue(queueItem{p: s})
	}

	return w.res, w.loop()
}

// loop processes the queue until it drains or a hook fails.
func (w *walker[T]) loop() error {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		item := v.(queueItem)

		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return errors.Wrapf(err, "grid: OnVisit error at %v", item.p)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.grid.Neighbors(item.p) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			if !w.opts.FilterNeighbor(item.p, nbr) {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.p
			w.queue.Enqueue(queueItem{p: nbr, depth: next})
		}
	}
	return nil
}
