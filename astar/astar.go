package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/renkav/movingai/grid"
)

// FindPath computes the minimum-cost path from start to goal on m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. start must be traversable (ErrStartUntraversable).
//  3. goal must be traversable (ErrGoalUntraversable).
//
// Returns ErrNoPath when the frontier empties before reaching the goal and
// ErrExpansionBudget when WithMaxExpansions runs out first.
func FindPath(m *grid.Map, start, goal grid.Coords, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, ErrNilMap
	}
	if !m.IsTraversable(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartUntraversable, start.X, start.Y)
	}
	if !m.IsTraversable(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalUntraversable, goal.X, goal.Y)
	}

	r := &runner{
		m:       m,
		options: cfg,
		start:   start,
		goal:    goal,
		gScore:  make(map[grid.Coords]float64),
		closed:  make(map[grid.Coords]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[grid.Coords]grid.Coords)
	}

	return r.process()
}

// runner holds the mutable state of one FindPath execution.
type runner struct {
	m        *grid.Map
	options  Options
	start    grid.Coords
	goal     grid.Coords
	gScore   map[grid.Coords]float64     // best known cost from start
	prev     map[grid.Coords]grid.Coords // predecessor links, nil without ReturnPath
	closed   map[grid.Coords]bool        // finalized tiles
	pq       nodePQ
	expanded int
}

// process runs the main loop: pop the cheapest frontier tile, finalize it,
// relax its neighbors. Stale heap entries (lazy decrease-key) are skipped.
func (r *runner) process() (*Result, error) {
	r.gScore[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{coords: r.start, f: r.heuristic(r.start)})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.coords
		if r.closed[u] {
			continue
		}
		r.closed[u] = true

		if u == r.goal {
			return r.result(), nil
		}
		if r.expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionBudget, r.expanded)
		}
		r.expanded++

		for _, n := range r.m.Neighbors(u) {
			if r.closed[n] {
				continue
			}
			g := r.gScore[u] + stepCost(u, n)
			if old, seen := r.gScore[n]; seen && g >= old {
				continue
			}
			r.gScore[n] = g
			if r.prev != nil {
				r.prev[n] = u
			}
			heap.Push(&r.pq, &nodeItem{coords: n, f: g + r.heuristic(n)})
		}
	}

	return nil, ErrNoPath
}

// result assembles the Result once the goal is finalized, walking the
// predecessor links backwards when path reconstruction is on.
func (r *runner) result() *Result {
	res := &Result{
		Cost:     r.gScore[r.goal],
		Expanded: r.expanded,
	}
	if r.prev == nil {
		return res
	}
	var rev []grid.Coords
	for c := r.goal; ; {
		rev = append(rev, c)
		if c == r.start {
			break
		}
		c = r.prev[c]
	}
	res.Path = make([]grid.Coords, len(rev))
	for i, c := range rev {
		res.Path[len(rev)-1-i] = c
	}
	return res
}

// heuristic estimates the remaining cost to the goal: octile distance on
// Octile maps, Manhattan distance on 4-connected maps. Both never
// overestimate, so the first finalization of the goal is optimal.
func (r *runner) heuristic(c grid.Coords) float64 {
	dx := math.Abs(float64(c.X - r.goal.X))
	dy := math.Abs(float64(c.Y - r.goal.Y))
	if r.m.Topology() == grid.Octile {
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	}
	return dx + dy
}

// stepCost prices a single legal step: √2 for diagonals, 1 otherwise.
func stepCost(from, to grid.Coords) float64 {
	if from.X != to.X && from.Y != to.Y {
		return math.Sqrt2
	}
	return 1
}

// nodeItem is one heap entry: a tile and its f = g + h priority.
type nodeItem struct {
	coords grid.Coords
	f      float64
}

// nodePQ is a min-heap of nodeItems keyed by f.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
