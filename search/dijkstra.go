package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gridwalk/internal/telemetry"
)

// Dijkstra finds a minimum-cost path from start to any state satisfying goal.
//
// successors lists the outgoing edges of a state; it is called at most once
// per settled state. The search stops as soon as a goal state is popped from
// the priority queue, so the goal's cost is final at that point.
//
// Returns:
//
//   - Result with Path (start..goal) and its total Cost.
//   - ErrNoPath when the frontier empties, or every remaining state costs
//     more than MaxCost.
//   - ErrNegativeCost (wrapped with the offending edge) for a negative Cost.
//   - ErrBadMaxCost for an invalid option.
//   - ctx.Err() on cancellation.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Dijkstra[S comparable](
	start S,
	successors func(S) []Edge[S],
	goal func(S) bool,
	opts ...Option,
) (Result[S], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result[S]{}, err
	}

	ctx, span := telemetry.Tracer("search").Start(cfg.Ctx, "search.dijkstra")
	defer span.End()

	r := newRunner(ctx, cfg, successors, goal)
	r.push(start, 0)
	res, err := r.process()

	log := cfg.Logger.WithFields(logrus.Fields{
		"settled": r.settled.Size(),
		"pushed":  r.pushed,
	})
	if err != nil {
		log.WithError(err).Debug("search: dijkstra finished without a path")
		return Result[S]{}, err
	}

	span.SetAttributes(
		attribute.Int("search.settled", r.settled.Size()),
		attribute.Int64("search.cost", res.Cost),
		attribute.Int("search.path_len", len(res.Path)),
	)
	log.WithField("cost", res.Cost).Debug("search: dijkstra reached goal")

	return res, nil
}

// item is one frontier entry. Stale entries (a cheaper one was pushed
// later) are skipped when popped.
type item[S comparable] struct {
	state S
	cost  int64
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	ctx        context.Context
	maxCost    int64
	successors func(S) []Edge[S]
	goal       func(S) bool

	dist    map[S]int64         // best known cost per state
	prev    map[S]S             // predecessor on the best known path
	settled mapset.Set[S]       // states whose cost is final
	pq      *heap.Heap[item[S]] // min-heap by cost
	pushed  int
}

func newRunner[S comparable](
	ctx context.Context,
	cfg Options,
	successors func(S) []Edge[S],
	goal func(S) bool,
) *runner[S] {
	return &runner[S]{
		ctx:        ctx,
		maxCost:    cfg.MaxCost,
		successors: successors,
		goal:       goal,
		dist:       make(map[S]int64),
		prev:       make(map[S]S),
		settled:    mapset.New[S](),
		pq: heap.New[item[S]](func(a, b item[S]) bool {
			return a.cost < b.cost
		}),
	}
}

// push records cost as the best known distance to s and queues it.
func (r *runner[S]) push(s S, cost int64) {
	r.dist[s] = cost
	r.pq.Push(item[S]{state: s, cost: cost})
	r.pushed++
}

// process pops states in cost order until a goal is settled.
func (r *runner[S]) process() (Result[S], error) {
	for r.pq.Size() > 0 {
		select {
		case <-r.ctx.Done():
			return Result[S]{}, r.ctx.Err()
		default:
		}

		it, _ := r.pq.Pop()
		if r.settled.Has(it.state) || it.cost > r.dist[it.state] {
			continue
		}
		// Costs only grow from here on.
		if it.cost > r.maxCost {
			break
		}
		r.settled.Put(it.state)

		if r.goal(it.state) {
			return Result[S]{Path: r.pathTo(it.state), Cost: it.cost}, nil
		}
		if err := r.relax(it.state, it.cost); err != nil {
			return Result[S]{}, err
		}
	}
	return Result[S]{}, ErrNoPath
}

// relax pushes every successor of u that gets cheaper through u.
func (r *runner[S]) relax(u S, cost int64) error {
	for _, e := range r.successors(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.settled.Has(e.To) {
			continue
		}
		next := cost + e.Cost
		if old, seen := r.dist[e.To]; seen && next >= old {
			continue
		}
		r.prev[e.To] = u
		r.push(e.To, next)
	}
	return nil
}

// pathTo rebuilds the start..s path from predecessor links.
func (r *runner[S]) pathTo(s S) []S {
	path := []S{s}
	for {
		p, ok := r.prev[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	slices.Reverse(path)
	return path
}
