package search

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gridwalk/internal/telemetry"
)

// BFS finds a path from start to a goal state with the fewest edges.
//
// Every edge costs 1, so Result.Cost is len(Path)-1. The first goal state
// dequeued wins. WithMaxCost bounds the depth: states deeper than the cap are
// not enqueued.
//
// Returns ErrNoPath when the reachable space is exhausted without a goal.
func BFS[S comparable](
	start S,
	neighbors func(S) []S,
	goal func(S) bool,
	opts ...Option,
) (Result[S], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result[S]{}, err
	}

	ctx, span := telemetry.Tracer("search").Start(cfg.Ctx, "search.bfs")
	defer span.End()

	w := &walker[S]{
		ctx:       ctx,
		maxDepth:  cfg.MaxCost,
		neighbors: neighbors,
		goal:      goal,
		parent:    make(map[S]S),
		depth:     make(map[S]int64),
	}
	w.enqueue(start, 0)
	res, err := w.loop()

	log := cfg.Logger.WithField("visited", len(w.depth))
	if err != nil {
		log.WithError(err).Debug("search: bfs finished without a path")
		return Result[S]{}, err
	}

	span.SetAttributes(
		attribute.Int("search.visited", len(w.depth)),
		attribute.Int64("search.cost", res.Cost),
	)
	log.WithFields(logrus.Fields{"cost": res.Cost}).Debug("search: bfs reached goal")

	return res, nil
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	ctx       context.Context
	maxDepth  int64
	neighbors func(S) []S
	goal      func(S) bool

	queue  []S
	parent map[S]S
	depth  map[S]int64 // doubles as the visited set
}

// enqueue marks s seen at depth d and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int64) {
	w.depth[s] = d
	w.queue = append(w.queue, s)
}

// loop processes the queue until a goal, exhaustion or cancellation.
func (w *walker[S]) loop() (Result[S], error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return Result[S]{}, w.ctx.Err()
		default:
		}

		s := w.queue[0]
		w.queue = w.queue[1:]
		d := w.depth[s]

		if w.goal(s) {
			return Result[S]{Path: w.pathTo(s), Cost: d}, nil
		}
		if d >= w.maxDepth {
			continue
		}
		for _, n := range w.neighbors(s) {
			if _, seen := w.depth[n]; seen {
				continue
			}
			w.parent[n] = s
			w.enqueue(n, d+1)
		}
	}
	return Result[S]{}, ErrNoPath
}

func (w *walker[S]) pathTo(s S) []S {
	path := []S{s}
	for {
		p, ok := w.parent[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	slices.Reverse(path)
	return path
}
