package patrol

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/telemetry"
)

// CountLoopPlacements counts the locations where adding one obstacle makes
// the actor loop forever.
//
// Candidates are the locations covered by the unmodified walk from start,
// minus the start location itself. Each candidate is evaluated on its own
// clone of g with obstacle stored at the candidate, so g is never mutated.
//
// With WithWorkers(n > 1) candidates are spread over an errgroup limited to n
// goroutines; the result is identical to the serial run. Cancelling the
// context stops the search and returns the context error.
func CountLoopPlacements[T any](
	g *grid.Grid[T],
	start Actor,
	classify Classify[T],
	obstacle T,
	opts ...Option,
) (int, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	ctx, span := telemetry.Tracer("patrol").Start(cfg.Ctx, "patrol.loop_placements")
	defer span.End()

	// 2) Candidate sites in row-major order, start excluded.
	covered := Cover(g, start, classify)
	candidates := make([]grid.Location, 0, covered.Size())
	covered.Each(func(l grid.Location) {
		if l != start.Location {
			candidates = append(candidates, l)
		}
	})
	slices.SortFunc(candidates, grid.Location.Compare)

	log := cfg.Logger.WithFields(logrus.Fields{
		"start":      start.String(),
		"candidates": len(candidates),
		"workers":    cfg.Workers,
	})
	log.Debug("patrol: searching loop placements")

	// 3) Evaluate.
	var (
		loops int
		err   error
	)
	if cfg.Workers == 1 {
		loops, err = countSerial(ctx, g, start, classify, obstacle, candidates)
	} else {
		loops, err = countParallel(ctx, g, start, classify, obstacle, candidates, cfg.Workers)
	}
	if err != nil {
		log.WithError(err).Debug("patrol: loop placement search aborted")
		return 0, err
	}

	span.SetAttributes(
		attribute.Int("patrol.candidates", len(candidates)),
		attribute.Int("patrol.workers", cfg.Workers),
		attribute.Int("patrol.loops", loops),
	)
	log.WithField("loops", loops).Debug("patrol: loop placement search done")

	return loops, nil
}

// loopsWith reports whether placing obstacle at site traps the actor.
func loopsWith[T any](g *grid.Grid[T], start Actor, classify Classify[T], obstacle T, site grid.Location) bool {
	trial := g.Clone()
	trial.Set(site, obstacle)
	return Loops(trial, start, classify)
}

func countSerial[T any](
	ctx context.Context,
	g *grid.Grid[T],
	start Actor,
	classify Classify[T],
	obstacle T,
	candidates []grid.Location,
) (int, error) {
	loops := 0
	for _, site := range candidates {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if loopsWith(g, start, classify, obstacle, site) {
			loops++
		}
	}
	return loops, nil
}

func countParallel[T any](
	ctx context.Context,
	g *grid.Grid[T],
	start Actor,
	classify Classify[T],
	obstacle T,
	candidates []grid.Location,
	workers int,
) (int, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var loops atomic.Int64
	for _, site := range candidates {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if loopsWith(g, start, classify, obstacle, site) {
				loops.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	// errgroup's derived context is cancelled by Wait; report the caller's state.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(loops.Load()), nil
}
