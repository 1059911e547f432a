package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/internal/telemetry"
)

// Sentinel errors returned by the search algorithms.
var (
	// ErrNoPath indicates that no goal state is reachable from the start.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrNegativeCost indicates a successor edge with a negative cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative cap.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

	// ErrCycle indicates that CountPaths was run on a graph with a cycle.
	ErrCycle = errors.New("search: cycle in path graph")

	// ErrMissingMarker indicates a maze without its start or end marker.
	ErrMissingMarker = errors.New("search: maze marker not found")
)

// Edge is a transition to state To with a non-negative Cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Result is the outcome of a successful search.
//
// Path runs from the start state to the goal state, both included.
// Cost is the sum of the edge costs along Path.
type Result[S comparable] struct {
	Path []S
	Cost int64
}

// Last returns the goal state reached, which is the final element of Path.
func (r Result[S]) Last() S {
	return r.Path[len(r.Path)-1]
}

// MazeCost prices turn-cost maze transitions.
//
// Move is charged for every step. Turn is added when the step changes facing.
type MazeCost struct {
	Move int64
	Turn int64
}

// DefaultMazeCost is 1 per step and 1000 extra per 90° turn.
func DefaultMazeCost() MazeCost {
	return MazeCost{Move: 1, Turn: 1000}
}

// Options configures the search algorithms.
//
// Ctx      – cancellation; checked once per expanded state.
// MaxCost  – states whose cost exceeds this are not expanded. Default math.MaxInt64.
// Maze     – move/turn pricing for ShortestTurnPath.
// Logger   – receives one Debug summary per search.
type Options struct {
	Ctx     context.Context
	MaxCost int64
	Maze    MazeCost
	Logger  logrus.FieldLogger

	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap, default maze pricing,
// a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt64,
		Maze:    DefaultMazeCost(),
		Logger:  telemetry.DiscardLogger(),
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

// WithMaxCost stops expanding states whose cost exceeds limit.
// A negative limit is recorded and reported as ErrBadMaxCost.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, limit)
			return
		}
		o.MaxCost = limit
	}
}

// WithMazeCost overrides the move and turn costs used by ShortestTurnPath.
func WithMazeCost(c MazeCost) Option {
	return func(o *Options) {
		o.Maze = c
	}
}

// WithLogger routes Debug-level summaries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults and returns any recorded error.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
