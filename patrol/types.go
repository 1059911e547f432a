package patrol

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/telemetry"
)

// Sentinel errors for patrol operations.
var (
	// ErrNoGuard indicates a lab map without a guard marker.
	ErrNoGuard = errors.New("patrol: no guard on the map")
	// ErrNoRobot indicates a warehouse map without a robot marker.
	ErrNoRobot = errors.New("patrol: no robot in the warehouse")
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("patrol: workers must be at least 1")
)

// Terrain tells the stepper whether a cell can be entered.
type Terrain int

const (
	// Open cells are entered.
	Open Terrain = iota
	// Obstacle cells make the actor turn right instead of moving.
	Obstacle
)

// Classify maps a cell value to its Terrain.
type Classify[T any] func(v T) Terrain

// Actor is a position plus a facing. It is comparable and doubles as the
// state recorded for loop detection.
type Actor struct {
	Location grid.Location
	Facing   grid.Direction
}

// String renders the actor as "(x,y)^".
func (a Actor) String() string {
	return fmt.Sprintf("%v%v", a.Location, a.Facing)
}

// Outcome is the result of a single Step.
type Outcome int

const (
	// Halted means the actor would leave the populated grid; it did not change.
	Halted Outcome = iota
	// Turned means an obstacle was ahead; the actor rotated clockwise in place.
	Turned
	// Moved means the actor advanced one cell.
	Moved
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Halted:
		return "halted"
	case Turned:
		return "turned"
	case Moved:
		return "moved"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Option configures CountLoopPlacements. Invalid options are recorded and
// surfaced as an error when the search starts.
type Option func(*Options)

// Options holds the tunables of CountLoopPlacements.
type Options struct {
	// Ctx allows cancellation and parents the trace span.
	Ctx context.Context
	// Workers is the number of concurrent candidate evaluations; 1 runs serially.
	Workers int
	// Logger receives Debug-level progress.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns serial execution with a background context and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
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

// WithWorkers evaluates candidates on n goroutines.
//
//	n == 1: serial (default)
//	n > 1:  fork-join over n workers
//	n < 1:  invalid option → ErrBadWorkers
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
