package patrol_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/patrol"
)

// labExample is the canonical guard map: 41 covered cells, 6 loop placements.
const labExample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// mustLab parses a lab map or fails the test.
func mustLab(t *testing.T, input string) (*grid.Grid[patrol.Tile], patrol.Actor) {
	t.Helper()
	g, start, err := patrol.ParseLab(input)
	require.NoError(t, err)
	return g, start
}

//----------------------------------------------------------------------------//
// Step
//----------------------------------------------------------------------------//

// TestStep_Outcomes walks a tiny map through a move, a turn and a halt.
func TestStep_Outcomes(t *testing.T) {
	// .#
	// ..
	// ^.
	g, a := mustLab(t, ".#\n..\n^.")
	require.Equal(t, patrol.Actor{Location: grid.Location{X: 0, Y: 2}, Facing: grid.Up}, a)

	assert.Equal(t, patrol.Moved, patrol.Step(g, &a, patrol.LabTerrain))
	assert.Equal(t, grid.Location{X: 0, Y: 1}, a.Location)

	assert.Equal(t, patrol.Moved, patrol.Step(g, &a, patrol.LabTerrain))
	assert.Equal(t, grid.Location{X: 0, Y: 0}, a.Location)

	// y would underflow
	before := a
	assert.Equal(t, patrol.Halted, patrol.Step(g, &a, patrol.LabTerrain))
	assert.Equal(t, before, a, "halting leaves the actor unchanged")

	// face right into the wall: one turn, no move
	a.Facing = grid.Right
	assert.Equal(t, patrol.Turned, patrol.Step(g, &a, patrol.LabTerrain))
	assert.Equal(t, grid.Location{X: 0, Y: 0}, a.Location)
	assert.Equal(t, grid.Down, a.Facing)
}

// TestStep_SingleTurnPerCall checks a boxed-in actor turns once per call.
func TestStep_SingleTurnPerCall(t *testing.T) {
	g, a := mustLab(t, ".#.\n#^#\n.#.")
	for i, want := range []grid.Direction{grid.Right, grid.Down, grid.Left, grid.Up} {
		assert.Equal(t, patrol.Turned, patrol.Step(g, &a, patrol.LabTerrain), "call %d", i)
		assert.Equal(t, want, a.Facing, "call %d", i)
		assert.Equal(t, grid.Location{X: 1, Y: 1}, a.Location)
	}
	assert.True(t, patrol.Loops(g, a, patrol.LabTerrain), "spinning in place is a loop")
}

// TestStep_AbsentCellHalts verifies a hole inside the bounding box stops the actor.
func TestStep_AbsentCellHalts(t *testing.T) {
	g, a := mustLab(t, "...\n.>.")
	g.Remove(grid.Location{X: 2, Y: 1})
	assert.Equal(t, patrol.Halted, patrol.Step(g, &a, patrol.LabTerrain))
}

//----------------------------------------------------------------------------//
// Patrol, Cover, Loops
//----------------------------------------------------------------------------//

// TestCover_LabExample verifies the coverage count on the canonical map.
func TestCover_LabExample(t *testing.T) {
	g, start := mustLab(t, labExample)
	assert.Equal(t, patrol.Actor{Location: grid.Location{X: 4, Y: 6}, Facing: grid.Up}, start)

	w := patrol.Patrol(g, start, patrol.LabTerrain)
	assert.False(t, w.Looped)
	assert.Equal(t, 41, w.Visited.Size())
	assert.True(t, w.Visited.Has(start.Location))
	assert.Equal(t, patrol.Actor{Location: grid.Location{X: 7, Y: 9}, Facing: grid.Down}, w.End)

	assert.Equal(t, 41, patrol.Cover(g, start, patrol.LabTerrain).Size())
	assert.False(t, patrol.Loops(g, start, patrol.LabTerrain))
}

// TestLoops_KnownPlacement checks one of the documented loop-inducing placements.
func TestLoops_KnownPlacement(t *testing.T) {
	g, start := mustLab(t, labExample)
	trial := g.Clone()
	trial.Set(grid.Location{X: 3, Y: 6}, patrol.Wall)

	w := patrol.Patrol(trial, start, patrol.LabTerrain)
	assert.True(t, w.Looped)
	assert.True(t, patrol.Loops(trial, start, patrol.LabTerrain))

	// The original map is untouched by the trial.
	v, _ := g.GetByLocation(grid.Location{X: 3, Y: 6})
	assert.Equal(t, patrol.Ground, v)
	assert.False(t, patrol.Loops(g, start, patrol.LabTerrain))
}

// TestCover_LoopingMapTerminates ensures coverage returns on a closed circuit.
func TestCover_LoopingMapTerminates(t *testing.T) {
	// The guard circles the 2x2 ring inside the walls forever.
	input := ".#..\n...#\n#^..\n..#."
	g, start := mustLab(t, input)
	w := patrol.Patrol(g, start, patrol.LabTerrain)
	assert.True(t, w.Looped)
	assert.Equal(t, 4, w.Visited.Size())
}

//----------------------------------------------------------------------------//
// CountLoopPlacements
//----------------------------------------------------------------------------//

// TestCountLoopPlacements_LabExample verifies the serial count.
func TestCountLoopPlacements_LabExample(t *testing.T) {
	g, start := mustLab(t, labExample)
	n, err := patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// g must not have been mutated by any trial.
	fresh, _ := mustLab(t, labExample)
	assert.Equal(t, fresh.Len(), g.Len())
	assert.Equal(t, fresh.FindAll(isWall), g.FindAll(isWall))
}

// TestCountLoopPlacements_Parallel checks the fork-join result equals the serial one.
func TestCountLoopPlacements_Parallel(t *testing.T) {
	g, start := mustLab(t, labExample)
	for _, workers := range []int{2, 4, 16} {
		n, err := patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall,
			patrol.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, 6, n, "workers=%d", workers)
	}
}

// TestCountLoopPlacements_Options covers invalid workers, cancellation and logging.
func TestCountLoopPlacements_Options(t *testing.T) {
	g, start := mustLab(t, labExample)

	_, err := patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall, patrol.WithWorkers(0))
	assert.ErrorIs(t, err, patrol.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall, patrol.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall,
		patrol.WithContext(ctx), patrol.WithWorkers(3))
	assert.ErrorIs(t, err, context.Canceled)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	n, err := patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall, patrol.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, 6, last.Data["loops"])
	assert.Equal(t, 40, last.Data["candidates"])
}

// TestCountLoopPlacements_NoCandidates handles an actor that halts immediately.
func TestCountLoopPlacements_NoCandidates(t *testing.T) {
	g, start := mustLab(t, "^..")
	n, err := patrol.CountLoopPlacements(g, start, patrol.LabTerrain, patrol.Wall)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func isWall(_ grid.Location, t patrol.Tile) bool { return t == patrol.Wall }
