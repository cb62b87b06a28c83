// Package solver implements the layered solver: six ordered stages, each a
// closed catalogue of pattern -> maneuver rules, that together turn an
// arbitrary legal cube into a solved one. Grounded on the teacher's
// internal/cube/solver.go Solver interface and patterns.go pattern-matching
// style, generalized from the teacher's NxN placeholder stubs into the
// fixed six-stage 3x3x3 catalogue this system actually runs.
package solver

import (
	"fmt"

	"github.com/ehrlich-b/rubik-solver/internal/cube"
	"github.com/ehrlich-b/rubik-solver/internal/cubecode"
)

// SolveStage enumerates the solver's ordered sub-goals. Requesting stage k
// runs stages 1..k on a working copy of the input cube.
type SolveStage int

const (
	DownCross SolveStage = iota
	DownLayer
	DownAndMiddleLayers
	DownMidLayersAndUpCross
	DownMidLayersUpFace
	Solved
)

func (s SolveStage) String() string {
	switch s {
	case DownCross:
		return "DOWN_CROSS"
	case DownLayer:
		return "DOWN_LAYER"
	case DownAndMiddleLayers:
		return "DOWN_AND_MIDDLE_LAYERS"
	case DownMidLayersAndUpCross:
		return "DOWN_MID_LAYERS_AND_UP_CROSS"
	case DownMidLayersUpFace:
		return "DOWN_MID_LAYERS_UP_FACE"
	case Solved:
		return "SOLVED"
	default:
		return "?"
	}
}

// ParseStage maps a stage name (as used in the request/response contract)
// to its SolveStage, case-sensitive on the canonical spelling above.
func ParseStage(name string) (SolveStage, bool) {
	for s := DownCross; s <= Solved; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return DownCross, false
}

// Error is a ProgrammerError: a stage finished without satisfying its own
// post-invariant. Per the error taxonomy, the solver assumes a valid cube
// and never produces InputMissing/InputMalformed itself; this is the one
// error kind that originates here, and it must never happen on a valid
// input — it is a fatal assertion, not a retryable condition.
type Error struct {
	Stage   SolveStage
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("solver: stage %s: %s", e.Stage, e.Message)
}

func fail(stage SolveStage, format string, args ...any) error {
	return &Error{Stage: stage, Message: fmt.Sprintf(format, args...)}
}

// stageRunner applies one stage's rules to the working cube, appending the
// rotations it performs to out, and returns an error if the stage cannot
// establish its own post-invariant.
type stageRunner func(c *cube.Cube, out *[]cube.Rotation) error

var stageRunners = map[SolveStage]stageRunner{
	DownCross:               runStage1,
	DownLayer:               runStage2,
	DownAndMiddleLayers:     runStage3,
	DownMidLayersAndUpCross: runStage4,
	DownMidLayersUpFace:     runStage5,
	Solved:                  runStage6,
}

// Solver owns a working copy of a Cube and the target stage; GetSolution
// collects the rotations its stages emit. The caller's input cube (or cube
// code) is never mutated: New clones it, NewFromText decodes a fresh one.
type Solver struct {
	cube  *cube.Cube
	stage SolveStage
}

// New constructs a Solver targeting stage over a clone of c.
func New(c *cube.Cube, stage SolveStage) *Solver {
	return &Solver{cube: c.Clone(), stage: stage}
}

// NewFromText decodes text via the cube-code codec and constructs a Solver
// over the result. Decode errors (InputMissing/InputMalformed) propagate
// unchanged.
func NewFromText(text string, stage SolveStage) (*Solver, error) {
	c, err := cubecode.Decode(text)
	if err != nil {
		return nil, err
	}
	return New(c, stage), nil
}

// GetSolution runs every stage from DownCross through the Solver's target
// stage in order and returns the concatenated list of rotations. For a
// cube already satisfying the target stage's invariant, the list is empty.
func (s *Solver) GetSolution() ([]cube.Rotation, error) {
	var out []cube.Rotation
	for stage := DownCross; stage <= s.stage; stage++ {
		run := stageRunners[stage]
		if err := run(s.cube, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// turner accumulates rotations into a slice while applying each to a
// working cube, shared by every stage's maneuver code.
type turner struct {
	cube *cube.Cube
	out  *[]cube.Rotation
}

func newTurner(c *cube.Cube, out *[]cube.Rotation) *turner {
	return &turner{cube: c, out: out}
}

func (t *turner) turn(face cube.Face, dir cube.Direction) {
	t.cube.RotateFace(face, dir)
	*t.out = append(*t.out, cube.Rotation{Face: face, Direction: dir})
}

// alignUp rotates UP (at most three quarter turns) until locate(working
// cube) reports a coordinate whose side face equals target, returning an
// error if the piece is not found or never reaches target. Bounded so a
// mistaken target can never loop
// forever; a target that never appears after three turns is a programmer
// error in the caller's classification, not a property of a valid cube.
func alignUp(t *turner, target cube.Face, locate func() (cube.Coord, bool)) error {
	for i := 0; i < 4; i++ {
		coord, ok := locate()
		if !ok {
			return fmt.Errorf("alignUp: piece not found")
		}
		if cube.SideFace(coord) == target {
			return nil
		}
		if i == 3 {
			return fmt.Errorf("alignUp: never reached target face %s", target)
		}
		t.turn(cube.Up, cube.Clockwise)
	}
	return nil
}
