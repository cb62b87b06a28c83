package solver

import (
	"testing"

	"github.com/ehrlich-b/rubik-solver/internal/cube"
	"github.com/ehrlich-b/rubik-solver/internal/cubecode"
)

const solvedCode = "wwwwwwwwwyyyyyyyyyrrrrrrrrrooooooooobbbbbbbbbggggggggg"

func TestSolvedInputEverySatageEmptySolution(t *testing.T) {
	for stage := DownCross; stage <= Solved; stage++ {
		s, err := NewFromText(solvedCode, stage)
		if err != nil {
			t.Fatalf("stage %s: %v", stage, err)
		}
		solution, err := s.GetSolution()
		if err != nil {
			t.Fatalf("stage %s: %v", stage, err)
		}
		if len(solution) != 0 {
			t.Errorf("stage %s: expected empty solution for an already-solved cube, got %d rotations", stage, len(solution))
		}
	}
}

func TestInputMissingAndMalformedPropagate(t *testing.T) {
	if _, err := NewFromText("", Solved); err == nil {
		t.Fatal("expected an error for an empty cube code")
	}
	if _, err := NewFromText("bryogw", Solved); err == nil {
		t.Fatal("expected an error for a malformed cube code")
	}
}

func TestScenario2DownCross(t *testing.T) {
	assertStageInvariant(t, "wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg", DownCross,
		func(c *cube.Cube) bool { return c.HasDownCross() })
}

func TestScenario3DownLayer(t *testing.T) {
	assertStageInvariant(t, "owrwbwybyyywrrybygggorgbygwgbboogborwrrryowobgwogwbryo", DownLayer,
		func(c *cube.Cube) bool { return c.IsDownLayerSolved() })
}

func TestScenario4DownAndMiddleLayers(t *testing.T) {
	assertStageInvariant(t, "rorwbrrgwwgrbrygwoyogoggbgyoywworbygywbbyobbgyrorwboyw", DownAndMiddleLayers,
		func(c *cube.Cube) bool { return c.IsDownLayerSolved() && c.IsMiddleLayerSolved() })
}

func TestScenario5UpCross(t *testing.T) {
	assertStageInvariant(t, "gbgbbbbbbyyyrrrrrrbobggggggyyyoooooooyrrygoyrwwwwwwwww", DownMidLayersAndUpCross,
		func(c *cube.Cube) bool { return c.IsDownLayerSolved() && c.IsMiddleLayerSolved() && c.HasUpCross() })
}

func assertStageInvariant(t *testing.T, code string, stage SolveStage, invariant func(*cube.Cube) bool) {
	t.Helper()
	s, err := NewFromText(code, stage)
	if err != nil {
		t.Fatalf("NewFromText: %v", err)
	}
	solution, err := s.GetSolution()
	if err != nil {
		t.Fatalf("GetSolution: %v", err)
	}
	c, err := cubecode.Decode(code)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	c.Apply(solution)
	if !invariant(c) {
		t.Errorf("stage %s invariant not satisfied after applying %d rotations", stage, len(solution))
	}
}

func TestRandomScramblesFullySolve(t *testing.T) {
	scrambles := [][]cube.Rotation{
		{{Face: cube.Right, Direction: cube.Clockwise}, {Face: cube.Up, Direction: cube.CounterClockwise}, {Face: cube.Front, Direction: cube.Clockwise}},
		{{Face: cube.Left, Direction: cube.Clockwise}, {Face: cube.Down, Direction: cube.Clockwise}, {Face: cube.Back, Direction: cube.CounterClockwise}, {Face: cube.Up, Direction: cube.Clockwise}},
		{{Face: cube.Front, Direction: cube.Clockwise}, {Face: cube.Right, Direction: cube.Clockwise}, {Face: cube.Up, Direction: cube.Clockwise}, {Face: cube.Right, Direction: cube.CounterClockwise}, {Face: cube.Up, Direction: cube.CounterClockwise}, {Face: cube.Front, Direction: cube.CounterClockwise}},
	}
	for i, scramble := range scrambles {
		c := cube.NewSolvedCube()
		c.Apply(scramble)
		s := New(c, Solved)
		solution, err := s.GetSolution()
		if err != nil {
			t.Fatalf("scramble %d: %v", i, err)
		}
		working := c.Clone()
		working.Apply(solution)
		if !working.IsSolved() {
			t.Errorf("scramble %d: cube not solved after applying the produced solution", i)
		}
	}
}
