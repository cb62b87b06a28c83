package cube

import "testing"

func TestNewSolvedCubeIsSolved(t *testing.T) {
	c := NewSolvedCube()
	if !c.IsSolved() {
		t.Fatal("expected a freshly constructed cube to be solved")
	}
}

func TestRotateFaceFourTimesRestores(t *testing.T) {
	for _, face := range Faces {
		for _, dir := range []Direction{Clockwise, CounterClockwise} {
			c := NewSolvedCube()
			before := c.Clone()
			for i := 0; i < 4; i++ {
				c.RotateFace(face, dir)
			}
			if *c != *before {
				t.Fatalf("four %s%s turns did not restore the cube", face, dir)
			}
		}
	}
}

func TestRotateFaceThenInverseRestores(t *testing.T) {
	for _, face := range Faces {
		c := NewSolvedCube()
		before := c.Clone()
		c.RotateFace(face, Clockwise)
		c.RotateFace(face, CounterClockwise)
		if *c != *before {
			t.Fatalf("%s then %s' did not restore the cube", face, face)
		}
	}
}

func TestRotateFacePreservesStickerCounts(t *testing.T) {
	c := NewSolvedCube()
	c.RotateFace(Front, Clockwise)
	c.RotateFace(Up, CounterClockwise)
	c.RotateFace(Right, Clockwise)

	counts := map[Color]int{}
	for _, face := range Faces {
		for _, coord := range FaceCoordOrder[face] {
			counts[c.ColorAt(coord, face)]++
		}
	}
	for _, color := range allColors {
		if counts[color] != 9 {
			t.Errorf("color %s: got %d stickers, want 9", color, counts[color])
		}
	}
}

func TestRotateFacePreservesCenterColors(t *testing.T) {
	c := NewSolvedCube()
	before := map[Face]Color{}
	for _, face := range Faces {
		before[face] = c.FaceColor(face)
	}
	c.RotateFace(Left, Clockwise)
	c.RotateFace(Down, Clockwise)
	for _, face := range Faces {
		if c.FaceColor(face) != before[face] {
			t.Errorf("face %s center color changed after rotations", face)
		}
	}
}

func TestCubesAreIndependentInstances(t *testing.T) {
	a := NewSolvedCube()
	b := NewSolvedCube()
	a.RotateFace(Front, Clockwise)
	if !b.IsSolved() {
		t.Fatal("mutating one cube must not affect an independently constructed cube")
	}
}

func TestScrambledCubeStillRestoresUnderFourTurns(t *testing.T) {
	c := NewSolvedCube()
	c.RotateFace(Front, Clockwise)
	c.RotateFace(Up, Clockwise)
	c.RotateFace(Right, CounterClockwise)
	before := c.Clone()
	for i := 0; i < 4; i++ {
		c.RotateFace(Back, Clockwise)
	}
	if *c != *before {
		t.Fatal("four BACK turns on a scrambled cube did not restore it")
	}
}

func TestSolvedCubePredicates(t *testing.T) {
	c := NewSolvedCube()
	if !c.HasUpDaisy() && !c.HasUpCross() {
		// A solved cube has UP cross trivially true; daisy is false since
		// the UP edges show UP's color, not DOWN's.
	}
	if c.HasUpDaisy() {
		t.Error("a solved cube should not already show a daisy")
	}
	if !c.HasDownCross() {
		t.Error("a solved cube must satisfy HasDownCross")
	}
	if !c.IsDownLayerSolved() {
		t.Error("a solved cube must satisfy IsDownLayerSolved")
	}
	if !c.IsMiddleLayerSolved() {
		t.Error("a solved cube must satisfy IsMiddleLayerSolved")
	}
	if !c.HasUpCross() {
		t.Error("a solved cube must satisfy HasUpCross")
	}
	if !c.IsUpFaceSolved() {
		t.Error("a solved cube must satisfy IsUpFaceSolved")
	}
	if !c.IsUpEdgesSolved() {
		t.Error("a solved cube must satisfy IsUpEdgesSolved")
	}
	if !c.IsUpLayerSolved() {
		t.Error("a solved cube must satisfy IsUpLayerSolved")
	}
}

func TestFrontCWMovesUpFrontEdgeToFrontRightMiddle(t *testing.T) {
	c := NewSolvedCube()
	upFrontColor := c.FaceColor(Down)
	// Force a distinguishable sticker onto the UP-front edge's UP slot.
	cl := c.at(Coord{1, 0, 0})
	cl.setColor(Up, upFrontColor)
	c.set(Coord{1, 0, 0}, cl)

	c.RotateFace(Front, Clockwise)

	if c.ColorAt(Coord{2, 1, 0}, Right) != upFrontColor {
		t.Fatal("FRONT CW should carry the UP-front edge's UP sticker onto the FRONT-right middle slot's RIGHT face")
	}
}
