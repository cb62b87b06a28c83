package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 5 - Up Face, orienting the last layer's corners (spec §4.5.5).
// Grounded on the teacher's patterns.go completion-percentage style,
// generalized into the sune maneuver applied after a UP alignment chosen by
// the number of already-oriented UP corners. Sune (R U R' U R U U R') turns
// the RIGHT face twice clockwise and twice counterclockwise, net zero, so —
// by the same ring argument as stage 2's inserts — it leaves every piece
// outside the UP layer exactly where it was; only UP-layer pieces move (the
// UP corners change orientation and position, and three UP edges are
// cycled with their UP stickers staying on UP).
func runStage5(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)

	upColor := c.FaceColor(cube.Up)
	for pass := 0; pass < 8 && !c.IsUpFaceSolved(); pass++ {
		// Alignment: no oriented corner -> UP color of the front-left corner
		// on Left; one -> that corner at front-left; two -> UP color on Front.
		oriented := 0
		for _, k := range [4]cube.Coord{{0, 0, 0}, {2, 0, 0}, {2, 0, 2}, {0, 0, 2}} {
			if c.ColorAt(k, cube.Up) == upColor {
				oriented++
			}
		}
		want := map[int]cube.Face{0: cube.Left, 1: cube.Up, 2: cube.Front}[oriented]
		for i := 0; i < 3 && c.ColorAt(cube.Coord{}, want) != upColor; i++ {
			t.turn(cube.Up, cube.Clockwise)
		}
		applySune(t, cube.Right)
	}

	if !c.IsUpFaceSolved() {
		return fail(DownMidLayersUpFace, "up face not oriented after the sune cycle")
	}
	return nil
}

// applySune runs R U R' U R U U R' using localR as R.
func applySune(t *turner, localR cube.Face) {
	t.turn(localR, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localR, cube.CounterClockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localR, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localR, cube.CounterClockwise)
}
