package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 1 - Down Cross, via an UP-layer daisy. Grounded on spec §4.5.1 and
// the teacher's WhiteCrossPattern (patterns.go), generalized from a
// position-only check into the full classify-and-fix rule catalogue.
//
// Every DOWN-colored edge starts in one of five places: already correctly
// seated in the down cross, a UP-layer petal, flipped in the UP layer,
// sitting in the middle layer, or sitting in the DOWN layer but not yet
// seated. bringToPetal leaves an already-seated edge untouched and reduces
// every other case to "UP-layer petal" in a single call; the maximum
// number of cube-wide passes needed to land all four simultaneously is
// bounded, since each pass can only ever turn non-petals into petals
// (never the reverse) for the edge it is currently handling.
func runStage1(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)
	downColor := c.FaceColor(cube.Down)
	sideColors := sideColorsOf(c)

	for pass := 0; pass < 8 && !readyToDrop(c, downColor, sideColors); pass++ {
		for _, side := range sideColors {
			bringToPetal(t, downColor, side)
		}
	}
	if !readyToDrop(c, downColor, sideColors) {
		return fail(DownCross, "could not form an UP daisy")
	}

	for _, side := range sideColors {
		dropPetal(t, downColor, side)
	}
	if !c.HasDownCross() {
		return fail(DownCross, "down cross not formed after dropping all petals")
	}
	return nil
}

// readyToDrop reports whether every down-colored edge is either already
// seated or sitting as a UP-layer petal, i.e. dropPetal can now place (or
// skip) all four without any of them still being stuck in the middle or
// DOWN layer. bringToPetal and dropPetal skip an edge that is already
// seated, so the daisy itself need not be complete across all four at
// once - only this weaker per-edge condition.
func readyToDrop(c *cube.Cube, downColor cube.Color, sideColors [4]cube.Color) bool {
	for _, side := range sideColors {
		coord, ok := c.LocateEdge(downColor, side)
		if !ok {
			return false
		}
		if !isPetal(c, coord, downColor) && !isSeated(c, coord, downColor) {
			return false
		}
	}
	return true
}

// sideColorsOf returns the four side faces' center colors, read once since
// center colors never move.
func sideColorsOf(c *cube.Cube) [4]cube.Color {
	return [4]cube.Color{
		c.FaceColor(cube.Front), c.FaceColor(cube.Right),
		c.FaceColor(cube.Back), c.FaceColor(cube.Left),
	}
}

func isPetal(c *cube.Cube, coord cube.Coord, downColor cube.Color) bool {
	return coord.Y == 0 && c.ColorAt(coord, cube.Up) == downColor
}

// isSeated reports whether the edge at coord is already a correctly placed
// down-cross member: in the DOWN layer, showing downColor on its DOWN
// sticker, with its side sticker matching that side face's own center.
func isSeated(c *cube.Cube, coord cube.Coord, downColor cube.Color) bool {
	if coord.Y != 2 || c.ColorAt(coord, cube.Down) != downColor {
		return false
	}
	side := cube.SideFace(coord)
	return c.ColorAt(coord, side) == c.FaceColor(side)
}

// sideColorShowing returns whichever of the four side faces at coord
// currently displays color (a coordinate's non-exterior slots read as
// NoColor, which never matches a real color).
func sideColorShowing(c *cube.Cube, coord cube.Coord, color cube.Color) cube.Face {
	for _, f := range [4]cube.Face{cube.Front, cube.Right, cube.Back, cube.Left} {
		if c.ColorAt(coord, f) == color {
			return f
		}
	}
	return cube.Front
}

// middleFixMove returns the single quarter turn that lifts the middle-
// layer edge at coord into the UP layer as a petal or a UP-flip, per the
// four fixed middle-slot coordinates.
func middleFixMove(coord cube.Coord) (cube.Face, cube.Direction) {
	switch {
	case coord.X == 0 && coord.Z == 0:
		return cube.Front, cube.Clockwise
	case coord.X == 2 && coord.Z == 0:
		return cube.Front, cube.CounterClockwise
	case coord.X == 0 && coord.Z == 2:
		return cube.Back, cube.CounterClockwise
	default:
		return cube.Back, cube.Clockwise
	}
}

// bringToPetal leaves the downColor/sideColor edge as a correctly-showing
// UP-layer petal, regardless of where it started.
func bringToPetal(t *turner, downColor, sideColor cube.Color) {
	locate := func() (cube.Coord, bool) { return t.cube.LocateEdge(downColor, sideColor) }

	coord, ok := locate()
	if !ok || isPetal(t.cube, coord, downColor) || isSeated(t.cube, coord, downColor) {
		return
	}
	// clearAbove turns UP until the UP-layer slot above f holds no petal,
	// so lifting an edge into that slot never knocks a petal back down.
	clearAbove := func(f cube.Face) {
		for i := 0; i < 3; i++ {
			for slot, face := range upEdgeFaceOf {
				if face == f && !isPetal(t.cube, slot, downColor) {
					return
				}
			}
			t.turn(cube.Up, cube.Clockwise)
		}
	}

	switch {
	case coord.Y == 2: // DOWN layer, wrongly placed: double-turn the adjacent side face up.
		face := cube.SideFace(coord)
		clearAbove(face)
		t.turn(face, cube.Clockwise)
		t.turn(face, cube.Clockwise)
	case coord.Y == 1: // middle layer: one fixed quarter turn.
		face, dir := middleFixMove(coord)
		clearAbove(face)
		t.turn(face, dir)
	default: // UP layer, flipped: the fix below handles it directly.
	}

	coord, ok = locate()
	if !ok || isPetal(t.cube, coord, downColor) {
		return
	}
	// Now in the UP layer showing downColor on a side sticker: rotate that
	// face, then the next side face around the UP-turn axis, landing it
	// as a petal somewhere in the UP layer (which slot doesn't matter;
	// dropPetal finds it again by color).
	face := sideColorShowing(t.cube, coord, downColor)
	t.turn(face, cube.Clockwise)
	clearAbove(cube.NextSide(face))
	t.turn(cube.NextSide(face), cube.Clockwise)
}

// dropPetal aligns the downColor/sideColor petal above its target slot and
// drops it into the DOWN cross with a double turn of that side face. An
// edge already seated from a prior stage-1 pass is left untouched.
func dropPetal(t *turner, downColor, sideColor cube.Color) {
	locate := func() (cube.Coord, bool) { return t.cube.LocateEdge(downColor, sideColor) }

	coord, ok := locate()
	if ok && isSeated(t.cube, coord, downColor) {
		return
	}

	var targetFace cube.Face
	for _, f := range [4]cube.Face{cube.Front, cube.Right, cube.Back, cube.Left} {
		if t.cube.FaceColor(f) == sideColor {
			targetFace = f
		}
	}
	if err := alignUp(t, targetFace, locate); err != nil {
		return
	}
	t.turn(targetFace, cube.Clockwise)
	t.turn(targetFace, cube.Clockwise)
}
