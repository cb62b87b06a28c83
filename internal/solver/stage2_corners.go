package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 2 - Down Corners, via the standard three-move inserts (spec
// §4.5.2). Grounded on the teacher's WhiteLayerPattern (patterns.go),
// generalized from its position-only completeness check into the actual
// insert algorithm that produces that position.
//
// Every insert used here (R U R', F' U' F, and the R U R' U' re-orient)
// shares one property: the face turn and its own inverse sandwich a
// single UP turn, so the face's own ring of four edges and four corners
// is left exactly as it was for every member except the one that passed
// through the UP layer in between. That is what keeps an already-placed
// corner (or the down cross built in stage 1) undisturbed while a
// different corner on the same two faces is being inserted.
type cornerSlot struct {
	coord       cube.Coord
	faceA, faceB cube.Face
}

var cornerSlots = [4]cornerSlot{
	{cube.Coord{0, 2, 0}, cube.Left, cube.Front},
	{cube.Coord{2, 2, 0}, cube.Front, cube.Right},
	{cube.Coord{2, 2, 2}, cube.Right, cube.Back},
	{cube.Coord{0, 2, 2}, cube.Back, cube.Left},
}

// localFR orders a corner's two side faces into (localF, localR): the face
// pair convention every insert below is written against, where localR is
// cube.NextSide(localF), the face to localF's right as seen from outside
// localF.
func localFR(a, b cube.Face) (cube.Face, cube.Face) {
	if cube.NextSide(a) == b {
		return a, b
	}
	return b, a
}

func sideFacesAt(coord cube.Coord) (cube.Face, cube.Face) {
	var faces []cube.Face
	for _, f := range cube.ExteriorFaces(coord) {
		if f != cube.Up && f != cube.Down {
			faces = append(faces, f)
		}
	}
	return faces[0], faces[1]
}

func runStage2(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)
	downColor := c.FaceColor(cube.Down)

	for _, slot := range cornerSlots {
		localF, localR := localFR(slot.faceA, slot.faceB)
		targetColors := [3]cube.Color{downColor, c.FaceColor(localF), c.FaceColor(localR)}
		locate := func() (cube.Coord, bool) {
			return c.LocateCorner(targetColors[0], targetColors[1], targetColors[2])
		}

		placed := false
		for attempt := 0; attempt < 6 && !placed; attempt++ {
			coord, ok := locate()
			if !ok {
				break
			}
			if coord == slot.coord && c.ColorAt(coord, cube.Down) == downColor {
				placed = true
				break
			}
			if coord.Y == 2 {
				curA, curB := sideFacesAt(coord)
				_, curLocalR := localFR(curA, curB)
				t.turn(curLocalR, cube.Clockwise)
				t.turn(cube.Up, cube.Clockwise)
				t.turn(curLocalR, cube.CounterClockwise)
				continue
			}

			if err := alignCornerAbove(t, localF, localR, locate); err != nil {
				return fail(DownLayer, "%v", err)
			}
			coord, _ = locate()
			switch {
			case c.ColorAt(coord, localR) == downColor:
				t.turn(localR, cube.Clockwise)
				t.turn(cube.Up, cube.Clockwise)
				t.turn(localR, cube.CounterClockwise)
			case c.ColorAt(coord, localF) == downColor:
				t.turn(localF, cube.CounterClockwise)
				t.turn(cube.Up, cube.CounterClockwise)
				t.turn(localF, cube.Clockwise)
			default:
				t.turn(localR, cube.Clockwise)
				t.turn(cube.Up, cube.Clockwise)
				t.turn(localR, cube.CounterClockwise)
				t.turn(cube.Up, cube.CounterClockwise)
			}
		}
		if !placed {
			coord, ok := locate()
			if !ok || coord != slot.coord || c.ColorAt(coord, cube.Down) != downColor {
				return fail(DownLayer, "corner at %v did not seat", slot.coord)
			}
		}
	}

	if !c.IsDownLayerSolved() {
		return fail(DownLayer, "down layer not solved after placing all four corners")
	}
	return nil
}

// alignCornerAbove rotates UP until the corner located by locate sits
// directly above the slot whose side faces are {localF, localR}.
func alignCornerAbove(t *turner, localF, localR cube.Face, locate func() (cube.Coord, bool)) error {
	for i := 0; i < 4; i++ {
		coord, ok := locate()
		if !ok {
			return nil
		}
		a, b := sideFacesAt(coord)
		if (a == localF && b == localR) || (a == localR && b == localF) {
			return nil
		}
		if i == 3 {
			return nil
		}
		t.turn(cube.Up, cube.Clockwise)
	}
	return nil
}
