package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 3 - Middle Layer Edges (spec §4.5.3). Grounded on the teacher's
// patterns.go layer-completion checks, generalized into the actual
// insertion algorithm using the same localF/localR face-pair convention
// stage 2 uses, since the insert here is the same family of UP-turn
// commutator: a face turn and its inverse bracket the UP turns, so a
// slot's own already-solved neighbors are left alone while the target
// edge travels through the UP layer into place.
type middleSlot struct {
	coord        cube.Coord
	faceA, faceB cube.Face
}

var middleSlots = [4]middleSlot{
	{cube.Coord{0, 1, 0}, cube.Left, cube.Front},
	{cube.Coord{2, 1, 0}, cube.Front, cube.Right},
	{cube.Coord{2, 1, 2}, cube.Right, cube.Back},
	{cube.Coord{0, 1, 2}, cube.Back, cube.Left},
}

func runStage3(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)

	for _, slot := range middleSlots {
		localF, localR := localFR(slot.faceA, slot.faceB)
		targetColors := [2]cube.Color{c.FaceColor(localF), c.FaceColor(localR)}
		locate := func() (cube.Coord, bool) {
			return c.LocateEdge(targetColors[0], targetColors[1])
		}

		if coord, ok := locate(); ok && coord != slot.coord {
			if occupant, ok2 := occupantAt(c, slot.coord); ok2 && occupant {
				insertEdge(t, localF, localR)
			}
		}

		placed := false
		for attempt := 0; attempt < 4 && !placed; attempt++ {
			coord, ok := locate()
			if !ok {
				break
			}
			if coord == slot.coord && c.ColorAt(coord, localF) == targetColors[0] {
				placed = true
				break
			}
			if coord.Y == 1 {
				// occupying a different middle slot entirely; evict via
				// that slot's own insert so it reappears in the UP layer.
				otherF, otherR := sideFacesAt(coord)
				lf, lr := localFR(otherF, otherR)
				insertEdge(t, lf, lr)
				continue
			}
			// By this point the target edge can only be sitting in the UP
			// layer (the down layer is fully occupied by stage 1/2's cross
			// and corners, and a different middle slot was handled above),
			// so it has exactly one side face - align with alignUp (built
			// for that single-side-face shape), not the two-side-face
			// corner aligner. An edge whose side sticker carries localR's
			// color goes in from above localR with the mirror insert.
			if c.ColorAt(coord, cube.SideFace(coord)) != targetColors[0] {
				if err := alignUp(t, localR, locate); err != nil {
					return fail(DownAndMiddleLayers, "%v", err)
				}
				t.turn(cube.Up, cube.CounterClockwise)
				t.turn(localF, cube.CounterClockwise)
				t.turn(cube.Up, cube.Clockwise)
				t.turn(localF, cube.Clockwise)
				t.turn(cube.Up, cube.Clockwise)
				t.turn(localR, cube.Clockwise)
				t.turn(cube.Up, cube.CounterClockwise)
				t.turn(localR, cube.CounterClockwise)
				continue
			}
			if err := alignUp(t, localF, locate); err != nil {
				return fail(DownAndMiddleLayers, "%v", err)
			}
			insertEdge(t, localF, localR)
		}
		if !placed {
			if coord, ok := locate(); !ok || coord != slot.coord {
				return fail(DownAndMiddleLayers, "middle edge for slot %v did not seat", slot.coord)
			}
		}
	}

	if !c.IsDownLayerSolved() || !c.IsMiddleLayerSolved() {
		return fail(DownAndMiddleLayers, "down/middle layers not solved after placing all four middle edges")
	}
	return nil
}

// occupantAt reports whether the edge in slot (there always is one, post
// stage 1/2, since every non-corner non-center coordinate is occupied)
// has at least one sticker that differs from its side face's center —
// i.e. a wrong edge sitting where ours belongs. The second result is
// always true. Used only to decide whether an eviction pass is needed
// before aligning.
func occupantAt(c *cube.Cube, coord cube.Coord) (bool, bool) {
	a, b := sideFacesAt(coord)
	return c.ColorAt(coord, a) != c.FaceColor(a) || c.ColorAt(coord, b) != c.FaceColor(b), true
}

// insertEdge applies the standard eight-move UP-layer edge insert for
// the slot whose faces are (localF, localR): U localR U' localR' U'
// localF' U localF.
func insertEdge(t *turner, localF, localR cube.Face) {
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localR, cube.Clockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(localR, cube.CounterClockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(localF, cube.CounterClockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localF, cube.Clockwise)
}
