package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 6 - Permute Last Layer (spec §4.5.6). Grounded on the teacher's
// GetSolver/algorithm-catalogue style (solver.go, algorithms.go):
// a fixed named algorithm applied from a bounded set of UP alignments
// until the target invariant holds, generalized from the teacher's
// placeholder four/six-move stubs into the real A-perm and U-perm
// maneuvers.

// cornersPermuted reports whether every UP corner's side stickers already
// match their own faces' centers (orientation is already solved by stage
// 5, so this checks position only).
func cornersPermuted(c *cube.Cube) bool {
	for _, coord := range [4]cube.Coord{{0, 0, 0}, {2, 0, 0}, {2, 0, 2}, {0, 0, 2}} {
		a, b := sideFacesAt(coord)
		if c.ColorAt(coord, a) != c.FaceColor(a) || c.ColorAt(coord, b) != c.FaceColor(b) {
			return false
		}
	}
	return true
}

// applyAPerm runs R' F R' B2 R F' R' B2 R2 U', the named algorithm of
// spec §4.5.6, cycling three UP corners.
func applyAPerm(t *turner) {
	t.turn(cube.Right, cube.CounterClockwise)
	t.turn(cube.Front, cube.Clockwise)
	t.turn(cube.Right, cube.CounterClockwise)
	t.turn(cube.Back, cube.Clockwise)
	t.turn(cube.Back, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Front, cube.CounterClockwise)
	t.turn(cube.Right, cube.CounterClockwise)
	t.turn(cube.Back, cube.Clockwise)
	t.turn(cube.Back, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Up, cube.CounterClockwise)
}

// applyUPerm runs the outer-layer-only Ua-perm R U' R U R U R U' R' U' R2,
// three-cycling the UP edges.
func applyUPerm(t *turner) {
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(cube.Right, cube.CounterClockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(cube.Right, cube.Clockwise)
	t.turn(cube.Right, cube.Clockwise)
}

func runStage6(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)

	for pass := 0; pass < 16 && !cornersPermuted(c); pass++ {
		applyAPerm(t)
		if cornersPermuted(c) {
			break
		}
		t.turn(cube.Up, cube.Clockwise)
	}
	if !cornersPermuted(c) {
		return fail(Solved, "up corners not permuted after the A-perm cycle")
	}

	for pass := 0; pass < 16 && !c.IsSolved(); pass++ {
		applyUPerm(t)
		if c.IsSolved() {
			break
		}
		t.turn(cube.Up, cube.Clockwise)
	}
	if !c.IsSolved() {
		return fail(Solved, "cube not solved after the U-perm cycle")
	}
	return nil
}
