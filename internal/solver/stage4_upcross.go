package solver

import "github.com/ehrlich-b/rubik-solver/internal/cube"

// Stage 4 - Up Cross (spec §4.5.4). Grounded on the teacher's
// patterns.go-style pattern classification (dot/L/line/cross), driving the
// single named algorithm F U R U' R' F' through a bounded self-correcting
// loop rather than a precomputed move count: each application is
// rechecked against the actual cube, so the loop converges regardless of
// which of the four patterns it starts from.
var upEdgeFaceOf = map[cube.Coord]cube.Face{
	{1, 0, 0}: cube.Front,
	{2, 0, 1}: cube.Right,
	{1, 0, 2}: cube.Back,
	{0, 0, 1}: cube.Left,
}

func upLitFaces(c *cube.Cube) map[cube.Face]bool {
	upColor := c.FaceColor(cube.Up)
	lit := map[cube.Face]bool{}
	for coord, face := range upEdgeFaceOf {
		lit[face] = c.ColorAt(coord, cube.Up) == upColor
	}
	return lit
}

func applyUpCrossAlgorithm(t *turner, localF, localR cube.Face) {
	t.turn(localF, cube.Clockwise)
	t.turn(cube.Up, cube.Clockwise)
	t.turn(localR, cube.Clockwise)
	t.turn(cube.Up, cube.CounterClockwise)
	t.turn(localR, cube.CounterClockwise)
	t.turn(localF, cube.CounterClockwise)
}

func runStage4(c *cube.Cube, out *[]cube.Rotation) error {
	t := newTurner(c, out)

	for pass := 0; pass < 6 && !c.HasUpCross(); pass++ {
		lit := upLitFaces(c)
		count := 0
		for _, on := range lit {
			if on {
				count++
			}
		}

		switch count {
		case 0: // dot
			applyUpCrossAlgorithm(t, cube.Front, cube.Right)
		case 2:
			if lit[cube.Front] && lit[cube.Back] {
				applyUpCrossAlgorithm(t, cube.Front, cube.Right)
			} else if lit[cube.Left] && lit[cube.Right] {
				t.turn(cube.Up, cube.Clockwise)
				applyUpCrossAlgorithm(t, cube.Front, cube.Right)
			} else {
				// adjacent pair (L-shape): turn UP until the lit pair
				// sits at Back and Left, then apply in the Front/Right frame.
				for i := 0; i < 3 && !(lit[cube.Back] && lit[cube.Left]); i++ {
					t.turn(cube.Up, cube.Clockwise)
					lit = upLitFaces(c)
				}
				applyUpCrossAlgorithm(t, cube.Front, cube.Right)
			}
		default:
			return fail(DownMidLayersAndUpCross, "unexpected UP-edge pattern with %d lit edges", count)
		}
	}

	if !c.HasUpCross() {
		return fail(DownMidLayersAndUpCross, "up cross not formed")
	}
	return nil
}
