package cube

import "fmt"

// Coord is an integer coordinate in {0,1,2}^3 identifying one of the 27
// cubelets.
type Coord struct {
	X, Y, Z int
}

// Cube is a mapping from every coordinate in {0,1,2}^3 to a Cubelet. It
// is created once by the codec from validated text and mutated only
// through rotateFace; every Cube owns its own independent array (never
// package-level state), so two Cubes never share storage.
type Cube struct {
	cubelets [3][3][3]Cubelet
}

// FaceCoordOrder gives, for each face, the fixed nine-coordinate
// enumeration order used both by rotateFace's face membership and by the
// cube-code serialization (cubecode package imports this table so the
// two stay in lockstep).
var FaceCoordOrder = map[Face][9]Coord{
	Front: {
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 1, 0}, {1, 1, 0}, {2, 1, 0},
		{0, 2, 0}, {1, 2, 0}, {2, 2, 0},
	},
	Right: {
		{2, 0, 0}, {2, 0, 1}, {2, 0, 2},
		{2, 1, 0}, {2, 1, 1}, {2, 1, 2},
		{2, 2, 0}, {2, 2, 1}, {2, 2, 2},
	},
	Back: {
		{2, 0, 2}, {1, 0, 2}, {0, 0, 2},
		{2, 1, 2}, {1, 1, 2}, {0, 1, 2},
		{2, 2, 2}, {1, 2, 2}, {0, 2, 2},
	},
	Left: {
		{0, 0, 2}, {0, 0, 1}, {0, 0, 0},
		{0, 1, 2}, {0, 1, 1}, {0, 1, 0},
		{0, 2, 2}, {0, 2, 1}, {0, 2, 0},
	},
	Up: {
		{0, 0, 2}, {1, 0, 2}, {2, 0, 2},
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
	},
	Down: {
		{0, 2, 0}, {1, 2, 0}, {2, 2, 0},
		{0, 2, 1}, {1, 2, 1}, {2, 2, 1},
		{0, 2, 2}, {1, 2, 2}, {2, 2, 2},
	},
}

// faceCenterCoord is the single coordinate whose center sticker defines
// a face's color (exactly two of x,y,z equal 1 there).
var faceCenterCoord = map[Face]Coord{
	Front: {1, 1, 0},
	Back:  {1, 1, 2},
	Left:  {0, 1, 1},
	Right: {2, 1, 1},
	Up:    {1, 0, 1},
	Down:  {1, 2, 1},
}

// NewSolvedCube builds a cube in the solved state: every sticker on a
// face shows that face's designated color.
func NewSolvedCube() *Cube {
	solvedColor := map[Face]Color{
		Front: White,
		Right: Yellow,
		Back:  Red,
		Left:  Orange,
		Up:    Blue,
		Down:  Green,
	}
	c := &Cube{}
	for _, face := range Faces {
		color := solvedColor[face]
		for _, coord := range FaceCoordOrder[face] {
			cl := c.at(coord)
			cl.setColor(face, color)
			c.set(coord, cl)
		}
	}
	return c
}

// Clone returns an independent copy; mutating the result never affects
// the receiver.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.cubelets = c.cubelets
	return clone
}

func (c *Cube) at(coord Coord) Cubelet {
	return c.cubelets[coord.X][coord.Y][coord.Z]
}

func (c *Cube) set(coord Coord, cl Cubelet) {
	c.cubelets[coord.X][coord.Y][coord.Z] = cl
}

// ColorAt returns the sticker color on the given face at the given
// coordinate, or NoColor if that cubelet has no sticker there.
func (c *Cube) ColorAt(coord Coord, face Face) Color {
	return c.at(coord).colorOf(face)
}

// SetColorAt assigns the sticker color on the given face at the given
// coordinate. Used by the codec to populate a cube from decoded text;
// the solver never calls this directly, only RotateFace.
func (c *Cube) SetColorAt(coord Coord, face Face, color Color) {
	cl := c.at(coord)
	cl.setColor(face, color)
	c.set(coord, cl)
}

// faceTransform returns T: the bijection on the face's nine coordinates
// (and identity elsewhere) for a quarter turn of (face, direction), per
// the fixed table of the cube state model.
func faceTransform(face Face, dir Direction) func(Coord) Coord {
	switch face {
	case Front, Back:
		cw := face == Front
		if dir == CounterClockwise {
			cw = !cw
		}
		if cw {
			return func(c Coord) Coord { return Coord{2 - c.Y, c.X, c.Z} }
		}
		return func(c Coord) Coord { return Coord{c.Y, 2 - c.X, c.Z} }
	case Left, Right:
		cw := face == Left
		if dir == CounterClockwise {
			cw = !cw
		}
		if cw {
			return func(c Coord) Coord { return Coord{c.X, 2 - c.Z, c.Y} }
		}
		return func(c Coord) Coord { return Coord{c.X, c.Z, 2 - c.Y} }
	case Up, Down:
		cw := face == Up
		if dir == CounterClockwise {
			cw = !cw
		}
		if cw {
			return func(c Coord) Coord { return Coord{c.Z, c.Y, 2 - c.X} }
		}
		return func(c Coord) Coord { return Coord{2 - c.Z, c.Y, c.X} }
	}
	return func(c Coord) Coord { return c }
}

// RotateFace turns a face a quarter turn in the given direction: every
// cubelet on that face moves to its transformed coordinate and has its
// stickers relabeled by the matching cubelet rotation. Four successive
// calls with the same arguments restore the cube exactly.
func (c *Cube) RotateFace(face Face, dir Direction) {
	transform := faceTransform(face, dir)
	rot := cubeletRotationFor(face, dir)
	coords := FaceCoordOrder[face]

	// Gather into a temporary buffer before installing so that no
	// coordinate's write clobbers a source slot another coordinate still
	// needs to read.
	type placement struct {
		dest Coord
		cl   Cubelet
	}
	buffer := make([]placement, 0, 9)
	for _, src := range coords {
		cl := c.at(src)
		cl.rotate(rot)
		buffer = append(buffer, placement{dest: transform(src), cl: cl})
	}
	for _, p := range buffer {
		c.set(p.dest, p.cl)
	}
}

// Apply runs a sequence of rotations in order.
func (c *Cube) Apply(rotations []Rotation) {
	for _, r := range rotations {
		c.RotateFace(r.Face, r.Direction)
	}
}

// FaceColor returns the color of the center piece of the given face.
func (c *Cube) FaceColor(face Face) Color {
	return c.ColorAt(faceCenterCoord[face], face)
}

// IsSolved reports whether every face is uniformly its center color.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		target := c.FaceColor(face)
		for _, coord := range FaceCoordOrder[face] {
			if c.ColorAt(coord, face) != target {
				return false
			}
		}
	}
	return true
}

// String renders the cube face by face using color letters, in the same
// block order as the cube code, for debugging and CLI display.
func (c *Cube) String() string {
	out := ""
	for _, face := range Faces {
		out += fmt.Sprintf("%s:", face)
		for i, coord := range FaceCoordOrder[face] {
			if i%3 == 0 {
				out += " "
			}
			out += c.ColorAt(coord, face).String()
		}
		out += "\n"
	}
	return out
}
