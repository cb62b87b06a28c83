package cube

// Locating pieces by the set of colors they carry, reimplemented against
// the 27-coordinate model (the teacher's pieces.go did this against an
// NxN face-array and an auxiliary position-mapping table; here a piece's
// identity is just "the coordinate whose sticker set matches").

// ExteriorFaces returns the faces on which the cubelet at coord carries a
// sticker: none for the interior piece, one for a center, two for an
// edge, three for a corner.
func ExteriorFaces(coord Coord) []Face {
	var faces []Face
	if coord.Z == 0 {
		faces = append(faces, Front)
	}
	if coord.Z == 2 {
		faces = append(faces, Back)
	}
	if coord.X == 0 {
		faces = append(faces, Left)
	}
	if coord.X == 2 {
		faces = append(faces, Right)
	}
	if coord.Y == 0 {
		faces = append(faces, Up)
	}
	if coord.Y == 2 {
		faces = append(faces, Down)
	}
	return faces
}

// AllEdgeCoords returns the 12 coordinates with exactly one axis at 1.
func AllEdgeCoords() []Coord {
	coords := make([]Coord, 0, 12)
	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			for z := 0; z <= 2; z++ {
				if isEdgeCoord(x, y, z) {
					coords = append(coords, Coord{x, y, z})
				}
			}
		}
	}
	return coords
}

// AllCornerCoords returns the 8 coordinates with no axis at 1.
func AllCornerCoords() []Coord {
	coords := make([]Coord, 0, 8)
	for _, x := range [2]int{0, 2} {
		for _, y := range [2]int{0, 2} {
			for _, z := range [2]int{0, 2} {
				coords = append(coords, Coord{x, y, z})
			}
		}
	}
	return coords
}

func isEdgeCoord(x, y, z int) bool {
	onAxis := 0
	if x == 1 {
		onAxis++
	}
	if y == 1 {
		onAxis++
	}
	if z == 1 {
		onAxis++
	}
	return onAxis == 1
}

func hasColorSet(coord Coord, cube *Cube, colors []Color) bool {
	faces := ExteriorFaces(coord)
	if len(faces) != len(colors) {
		return false
	}
	want := map[Color]bool{}
	for _, c := range colors {
		want[c] = true
	}
	for _, f := range faces {
		if !want[cube.ColorAt(coord, f)] {
			return false
		}
	}
	return true
}

// LocateEdge returns the coordinate of the edge cubelet carrying exactly
// the colors {a, b}, in either orientation.
func (c *Cube) LocateEdge(a, b Color) (Coord, bool) {
	for _, coord := range AllEdgeCoords() {
		if hasColorSet(coord, c, []Color{a, b}) {
			return coord, true
		}
	}
	return Coord{}, false
}

// LocateCorner returns the coordinate of the corner cubelet carrying
// exactly the colors {a, b, c3}.
func (c *Cube) LocateCorner(a, b, c3 Color) (Coord, bool) {
	for _, coord := range AllCornerCoords() {
		if hasColorSet(coord, c, []Color{a, b, c3}) {
			return coord, true
		}
	}
	return Coord{}, false
}
