package cube

// Geometric predicates exposed to the solver. Each reads sticker state
// only through FaceColor/ColorAt; none mutates the cube.

var upEdgeCoords = [4]Coord{{1, 0, 0}, {0, 0, 1}, {2, 0, 1}, {1, 0, 2}}
var downEdgeCoords = [4]Coord{{1, 2, 0}, {0, 2, 1}, {2, 2, 1}, {1, 2, 2}}
var middleEdgeCoords = [4]Coord{{0, 1, 0}, {2, 1, 0}, {0, 1, 2}, {2, 1, 2}}

var sideFacesOf = [4]Face{Front, Left, Right, Back}

// SideFace returns the single non-Up/Down exterior face of an edge
// coordinate (Front/Back for z in {0,2}, Left/Right for x in {0,2}).
func SideFace(coord Coord) Face {
	switch {
	case coord.Z == 0:
		return Front
	case coord.Z == 2:
		return Back
	case coord.X == 0:
		return Left
	case coord.X == 2:
		return Right
	}
	return Front
}

// HasUpDaisy reports whether the four UP-layer edges show DOWN's color
// on their UP sticker.
func (c *Cube) HasUpDaisy() bool {
	downColor := c.FaceColor(Down)
	for _, coord := range upEdgeCoords {
		if c.ColorAt(coord, Up) != downColor {
			return false
		}
	}
	return true
}

// HasDownCross reports whether DOWN's four edges show DOWN's color on
// their DOWN sticker and each edge's side sticker matches its side
// face's center color.
func (c *Cube) HasDownCross() bool {
	downColor := c.FaceColor(Down)
	for _, coord := range downEdgeCoords {
		if c.ColorAt(coord, Down) != downColor {
			return false
		}
		side := SideFace(coord)
		if c.ColorAt(coord, side) != c.FaceColor(side) {
			return false
		}
	}
	return true
}

// IsDownLayerSolved reports whether the DOWN face is uniformly DOWN's
// color and each side face's bottom row matches that face's center.
func (c *Cube) IsDownLayerSolved() bool {
	downColor := c.FaceColor(Down)
	for _, coord := range FaceCoordOrder[Down] {
		if c.ColorAt(coord, Down) != downColor {
			return false
		}
	}
	for _, face := range sideFacesOf {
		target := c.FaceColor(face)
		order := FaceCoordOrder[face]
		bottomRow := order[6:9]
		for _, coord := range bottomRow {
			if c.ColorAt(coord, face) != target {
				return false
			}
		}
	}
	return true
}

// IsMiddleLayerSolved reports whether, for each side face, the left- and
// right-of-center stickers of the middle row match that face's center.
func (c *Cube) IsMiddleLayerSolved() bool {
	for _, face := range sideFacesOf {
		target := c.FaceColor(face)
		order := FaceCoordOrder[face]
		if c.ColorAt(order[3], face) != target || c.ColorAt(order[5], face) != target {
			return false
		}
	}
	return true
}

// HasUpCross reports whether UP's four edges show UP's color on their
// UP sticker.
func (c *Cube) HasUpCross() bool {
	upColor := c.FaceColor(Up)
	for _, coord := range upEdgeCoords {
		if c.ColorAt(coord, Up) != upColor {
			return false
		}
	}
	return true
}

// IsUpFaceSolved reports whether all nine UP stickers equal UP's color.
func (c *Cube) IsUpFaceSolved() bool {
	upColor := c.FaceColor(Up)
	for _, coord := range FaceCoordOrder[Up] {
		if c.ColorAt(coord, Up) != upColor {
			return false
		}
	}
	return true
}

// IsUpEdgesSolved reports whether every side face's top row matches that
// face's center color.
func (c *Cube) IsUpEdgesSolved() bool {
	for _, face := range sideFacesOf {
		target := c.FaceColor(face)
		order := FaceCoordOrder[face]
		topRow := order[0:3]
		for _, coord := range topRow {
			if c.ColorAt(coord, face) != target {
				return false
			}
		}
	}
	return true
}

// IsUpLayerSolved reports IsUpFaceSolved() && IsUpEdgesSolved().
func (c *Cube) IsUpLayerSolved() bool {
	return c.IsUpFaceSolved() && c.IsUpEdgesSolved()
}
