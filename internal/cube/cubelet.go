package cube

// Cubelet is one of the 27 unit pieces making up the cube. It holds a
// partial mapping from Face to Color: only the piece's exterior faces
// carry a color, interior faces are left at NoColor. Corners carry three
// stickers, edges two, centers one, and the single interior piece none.
type Cubelet struct {
	stickers [6]Color
}

// colorOf returns the color on the given face, or NoColor if that face
// of this cubelet has no sticker.
func (c Cubelet) colorOf(face Face) Color {
	return c.stickers[face]
}

// setColor assigns the sticker color on the given face.
func (c *Cubelet) setColor(face Face, color Color) {
	c.stickers[face] = color
}

// rotate applies one step of the given cubelet rotation, relabeling the
// four affected sticker slots by their 4-cycle and leaving the other two
// untouched. Two calls with the same direction compose to a 180-degree
// turn; four calls restore the original labeling.
func (c *Cubelet) rotate(dir CubeletRotationDirection) {
	switch dir {
	case FlipRightward:
		// UP -> RIGHT -> DOWN -> LEFT -> UP; FRONT/BACK fixed.
		c.stickers[Up], c.stickers[Right], c.stickers[Down], c.stickers[Left] =
			c.stickers[Left], c.stickers[Up], c.stickers[Right], c.stickers[Down]
	case FlipLeftward:
		c.stickers[Up], c.stickers[Right], c.stickers[Down], c.stickers[Left] =
			c.stickers[Right], c.stickers[Down], c.stickers[Left], c.stickers[Up]
	case FlipForward:
		// UP -> FRONT -> DOWN -> BACK -> UP; LEFT/RIGHT fixed.
		c.stickers[Up], c.stickers[Front], c.stickers[Down], c.stickers[Back] =
			c.stickers[Back], c.stickers[Up], c.stickers[Front], c.stickers[Down]
	case FlipBackward:
		c.stickers[Up], c.stickers[Front], c.stickers[Down], c.stickers[Back] =
			c.stickers[Front], c.stickers[Down], c.stickers[Back], c.stickers[Up]
	case SpinLeftward:
		// FRONT -> LEFT -> BACK -> RIGHT -> FRONT; UP/DOWN fixed.
		c.stickers[Front], c.stickers[Left], c.stickers[Back], c.stickers[Right] =
			c.stickers[Right], c.stickers[Front], c.stickers[Left], c.stickers[Back]
	case SpinRightward:
		c.stickers[Front], c.stickers[Left], c.stickers[Back], c.stickers[Right] =
			c.stickers[Left], c.stickers[Back], c.stickers[Right], c.stickers[Front]
	}
}
