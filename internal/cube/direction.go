package cube

// CubeletRotationDirection classifies how a single cubelet's stickers are
// relabeled when the cubelet is carried by a face turn: a 4-cycle over
// four of its six sticker slots, the other two held fixed.
type CubeletRotationDirection int

const (
	FlipRightward CubeletRotationDirection = iota
	FlipLeftward
	FlipForward
	FlipBackward
	SpinLeftward
	SpinRightward
)

// cubeletRotationFor returns the relabeling a quarter turn of (face,
// direction) applies to every cubelet it carries.
func cubeletRotationFor(face Face, dir Direction) CubeletRotationDirection {
	switch face {
	case Front:
		if dir == Clockwise {
			return FlipRightward
		}
		return FlipLeftward
	case Back:
		if dir == Clockwise {
			return FlipLeftward
		}
		return FlipRightward
	case Left:
		if dir == Clockwise {
			return FlipForward
		}
		return FlipBackward
	case Right:
		if dir == Clockwise {
			return FlipBackward
		}
		return FlipForward
	case Up:
		if dir == Clockwise {
			return SpinLeftward
		}
		return SpinRightward
	case Down:
		if dir == Clockwise {
			return SpinRightward
		}
		return SpinLeftward
	}
	return FlipRightward
}
