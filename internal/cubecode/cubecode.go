// Package cubecode implements the 54-character textual serialization of a
// cube state (the "cube code"): decode validates and parses text into a
// cube.Cube, encode performs the inverse. Grounded on the teacher's
// internal/cfen package's validate-then-build style, but for the fixed,
// simpler 3x3x3 format this system actually uses rather than CFEN's
// orientation/run-length/wildcard grammar for arbitrary NxN cubes.
package cubecode

import (
	"fmt"

	"github.com/ehrlich-b/rubik-solver/internal/cube"
)

// CodeLength is the fixed length of a valid cube code.
const CodeLength = 54

// centerIndices are the six positions (one per nine-character face block)
// that hold each face's center sticker.
var centerIndices = [6]int{4, 13, 22, 31, 40, 49}

// Kind classifies why an operation failed, matching the error taxonomy of
// the external contract: InputMissing, InputMalformed, ProgrammerError.
type Kind int

const (
	KindNone Kind = iota
	KindInputMissing
	KindInputMalformed
	KindProgrammerError
)

// Error is a cube-code failure tagged with its Kind so callers (the CLI,
// the HTTP handler) can map it to a status code without string-matching.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func missingErr(msg string) error {
	return &Error{Kind: KindInputMissing, Message: msg}
}

func malformedErr(format string, args ...any) error {
	return &Error{Kind: KindInputMalformed, Message: fmt.Sprintf(format, args...)}
}

// Decode validates text against the five rules of §6 and, only if all
// pass, builds a cube.Cube from it. No partial cube is ever returned.
func Decode(text string) (*cube.Cube, error) {
	if text == "" {
		return nil, missingErr("cube code is required")
	}
	if len(text) != CodeLength {
		return nil, malformedErr("cube code must be %d characters, got %d", CodeLength, len(text))
	}

	colors := make([]cube.Color, CodeLength)
	for i, r := range text {
		c, ok := cube.ColorFromRune(r)
		if !ok {
			return nil, malformedErr("cube code contains invalid character %q at position %d", r, i)
		}
		colors[i] = c
	}

	counts := map[cube.Color]int{}
	for _, c := range colors {
		counts[c]++
	}
	for _, c := range []cube.Color{cube.White, cube.Yellow, cube.Red, cube.Orange, cube.Blue, cube.Green} {
		if counts[c] == 0 {
			return nil, malformedErr("cube code is missing color %s", c)
		}
	}
	for c, n := range counts {
		if n != 9 {
			return nil, malformedErr("color %s appears %d times, expected 9", c, n)
		}
	}

	seenCenters := map[cube.Color]bool{}
	for _, idx := range centerIndices {
		c := colors[idx]
		if seenCenters[c] {
			return nil, malformedErr("two face centers share color %s", c)
		}
		seenCenters[c] = true
	}

	c := &cube.Cube{}
	pos := 0
	for _, face := range cube.Faces {
		for _, coord := range cube.FaceCoordOrder[face] {
			c.SetColorAt(coord, face, colors[pos])
			pos++
		}
	}
	return c, nil
}

// Encode performs the inverse of Decode: for each face in block order,
// for each of its nine coordinates in fixed order, emit the sticker
// color on that face.
func Encode(c *cube.Cube) string {
	buf := make([]byte, 0, CodeLength)
	for _, face := range cube.Faces {
		for _, coord := range cube.FaceCoordOrder[face] {
			buf = append(buf, []byte(c.ColorAt(coord, face).String())...)
		}
	}
	return string(buf)
}
