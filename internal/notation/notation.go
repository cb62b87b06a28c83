// Package notation parses and formats face-turn algorithm strings like
// "R U R' U'" into cube.Rotation sequences. Adapted from the teacher's
// internal/cube/move_parser.go, trimmed to the faces and modifiers this
// system actually supports: wide turns, slice moves (M/E/S) and whole-
// cube rotations (x/y/z) are dropped, since spec.md's Non-goals exclude
// slice moves, cube rotations, and wide turns as first-class operations.
package notation

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/rubik-solver/internal/cube"
)

// Parse reads a single move token such as "R", "U'", or "F2".
func Parse(token string) ([]cube.Rotation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("empty move notation")
	}

	dir := cube.Clockwise
	double := false
	for len(token) > 0 {
		last := token[len(token)-1]
		switch last {
		case '\'':
			dir = cube.CounterClockwise
			token = token[:len(token)-1]
		case '2':
			double = true
			token = token[:len(token)-1]
		default:
			goto parsedModifiers
		}
	}
parsedModifiers:
	if len(token) != 1 {
		return nil, fmt.Errorf("unknown move notation: %q", token)
	}
	face, ok := cube.FaceFromRune(rune(token[0]))
	if !ok {
		return nil, fmt.Errorf("unknown face letter: %q", token)
	}

	if double {
		return []cube.Rotation{{Face: face, Direction: dir}, {Face: face, Direction: dir}}, nil
	}
	return []cube.Rotation{{Face: face, Direction: dir}}, nil
}

// ParseSequence reads a whitespace-separated algorithm string into an
// ordered list of rotations.
func ParseSequence(algorithm string) ([]cube.Rotation, error) {
	algorithm = strings.TrimSpace(algorithm)
	if algorithm == "" {
		return nil, nil
	}
	var rotations []cube.Rotation
	for _, token := range strings.Fields(algorithm) {
		parsed, err := Parse(token)
		if err != nil {
			return nil, fmt.Errorf("parsing move %q: %w", token, err)
		}
		rotations = append(rotations, parsed...)
	}
	return rotations, nil
}

// Format renders a rotation sequence back into a space-separated
// algorithm string, collapsing two consecutive identical-face-and-
// direction rotations into the "2" notation.
func Format(rotations []cube.Rotation) string {
	var sb strings.Builder
	for i := 0; i < len(rotations); i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i+1 < len(rotations) && rotations[i] == rotations[i+1] {
			sb.WriteString(rotations[i].Face.String())
			sb.WriteString("2")
			i++
			continue
		}
		sb.WriteString(rotations[i].String())
	}
	return sb.String()
}
