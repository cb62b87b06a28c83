package notation

import (
	"testing"

	"github.com/ehrlich-b/rubik-solver/internal/cube"
)

func TestParseSequence(t *testing.T) {
	rotations, err := ParseSequence("F R U R' U' F'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []cube.Rotation{
		{Face: cube.Front, Direction: cube.Clockwise},
		{Face: cube.Right, Direction: cube.Clockwise},
		{Face: cube.Up, Direction: cube.Clockwise},
		{Face: cube.Right, Direction: cube.CounterClockwise},
		{Face: cube.Up, Direction: cube.CounterClockwise},
		{Face: cube.Front, Direction: cube.CounterClockwise},
	}
	if len(rotations) != len(want) {
		t.Fatalf("got %d rotations, want %d", len(rotations), len(want))
	}
	for i := range want {
		if rotations[i] != want[i] {
			t.Errorf("rotation %d: got %+v, want %+v", i, rotations[i], want[i])
		}
	}
}

func TestParseDoubleTurn(t *testing.T) {
	rotations, err := ParseSequence("U2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rotations) != 2 {
		t.Fatalf("U2 should expand to two rotations, got %d", len(rotations))
	}
	if rotations[0] != rotations[1] {
		t.Fatalf("U2 should expand to two identical quarter turns")
	}
}

func TestParseRejectsUnsupportedNotation(t *testing.T) {
	for _, bad := range []string{"Rw", "M", "x", "2R", ""} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("expected Parse(%q) to fail (out of scope notation)", bad)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	alg := "F R U R' U' F'"
	rotations, err := ParseSequence(alg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Format(rotations); got != alg {
		t.Errorf("Format(ParseSequence(%q)) = %q, want %q", alg, got, alg)
	}
}

func TestFormatCollapsesDoubleTurn(t *testing.T) {
	rotations := []cube.Rotation{
		{Face: cube.Up, Direction: cube.Clockwise},
		{Face: cube.Up, Direction: cube.Clockwise},
	}
	if got := Format(rotations); got != "U2" {
		t.Errorf("Format(UU) = %q, want %q", got, "U2")
	}
}
