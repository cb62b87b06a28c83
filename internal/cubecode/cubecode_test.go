package cubecode

import (
	"strings"
	"testing"
)

const solvedCode = "bbbbbbbbbrrrrrrrrrgggggggggoooooooooyyyyyyyyywwwwwwwww"

func TestDecodeSolvedCode(t *testing.T) {
	c, err := Decode(solvedCode)
	if err != nil {
		t.Fatalf("unexpected error decoding a valid solved code: %v", err)
	}
	if !c.IsSolved() {
		t.Fatal("decoding the solved cube code should yield a solved cube")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codes := []string{
		solvedCode,
		"wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg",
		"owrwbwybyyywrrybygggorgbygwgbboogborwrrryowobgwogwbryo",
	}
	for _, code := range codes {
		c, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", code, err)
		}
		if got := Encode(c); got != code {
			t.Errorf("Encode(Decode(%q)) = %q, want original", code, got)
		}
	}
}

func TestDecodeMissing(t *testing.T) {
	_, err := Decode("")
	if err == nil {
		t.Fatal("expected an error for an empty cube code")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != KindInputMissing {
		t.Fatalf("expected KindInputMissing, got %#v", err)
	}
}

func TestDecodeWrongLength(t *testing.T) {
	_, err := Decode("bryogw")
	assertMalformed(t, err)
}

func TestDecodeBadAlphabet(t *testing.T) {
	bad := strings.Replace(solvedCode, "b", "!", 1)
	_, err := Decode(bad)
	assertMalformed(t, err)
}

func TestDecodeUnevenDistribution(t *testing.T) {
	// swap one yellow for an extra blue: blue now has 10, yellow 8.
	bad := strings.Replace(solvedCode, "y", "b", 1)
	_, err := Decode(bad)
	assertMalformed(t, err)
}

func TestDecodeDuplicateCenters(t *testing.T) {
	runes := []rune(solvedCode)
	// index 13 is the RIGHT center; swap it with the non-center index 0 so it
	// matches the FRONT center (index 4) while every color still appears 9 times.
	runes[0], runes[13] = runes[13], runes[0]
	_, err := Decode(string(runes))
	assertMalformed(t, err)
}

func assertMalformed(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an InputMalformed error")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != KindInputMalformed {
		t.Fatalf("expected KindInputMalformed, got %#v", err)
	}
}
