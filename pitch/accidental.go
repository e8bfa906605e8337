package pitch

import (
	"fmt"
	"strings"
)

// Accidental is a chromatic offset applied to a letter, in semitones.
// Sharps are positive, flats negative. Any magnitude is allowed; the
// named constants cover the common range.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) Offset() int {
	return int(a)
}

// String renders ASCII accidentals: "#" per sharp, "b" per flat, and the
// empty string for natural.
func (a Accidental) String() string {
	if a >= 0 {
		return strings.Repeat("#", int(a))
	}
	return strings.Repeat("b", int(-a))
}

// ParseAccidental reads a run of sharp or flat symbols. Sharps may be
// written "#" or "s", with "x" counting double; flats are "b". The empty
// string is natural. Mixing directions is an error.
func ParseAccidental(s string) (Accidental, error) {
	var sharps, flats int
	for _, r := range s {
		switch r {
		case '#', 's':
			sharps++
		case 'x':
			sharps += 2
		case 'b':
			flats++
		default:
			return 0, fmt.Errorf("invalid accidental %q", s)
		}
	}
	if sharps > 0 && flats > 0 {
		return 0, fmt.Errorf("invalid accidental %q", s)
	}
	return Accidental(sharps - flats), nil
}
