package key

import (
	"fmt"

	"github.com/mwhitman/tonality/pitch"
)

// Mode is one of the seven diatonic modes, numbered by the major-scale
// degree it starts on: Ionian is 1, Aeolian is 6.
type Mode uint8

const (
	Ionian Mode = iota + 1
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

const (
	MajorMode = Ionian
	MinorMode = Aeolian
)

func ModeFromDegree(degree int) (Mode, error) {
	if degree < 1 || degree > 7 {
		return 0, fmt.Errorf("mode degree must be 1 through 7, got %d", degree)
	}
	return Mode(degree), nil
}

// referencePitch is the tonic whose key in this mode has no sharps or
// flats: C Ionian, D Dorian and so on up the white keys.
func (m Mode) referencePitch() pitch.Pitch {
	letter, _ := pitch.LetterFromStep(int(m) - 1)
	return pitch.FromLetter(letter)
}

func (m Mode) String() string {
	switch m {
	case Ionian:
		return "ionian"
	case Dorian:
		return "dorian"
	case Phrygian:
		return "phrygian"
	case Lydian:
		return "lydian"
	case Mixolydian:
		return "mixolydian"
	case Aeolian:
		return "aeolian"
	case Locrian:
		return "locrian"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode accepts mode names plus the "major" and "minor" aliases.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ionian", "major":
		return Ionian, nil
	case "dorian":
		return Dorian, nil
	case "phrygian":
		return Phrygian, nil
	case "lydian":
		return Lydian, nil
	case "mixolydian":
		return Mixolydian, nil
	case "aeolian", "minor":
		return Aeolian, nil
	case "locrian":
		return Locrian, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
