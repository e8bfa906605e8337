package pitch

import (
	"fmt"

	"github.com/mwhitman/tonality/util"
)

// Letter is one of the seven note names, C through B. Ordering follows
// scale position within the octave, so C < D < ... < B.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// Step is the diatonic position of the letter, 0 (C) through 6 (B).
func (l Letter) Step() int {
	return int(l)
}

func LetterFromStep(step int) (Letter, bool) {
	if step < 0 || step > 6 {
		return 0, false
	}
	return Letter(step), true
}

// OffsetBetween is the ascending diatonic distance from l to rhs,
// wrapping around the octave. Always in [0, 6].
func (l Letter) OffsetBetween(rhs Letter) int {
	return util.FloorMod(rhs.Step()-l.Step(), 7)
}

// fifthsFromC positions the letter on the circle of fifths relative to C.
func (l Letter) fifthsFromC() int {
	return [7]int{0, 2, 4, -1, 1, 3, 5}[l]
}

func (l Letter) String() string {
	return string([]byte{"CDEFGAB"[l]})
}

func ParseLetter(s string) (Letter, error) {
	if len(s) == 1 {
		switch s[0] {
		case 'C', 'c':
			return C, nil
		case 'D', 'd':
			return D, nil
		case 'E', 'e':
			return E, nil
		case 'F', 'f':
			return F, nil
		case 'G', 'g':
			return G, nil
		case 'A', 'a':
			return A, nil
		case 'B', 'b':
			return B, nil
		}
	}
	return 0, fmt.Errorf("letter must be A through G, got %q", s)
}
