package interval

import (
	"errors"

	"github.com/mwhitman/tonality/util"
)

// ErrZeroNumber is returned when constructing an interval number of zero.
// There is no zeroth: the distance from a note to itself is a unison (1).
var ErrZeroNumber = errors.New("interval: number cannot be zero")

// Number is the diatonic size of an interval: 1 for a unison, 5 for a
// fifth, 9 for a ninth and so on. Negative numbers are descending.
// Never zero.
type Number int

const (
	Unison  Number = 1
	Second  Number = 2
	Third   Number = 3
	Fourth  Number = 4
	Fifth   Number = 5
	Sixth   Number = 6
	Seventh Number = 7
	Octave  Number = 8

	Ninth      Number = 9
	Tenth      Number = 10
	Eleventh   Number = 11
	Twelfth    Number = 12
	Thirteenth Number = 13
	Fourteenth Number = 14
	Fifteenth  Number = 15
)

func NewNumber(n int) (Number, error) {
	if n == 0 {
		return 0, ErrZeroNumber
	}
	return Number(n), nil
}

func (n Number) Int() int {
	return int(n)
}

// AsSimple reduces a compound number to [1, 8]. Octave multiples reduce
// to an octave, not a unison. Direction is preserved.
func (n Number) AsSimple() Number {
	abs := util.Abs(int(n))
	if abs != 1 && (abs-1)%7 == 0 {
		return Number(8 * util.Signum(int(n)))
	}
	return Number(((abs-1)%7 + 1) * util.Signum(int(n)))
}

// IsPerfect reports whether the number takes perfect qualities
// (unisons, fourths, fifths, octaves) rather than major/minor ones.
func (n Number) IsPerfect() bool {
	switch util.Abs(int(n.AsSimple())) {
	case 1, 4, 5, 8:
		return true
	default:
		return false
	}
}

func (n Number) IsAscending() bool {
	return n > 0
}

func (n Number) Neg() Number {
	return -n
}

func (n Number) WithDirection(ascending bool) Number {
	if n.IsAscending() == ascending {
		return n
	}
	return -n
}

// Octaves is the number of complete octaves contained in the number,
// ignoring direction.
func (n Number) Octaves() int {
	return (util.Abs(int(n)) - 1) / 7
}

// Inverted flips the number around the octave: seconds become sevenths,
// thirds become sixths, and so on. Unisons and octaves invert to
// themselves. Direction and compound octaves are preserved.
func (n Number) Inverted() Number {
	simple := util.Abs(int(n.AsSimple()))

	var inv int
	if simple == 1 || simple == 8 {
		inv = simple
	} else {
		inv = 9 - simple
	}

	var num int
	if simple == 8 {
		num = 7*(n.Octaves()-1) + inv
	} else {
		num = 7*n.Octaves() + inv
	}

	return Number(num * util.Signum(int(n)))
}

// majorScaleSteps[i] is the semitone size of a major or perfect interval
// with simple number i+1.
var majorScaleSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// baseSemitonesUnsigned is the semitone span of the major-or-perfect
// interval with this number, ignoring direction.
func (n Number) baseSemitonesUnsigned() int {
	abs := util.Abs(int(n))
	return 12*((abs-1)/7) + majorScaleSteps[(abs-1)%7]
}
