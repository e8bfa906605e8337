// Package interval models musical intervals: a quality (major, minor,
// perfect, diminished, augmented) paired with a diatonic number (third,
// fifth, ninth, ...). Intervals are spelling aware, so an augmented
// fourth and a diminished fifth both span six semitones without being
// the same interval.
package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwhitman/tonality/util"
)

// ErrInvalidInterval is returned when a quality cannot be combined with a
// number: perfect with a second-like number, or major/minor with a
// fourth-like one.
var ErrInvalidInterval = errors.New("interval: quality does not fit the number")

// ErrSubzero is returned by StrictNonSubzero for intervals whose quality
// pulls them past their own starting point, like a diminished unison.
var ErrSubzero = errors.New("interval: interval is subzero")

// Interval is a musical distance. The zero value is not a valid interval;
// use PerfectUnison or a constructor.
type Interval struct {
	quality Quality
	number  Number
}

// New pairs a quality with a number. Perfect qualities need a perfect
// number (1, 4, 5, 8 classes), major and minor need an imperfect one
// (2, 3, 6, 7 classes). Diminished and augmented fit any number.
func New(quality Quality, number Number) (Interval, error) {
	if number == 0 {
		return Interval{}, ErrZeroNumber
	}
	if !quality.wellFormed() {
		return Interval{}, ErrInvalidInterval
	}

	switch quality.kind {
	case qualityDiminished, qualityAugmented:
		return Interval{quality, number}, nil
	case qualityPerfect:
		if number.IsPerfect() {
			return Interval{quality, number}, nil
		}
	case qualityMajor, qualityMinor:
		if !number.IsPerfect() {
			return Interval{quality, number}, nil
		}
	}
	return Interval{}, ErrInvalidInterval
}

// MajOrPerfect builds the major or perfect interval of the given number,
// whichever is valid for it.
func MajOrPerfect(number Number) Interval {
	if number.IsPerfect() {
		return Interval{Perfect, number}
	}
	return Interval{Major, number}
}

// StrictNonSubzero is New, additionally rejecting subzero intervals.
func StrictNonSubzero(quality Quality, number Number) (Interval, error) {
	ivl, err := New(quality, number)
	if err != nil {
		return Interval{}, err
	}
	if ivl.IsSubzero() {
		return Interval{}, ErrSubzero
	}
	return ivl, nil
}

// FromNumberAndSemitones derives the quality that makes number span
// exactly the given signed semitone count. The number must be nonzero.
func FromNumberAndSemitones(number Number, semitones int) Interval {
	sign := util.Signum(int(number))
	diff := (semitones - number.baseSemitonesUnsigned()*sign) * sign
	perfect := number.IsPerfect()

	var quality Quality
	switch {
	case diff == 0 && perfect:
		quality = Perfect
	case diff == 0:
		quality = Major
	case diff == -1 && !perfect:
		quality = Minor
	case diff > 0:
		quality = Augmented(diff)
	case perfect:
		quality = Diminished(-diff)
	default:
		quality = Diminished(-diff - 1)
	}

	return Interval{quality, number}
}

// FromSemitonesPreferred spells a semitone count with the conventional
// interval: major, minor or perfect where possible, and a diminished
// fifth for the tritone.
func FromSemitonesPreferred(semitones int) Interval {
	if semitones == 0 {
		return PerfectUnison
	}

	abs := util.Abs(semitones)

	var quality Quality
	var base Number
	switch (abs-1)%12 + 1 {
	case 1:
		quality, base = Minor, Second
	case 2:
		quality, base = Major, Second
	case 3:
		quality, base = Minor, Third
	case 4:
		quality, base = Major, Third
	case 5:
		quality, base = Perfect, Fourth
	case 6:
		quality, base = Diminished(1), Fifth
	case 7:
		quality, base = Perfect, Fifth
	case 8:
		quality, base = Minor, Sixth
	case 9:
		quality, base = Major, Sixth
	case 10:
		quality, base = Minor, Seventh
	case 11:
		quality, base = Major, Seventh
	default:
		quality, base = Perfect, Octave
	}

	octaves := (abs - 1) / 12
	number := Number((int(base) + octaves*7) * util.Signum(semitones))

	return Interval{quality, number}
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) Number() Number {
	return i.number
}

// Semitones is the signed chromatic span of the interval. Descending
// intervals are negative.
func (i Interval) Semitones() int {
	size := i.number.baseSemitonesUnsigned() + i.quality.semitoneAdjust(i.number.IsPerfect())
	return size * util.Signum(int(i.number))
}

// Add composes two intervals. The result is what you get by transposing
// by the first and then the second: numbers combine diatonically and the
// quality is rederived from the summed semitones.
func (i Interval) Add(rhs Interval) Interval {
	ln := int(i.number)
	rn := int(rhs.number)

	ls := util.Signum(ln)
	rs := util.Signum(rn)
	ss := util.Signum(ln + rn)

	// Diatonic numbers are 1-based in both directions, so the sum needs
	// a correction whenever the operands straddle or land on zero.
	offset := -ls * rs * ss
	if ss == 0 {
		offset++
	}

	number := Number(ln + rn + offset)

	return FromNumberAndSemitones(number, i.Semitones()+rhs.Semitones())
}

func (i Interval) Sub(rhs Interval) Interval {
	return i.Add(rhs.Neg())
}

func (i Interval) Neg() Interval {
	return Interval{i.quality, -i.number}
}

// Abs returns the ascending form of the interval.
func (i Interval) Abs() Interval {
	return i.WithDirection(true)
}

func (i Interval) IsAscending() bool {
	return i.number.IsAscending()
}

func (i Interval) WithDirection(ascending bool) Interval {
	return Interval{i.quality, i.number.WithDirection(ascending)}
}

// AsSimple reduces a compound interval to within one octave. Octaves and
// their multiples reduce to an octave, not a unison.
func (i Interval) AsSimple() Interval {
	return Interval{i.quality, i.number.AsSimple()}
}

// Inverted flips both quality and number, so a major third becomes a
// minor sixth.
func (i Interval) Inverted() Interval {
	return Interval{i.quality.Inverted(), i.number.Inverted()}
}

// IsSubzero reports whether the quality pulls the interval past its own
// starting point: an ascending number spanning descending semitones, or
// the reverse. A diminished unison is the canonical example.
func (i Interval) IsSubzero() bool {
	semitones := i.Semitones()
	return semitones != 0 && util.Signum(semitones) != util.Signum(int(i.number))
}

// ExpandSubzero widens a subzero interval by octaves until it spans in
// the direction of its number. Non-subzero intervals are returned
// unchanged. A diminished unison expands to a diminished octave.
func (i Interval) ExpandSubzero() Interval {
	if !i.IsSubzero() {
		return i
	}
	if !i.IsAscending() {
		return i.Neg().ExpandSubzero().Neg()
	}

	octaves := -util.FloorDiv(i.Semitones(), 12)

	return Interval{i.quality, Number(int(i.number) + octaves*7)}
}

// String renders shorthand such as "P5", "m7" or "dd2". Descending
// intervals carry the sign on the number, e.g. "M-3".
func (i Interval) String() string {
	return fmt.Sprintf("%s%d", i.quality, int(i.number))
}

// Parse reads the shorthand accepted by String, with an optional leading
// minus: both "M-3" and "-M3" denote a descending major third.
func Parse(s string) (Interval, error) {
	body := strings.TrimPrefix(s, "-")
	leadingNeg := len(body) != len(s)

	split := strings.IndexFunc(body, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if split <= 0 {
		return Interval{}, fmt.Errorf("invalid interval %q", s)
	}

	quality, err := ParseQuality(body[:split])
	if err != nil {
		return Interval{}, err
	}

	n, err := strconv.Atoi(body[split:])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval number in %q: %w", s, err)
	}

	number, err := NewNumber(n)
	if err != nil {
		return Interval{}, err
	}

	ivl, err := New(quality, number)
	if err != nil {
		return Interval{}, err
	}

	if leadingNeg {
		ivl = ivl.Neg()
	}
	return ivl, nil
}
