// Package pitch models spelled pitches without octaves. A Pitch keeps
// its spelling, so C sharp and D flat are distinct values that share a
// Class. Internally a Pitch is its position on the line of fifths
// relative to C, which makes transposition and key arithmetic additive.
package pitch

import (
	"fmt"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/util"
)

// Pitch is a letter plus an accidental, encoded as fifths from C.
// C is 0, G is 1, F is -1, C sharp is 7. The zero value is C.
type Pitch int

func New(letter Letter, acc Accidental) Pitch {
	return Pitch(letter.fifthsFromC() + 7*acc.Offset())
}

func FromLetter(letter Letter) Pitch {
	return Pitch(letter.fifthsFromC())
}

func FromFifths(fifths int) Pitch {
	return Pitch(fifths)
}

// Fifths is the position on the line of fifths relative to C. Sharp
// pitches sit high, flat pitches low.
func (p Pitch) Fifths() int {
	return int(p)
}

func (p Pitch) Letter() Letter {
	return [7]Letter{F, C, G, D, A, E, B}[util.FloorMod(int(p)+1, 7)]
}

func (p Pitch) Accidental() Accidental {
	return Accidental(util.FloorDiv(int(p)+1, 7))
}

func (p Pitch) Class() Class {
	return Class(p.Chroma())
}

// Chroma is the pitch class number in [0, 11], with C as 0.
func (p Pitch) Chroma() int {
	return util.FloorMod(p.SemitonesFromC(), 12)
}

// SemitonesFromC is the signed semitone offset of the spelling from C.
// Most pitches land in [0, 11], but extremes escape the octave: C flat
// is -1 and B sharp is 12.
func (p Pitch) SemitonesFromC() int {
	letterSemitones := [7]int{5, 0, 7, 2, 9, 4, 11}[util.FloorMod(int(p)+1, 7)]
	return letterSemitones + util.FloorDiv(int(p)+1, 7)
}

// SemitonesTo is the ascending chromatic distance from p to rhs,
// in [0, 11].
func (p Pitch) SemitonesTo(rhs Pitch) int {
	return util.FloorMod(rhs.SemitonesFromC()-p.SemitonesFromC(), 12)
}

// TransposeFifths moves the pitch along the line of fifths.
func (p Pitch) TransposeFifths(n int) Pitch {
	return Pitch(int(p) + n)
}

// Transpose moves the pitch by an interval, preserving spelling: a major
// third up from D is F sharp, never G flat.
func (p Pitch) Transpose(ivl interval.Interval) Pitch {
	return p.TransposeFifths(fifthsSpan(ivl))
}

// fifthsSpan is the signed line-of-fifths displacement of an interval.
func fifthsSpan(ivl interval.Interval) int {
	var start int
	switch util.Abs(ivl.Number().AsSimple().Int()) {
	case 1, 8:
		start = 7
	case 2:
		start = 9
	case 3:
		start = 11
	case 4:
		start = 6
	case 5:
		start = 8
	case 6:
		start = 10
	case 7:
		start = 12
	}

	quality := ivl.Quality()
	var steps int
	switch {
	case quality == interval.Minor:
		steps = 2
	case quality == interval.Perfect || quality == interval.Major:
		steps = 1
	default:
		if degree, ok := quality.AugmentedDegree(); ok {
			steps = -(degree - 1)
		} else {
			degree, _ := quality.DiminishedDegree()
			if ivl.Number().IsPerfect() {
				steps = degree + 1
			} else {
				steps = degree + 2
			}
		}
	}

	offset := start - 7*steps
	if !ivl.IsAscending() {
		offset = -offset
	}
	return offset
}

// DistanceTo is the ascending interval from p up to rhs, sized within
// one octave. The same pitch is a unison; a lower respelling of the same
// letter wraps to an octave, so B sharp up to B flat is a doubly
// diminished octave rather than a descending interval.
func (p Pitch) DistanceTo(rhs Pitch) interval.Interval {
	offset := p.Letter().OffsetBetween(rhs.Letter())

	number := interval.Number(offset + 1)
	if number == interval.Unison && p.Compare(rhs) > 0 {
		number = interval.Octave
	}

	semitones := p.SemitonesTo(rhs)
	if offset == 6 && semitones == 0 {
		semitones += 12
	}

	return interval.FromNumberAndSemitones(number, semitones)
}

// Bias respells the pitch into the natural-or-sharp names when sharp is
// true, natural-or-flat otherwise.
func (p Pitch) Bias(sharp bool) Pitch {
	if sharp {
		return p.Class().SpellWith(Sharps)
	}
	return p.Class().SpellWith(Flats)
}

// Simplified rewrites the pitch with at most one accidental, keeping the
// direction of the spelling: F double sharp becomes G, F double flat
// becomes E flat.
func (p Pitch) Simplified() Pitch {
	return p.Bias(p.Accidental() > Natural)
}

// Enharmonic is the conventional opposite spelling of the same class:
// C sharp for D flat and back. Naturals return themselves.
func (p Pitch) Enharmonic() Pitch {
	return p.Bias(p.Accidental() < Natural)
}

// RespellWith renames the pitch into the given accidental family.
// Pitches already in the family, and naturals, are unchanged.
func (p Pitch) RespellWith(sp Spelling) Pitch {
	if cur, ok := SpellingOf(p.Accidental()); !ok || cur == sp {
		return p
	}
	return p.Class().SpellWith(sp)
}

// Compare orders pitches by letter, then by accidental. Note this is a
// spelling order: F double flat sorts above E double sharp even though
// it sounds lower.
func (p Pitch) Compare(rhs Pitch) int {
	if d := p.Letter().Step() - rhs.Letter().Step(); d != 0 {
		return util.Signum(d)
	}
	return util.Signum(p.Accidental().Offset() - rhs.Accidental().Offset())
}

// CompareEnharmonic orders pitches by sounding chroma, ignoring spelling.
func (p Pitch) CompareEnharmonic(rhs Pitch) int {
	return util.Signum(p.Chroma() - rhs.Chroma())
}

func (p Pitch) EqualEnharmonic(rhs Pitch) bool {
	return p.Class() == rhs.Class()
}

// AsPitch returns the pitch itself. It exists so a bare Pitch can root a
// scale alongside octave-carrying notes.
func (p Pitch) AsPitch() Pitch {
	return p
}

func (p Pitch) String() string {
	return p.Letter().String() + p.Accidental().String()
}

// Parse reads a letter followed by an optional accidental run, such as
// "C", "F#", "Bbb" or "Gx".
func Parse(s string) (Pitch, error) {
	if s == "" {
		return 0, fmt.Errorf("empty pitch")
	}
	letter, err := ParseLetter(s[:1])
	if err != nil {
		return 0, err
	}
	acc, err := ParseAccidental(s[1:])
	if err != nil {
		return 0, err
	}
	return New(letter, acc), nil
}
