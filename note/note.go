// Package note pairs a spelled pitch with an octave, following
// scientific pitch notation. The octave belongs to the letter, so C flat
// 4 sounds below C4, in the same register as B3.
package note

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/pitch"
	"github.com/mwhitman/tonality/util"
)

// Note is a pitch in a concrete octave. The zero value is C0.
type Note struct {
	Pitch  pitch.Pitch
	Octave int
}

var (
	MiddleC = Note{Pitch: pitch.FromLetter(pitch.C), Octave: 4}
	A440    = Note{Pitch: pitch.FromLetter(pitch.A), Octave: 4}
)

func New(p pitch.Pitch, octave int) Note {
	return Note{Pitch: p, Octave: octave}
}

// semitonesFromC0 is the sounding position of the note, in semitones
// relative to C0. Extreme spellings escape their notated octave, so
// Cb4 lands at 47, among the octave-3 notes.
func (n Note) semitonesFromC0() int {
	return n.Pitch.SemitonesFromC() + 12*n.Octave
}

// SemitonesTo is the signed sounding distance from n up to rhs.
func (n Note) SemitonesTo(rhs Note) int {
	return rhs.semitonesFromC0() - n.semitonesFromC0()
}

// Compare orders notes by octave, then by pitch spelling within the
// octave.
func (n Note) Compare(rhs Note) int {
	if n.Octave != rhs.Octave {
		return util.Signum(n.Octave - rhs.Octave)
	}
	return n.Pitch.Compare(rhs.Pitch)
}

// CompareEnharmonic orders notes by sounding position, ignoring
// spelling.
func (n Note) CompareEnharmonic(rhs Note) int {
	return util.Signum(n.SemitonesTo(rhs)) * -1
}

func (n Note) EqualEnharmonic(rhs Note) bool {
	return n.SemitonesTo(rhs) == 0
}

// Transpose moves the note by an interval, carrying the octave so the
// result sounds exactly the interval away: B3 up a minor second is C4.
func (n Note) Transpose(ivl interval.Interval) Note {
	unchecked := Note{Pitch: n.Pitch.Transpose(ivl), Octave: n.Octave}
	edit := n.SemitonesTo(unchecked) - ivl.Semitones()
	unchecked.Octave -= util.FloorDiv(edit, 12)
	return unchecked
}

// respelledAs renames the pitch and corrects the octave so the note
// keeps sounding the same.
func (n Note) respelledAs(p pitch.Pitch) Note {
	out := Note{Pitch: p, Octave: n.Octave}
	out.Octave -= util.FloorDiv(n.SemitonesTo(out), 12)
	return out
}

// Simplified rewrites the note with at most one accidental, adjusting
// the octave where the spelling crosses C: B#3 simplifies to C4.
func (n Note) Simplified() Note {
	return n.respelledAs(n.Pitch.Simplified())
}

// Enharmonic is the opposite conventional spelling of the same sounding
// note.
func (n Note) Enharmonic() Note {
	return n.respelledAs(n.Pitch.Enharmonic())
}

func (n Note) RespellWith(sp pitch.Spelling) Note {
	return n.respelledAs(n.Pitch.RespellWith(sp))
}

// DistanceTo is the signed interval from n to rhs. The spelling of both
// notes decides the diatonic number, the sounding distance decides the
// quality, so Transpose(DistanceTo) lands on rhs exactly, spelling and
// octave included. Spelling order and sounding order may disagree; the
// result is then subzero, as in B#3 up to Cb4.
func (n Note) DistanceTo(rhs Note) interval.Interval {
	steps := rhs.letterSteps() - n.letterSteps()

	number := interval.Number(steps + 1)
	if steps < 0 {
		number = interval.Number(steps - 1)
	}

	return interval.FromNumberAndSemitones(number, n.SemitonesTo(rhs))
}

// letterSteps is the position of the note's letter on the staff,
// counted in diatonic steps from C0. Accidentals do not move it.
func (n Note) letterSteps() int {
	return n.Pitch.Letter().Step() + 7*n.Octave
}

// MIDI is the MIDI note number, with C-1 as 0 and middle C as 60.
// Notes sounding outside 0..127 are rejected.
func (n Note) MIDI() (uint8, error) {
	m := n.semitonesFromC0() + 12
	if m < 0 || m > 127 {
		return 0, fmt.Errorf("note %s is outside the MIDI range", n)
	}
	return uint8(m), nil
}

// FromMIDI spells a MIDI note number with sharps. Note numbers above 127
// are accepted, matching files that use the full byte.
func FromMIDI(m uint8) Note {
	class, _ := pitch.ClassFromChroma(int(m) % 12)
	return Note{
		Pitch:  class.SpellWith(pitch.Sharps),
		Octave: int(m)/12 - 1,
	}
}

// Frequency is the equal-tempered frequency in hertz, tuned to A4 = 440.
func (n Note) Frequency() float64 {
	fromA4 := n.semitonesFromC0() - A440.semitonesFromC0()
	return 440 * math.Pow(2, float64(fromA4)/12)
}

// FromFrequency finds the equal-tempered note nearest the frequency,
// spelled with sharps.
func FromFrequency(hz float64) (Note, error) {
	if hz <= 0 || math.IsInf(hz, 1) || math.IsNaN(hz) {
		return Note{}, fmt.Errorf("invalid frequency %v", hz)
	}

	semitones := int(math.Round(12*math.Log2(hz/440))) + A440.semitonesFromC0()
	class, _ := pitch.ClassFromChroma(util.FloorMod(semitones, 12))

	return Note{
		Pitch:  class.SpellWith(pitch.Sharps),
		Octave: util.FloorDiv(semitones, 12),
	}, nil
}

// AsPitch drops the octave.
func (n Note) AsPitch() pitch.Pitch {
	return n.Pitch
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Pitch, n.Octave)
}

// Parse reads a pitch followed by an octave, such as "C#4" or "Eb-1".
func Parse(s string) (Note, error) {
	split := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if split <= 0 {
		return Note{}, fmt.Errorf("invalid note %q", s)
	}

	p, err := pitch.Parse(s[:split])
	if err != nil {
		return Note{}, err
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in %q: %w", s, err)
	}
	return Note{Pitch: p, Octave: octave}, nil
}
