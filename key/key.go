// Package key models diatonic keys: a tonic pitch plus a mode, with the
// key signature derived from the tonic's place on the circle of fifths.
package key

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/pitch"
	"github.com/mwhitman/tonality/scale"
	"github.com/mwhitman/tonality/util"
)

// Key is a tonic and a mode. Keys sharing a signature are relatives;
// keys sharing a tonic are parallels. The zero value is C major.
type Key struct {
	Tonic pitch.Pitch
	Mode  Mode
}

func New(tonic pitch.Pitch, mode Mode) Key {
	return Key{Tonic: tonic, Mode: mode}
}

func Major(tonic pitch.Pitch) Key {
	return Key{Tonic: tonic, Mode: Ionian}
}

func Minor(tonic pitch.Pitch) Key {
	return Key{Tonic: tonic, Mode: Aeolian}
}

// Sharps counts the accidentals in the key signature: positive for
// sharps, negative for flats. E major is 4, F major is -1, and remote
// tonics keep counting past 7.
func (k Key) Sharps() int {
	return k.Tonic.Fifths() - k.Mode.referencePitch().Fifths()
}

// FromSharps is the key of the given mode with this many sharps in its
// signature.
func FromSharps(sharps int, mode Mode) Key {
	return Key{
		Tonic: mode.referencePitch().TransposeFifths(sharps),
		Mode:  mode,
	}
}

// FromSharpsTonic recovers the mode from a signature and a tonic: four
// sharps on C sharp is C sharp minor. Tonics outside the signature's
// scale are rejected.
func FromSharpsTonic(sharps int, tonic pitch.Pitch) (Key, error) {
	major := FromSharps(sharps, Ionian)
	for i, p := range major.Scale().Degrees() {
		if p == tonic {
			return Key{Tonic: tonic, Mode: Mode(i + 1)}, nil
		}
	}
	return Key{}, fmt.Errorf("tonic %s does not occur with %d sharps", tonic, sharps)
}

// FromPitchDegree is the key of the given mode in which p is the given
// scale degree: the key where A is the III of a major shape is F major.
func FromPitchDegree(p pitch.Pitch, degree Degree, mode Mode) Key {
	step := util.FloorMod(p.Letter().Step()-(degree.Number()-1), 7)
	letter, _ := pitch.LetterFromStep(step)

	natural := Key{Tonic: pitch.FromLetter(letter), Mode: mode}
	expected := natural.PitchOf(degree)

	acc := p.Accidental() - expected.Accidental()
	return Key{Tonic: pitch.New(letter, acc), Mode: mode}
}

// Spelling reports which accidental family the signature uses. Keys with
// an empty signature have neither, so ok is false.
func (k Key) Spelling() (sp pitch.Spelling, ok bool) {
	switch sharps := k.Sharps(); {
	case sharps > 0:
		return pitch.Sharps, true
	case sharps < 0:
		return pitch.Flats, true
	default:
		return 0, false
	}
}

// Parallel keeps the tonic and switches the mode: C major to C minor.
func (k Key) Parallel(mode Mode) Key {
	return Key{Tonic: k.Tonic, Mode: mode}
}

// RelativeMode keeps the key signature and switches the mode, moving the
// tonic: E major to C sharp minor.
func (k Key) RelativeMode(mode Mode) Key {
	diff := mode.referencePitch().Fifths() - k.Mode.referencePitch().Fifths()
	return Key{Tonic: k.Tonic.TransposeFifths(diff), Mode: mode}
}

// Relative swaps major and minor around a shared signature. Keys in
// other modes have no conventional relative, so ok is false.
func (k Key) Relative() (out Key, ok bool) {
	switch k.Mode {
	case Ionian:
		return k.RelativeMode(Aeolian), true
	case Aeolian:
		return k.RelativeMode(Ionian), true
	default:
		return Key{}, false
	}
}

func (k Key) Transpose(ivl interval.Interval) Key {
	return Key{Tonic: k.Tonic.Transpose(ivl), Mode: k.Mode}
}

func (k Key) TransposeFifths(n int) Key {
	return Key{Tonic: k.Tonic.TransposeFifths(n), Mode: k.Mode}
}

// Scale is the key's diatonic scale rooted on the tonic.
func (k Key) Scale() scale.Rooted[pitch.Pitch] {
	return scale.Rooted[pitch.Pitch]{
		Root:    k.Tonic,
		Pattern: scale.Diatonic.WithMode(int(k.Mode)),
	}
}

// PitchOf is the pitch at the given scale degree.
func (k Key) PitchOf(degree Degree) pitch.Pitch {
	p, _ := k.Scale().Degree(degree.Number())
	return p
}

// AccidentalOf is the accidental the signature assigns to a letter, so
// staff notation can leave it implicit.
func (k Key) AccidentalOf(letter pitch.Letter) pitch.Accidental {
	degree := Degree(k.Tonic.Letter().OffsetBetween(letter) + 1)
	return k.PitchOf(degree).Accidental()
}

// PitchOfLetter is the letter as the key spells it: F in E major is F
// sharp.
func (k Key) PitchOfLetter(letter pitch.Letter) pitch.Pitch {
	return pitch.New(letter, k.AccidentalOf(letter))
}

// Alterations lists the signature's altered pitches in signature order:
// F#, C#, G#, D# for E major.
func (k Key) Alterations() []pitch.Pitch {
	var out []pitch.Pitch
	for _, p := range k.Scale().Degrees() {
		if p.Accidental() != pitch.Natural {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return util.Abs(out[i].Fifths()) < util.Abs(out[j].Fifths())
	})
	return out
}

// String names major and minor keys plainly ("C# minor") and the other
// modes by mode name ("D dorian").
func (k Key) String() string {
	switch k.Mode {
	case Ionian:
		return fmt.Sprintf("%s major", k.Tonic)
	case Aeolian:
		return fmt.Sprintf("%s minor", k.Tonic)
	default:
		return fmt.Sprintf("%s %s", k.Tonic, k.Mode)
	}
}

// Parse reads a tonic and a mode separated by a space or colon, such as
// "C# minor", "Eb:major" or "d dorian". A bare tonic is major.
func Parse(s string) (Key, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':'
	})

	switch len(fields) {
	case 1:
		tonic, err := pitch.Parse(fields[0])
		if err != nil {
			return Key{}, err
		}
		return Major(tonic), nil
	case 2:
		tonic, err := pitch.Parse(fields[0])
		if err != nil {
			return Key{}, err
		}
		mode, err := ParseMode(strings.ToLower(fields[1]))
		if err != nil {
			return Key{}, err
		}
		return New(tonic, mode), nil
	default:
		return Key{}, fmt.Errorf("invalid key %q", s)
	}
}
