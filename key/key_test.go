package key

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitman/tonality/pitch"
)

func mustPitch(t *testing.T, s string) pitch.Pitch {
	t.Helper()
	p, err := pitch.Parse(s)
	if err != nil {
		t.Fatalf("could not parse pitch %q: %v", s, err)
	}
	return p
}

func pitchStrings(pitches []pitch.Pitch) []string {
	out := make([]string, len(pitches))
	for i, p := range pitches {
		out[i] = p.String()
	}
	return out
}

func TestSharps(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		key  string
		want int
	}{
		{"C major", 0},
		{"E major", 4},
		{"F major", -1},
		{"A minor", 0},
		{"C# minor", 4},
		{"D dorian", 0},
		{"Bb major", -2},
		{"C# major", 7},
		{"Cb major", -7},
	}
	for _, c := range cases {
		k, err := Parse(c.key)
		assert.NoError(err)
		assert.Equal(c.want, k.Sharps(), c.key)
	}
}

func TestFromSharpsRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for sharps := -10; sharps <= 10; sharps++ {
		for mode := Ionian; mode <= Locrian; mode++ {
			k := FromSharps(sharps, mode)
			assert.Equal(sharps, k.Sharps())
			assert.Equal(mode, k.Mode)
		}
	}
}

func TestFromSharpsTonic(t *testing.T) {
	assert := assert.New(t)

	k, err := FromSharpsTonic(4, mustPitch(t, "C#"))
	assert.NoError(err)
	assert.Equal(Minor(mustPitch(t, "C#")), k)

	k, err = FromSharpsTonic(0, mustPitch(t, "D"))
	assert.NoError(err)
	assert.Equal(New(mustPitch(t, "D"), Dorian), k)

	_, err = FromSharpsTonic(0, mustPitch(t, "F#"))
	assert.Error(err)
}

func TestAlterations(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"F#", "C#", "G#", "D#"},
		pitchStrings(Major(mustPitch(t, "E")).Alterations()))
	assert.Equal([]string{"Bb", "Eb", "Ab", "Db"},
		pitchStrings(Major(mustPitch(t, "Ab")).Alterations()))
	assert.Equal([]string{"Bb"}, pitchStrings(Major(mustPitch(t, "F")).Alterations()))
	assert.Empty(Major(mustPitch(t, "C")).Alterations())
}

func TestScaleDegrees(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"E", "F#", "G#", "A", "B", "C#", "D#"},
		pitchStrings(Major(mustPitch(t, "E")).Scale().Degrees()))
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"},
		pitchStrings(Minor(mustPitch(t, "A")).Scale().Degrees()))
	assert.Equal([]string{"D", "E", "F", "G", "A", "B", "C"},
		pitchStrings(New(mustPitch(t, "D"), Dorian).Scale().Degrees()))
}

func TestRelative(t *testing.T) {
	assert := assert.New(t)

	rel, ok := Major(mustPitch(t, "E")).Relative()
	assert.True(ok)
	assert.Equal(Minor(mustPitch(t, "C#")), rel)

	back, ok := rel.Relative()
	assert.True(ok)
	assert.Equal(Major(mustPitch(t, "E")), back)

	_, ok = New(mustPitch(t, "D"), Dorian).Relative()
	assert.False(ok)
}

func TestRelativeModePreservesSignature(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(New(mustPitch(t, "D"), Dorian),
		Major(mustPitch(t, "C")).RelativeMode(Dorian))

	for sharps := -7; sharps <= 7; sharps++ {
		for mode := Ionian; mode <= Locrian; mode++ {
			k := FromSharps(sharps, Ionian)
			moved := k.RelativeMode(mode)
			assert.Equal(k.Sharps(), moved.Sharps())
			assert.Equal(mode, moved.Mode)
		}
	}
}

func TestParallel(t *testing.T) {
	assert := assert.New(t)

	par := Major(mustPitch(t, "C")).Parallel(Aeolian)
	assert.Equal(Minor(mustPitch(t, "C")), par)
	assert.Equal(-3, par.Sharps())
}

func TestFromPitchDegree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Major(mustPitch(t, "F")),
		FromPitchDegree(mustPitch(t, "A"), III, Ionian))
	assert.Equal(Major(mustPitch(t, "A")),
		FromPitchDegree(mustPitch(t, "C#"), III, Ionian))
	assert.Equal(Minor(mustPitch(t, "C#")),
		FromPitchDegree(mustPitch(t, "G#"), V, Aeolian))

	// every degree of a key maps back to the key
	k := Major(mustPitch(t, "Eb"))
	for d := I; d <= VII; d++ {
		assert.Equal(k, FromPitchDegree(k.PitchOf(d), d, Ionian))
	}
}

func TestPitchOfAndAccidentalOf(t *testing.T) {
	assert := assert.New(t)

	cMajor := Major(mustPitch(t, "C"))
	assert.Equal(mustPitch(t, "G"), cMajor.PitchOf(V))

	eMajor := Major(mustPitch(t, "E"))
	assert.Equal(pitch.Sharp, eMajor.AccidentalOf(pitch.F))
	assert.Equal(pitch.Natural, eMajor.AccidentalOf(pitch.A))
	assert.Equal(mustPitch(t, "F#"), eMajor.PitchOfLetter(pitch.F))
	assert.Equal(mustPitch(t, "Bb"), Major(mustPitch(t, "F")).PitchOfLetter(pitch.B))

	for _, l := range []pitch.Letter{pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B} {
		assert.Equal(pitch.Natural, cMajor.AccidentalOf(l))
	}
}

func TestSpelling(t *testing.T) {
	assert := assert.New(t)

	sp, ok := Major(mustPitch(t, "D")).Spelling()
	assert.True(ok)
	assert.Equal(pitch.Sharps, sp)

	sp, ok = Major(mustPitch(t, "F")).Spelling()
	assert.True(ok)
	assert.Equal(pitch.Flats, sp)

	_, ok = Major(mustPitch(t, "C")).Spelling()
	assert.False(ok)
}

func TestKeyStringAndParse(t *testing.T) {
	assert := assert.New(t)

	cases := []struct{ in, want string }{
		{"C", "C major"},
		{"C# minor", "C# minor"},
		{"Eb:major", "Eb major"},
		{"d dorian", "D dorian"},
		{"F# Minor", "F# minor"},
	}
	for _, c := range cases {
		k, err := Parse(c.in)
		assert.NoError(err)
		assert.Equal(c.want, fmt.Sprintf("%v", k))
	}

	for _, s := range []string{"", "X major", "C phrygian dominant", "C#:nope"} {
		_, err := Parse(s)
		assert.Error(err, "parsing %q", s)
	}
}
