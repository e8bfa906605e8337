package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitman/tonality/interval"
)

func mustParse(t *testing.T, s string) Pitch {
	t.Helper()
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("could not parse pitch %q: %v", s, err)
	}
	return p
}

func TestLetterAccidentalRoundTrip(t *testing.T) {
	assert := assert.New(t)

	letters := []Letter{C, D, E, F, G, A, B}
	for _, l := range letters {
		for acc := DoubleFlat; acc <= DoubleSharp; acc++ {
			p := New(l, acc)
			assert.Equal(l, p.Letter())
			assert.Equal(acc, p.Accidental())
		}
	}
}

func TestFifthsEncoding(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, FromLetter(C).Fifths())
	assert.Equal(1, FromLetter(G).Fifths())
	assert.Equal(-1, FromLetter(F).Fifths())
	assert.Equal(7, New(C, Sharp).Fifths())
	assert.Equal(-2, New(B, Flat).Fifths())
	assert.Equal(FromFifths(7), New(C, Sharp))
}

func TestSemitonesFromC(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, FromLetter(C).SemitonesFromC())
	assert.Equal(4, FromLetter(E).SemitonesFromC())
	assert.Equal(11, FromLetter(B).SemitonesFromC())
	assert.Equal(6, New(F, Sharp).SemitonesFromC())

	// extreme spellings escape the octave
	assert.Equal(-1, New(C, Flat).SemitonesFromC())
	assert.Equal(-2, New(C, DoubleFlat).SemitonesFromC())
	assert.Equal(12, New(B, Sharp).SemitonesFromC())

	assert.Equal(11, New(C, Flat).Chroma())
	assert.Equal(0, New(B, Sharp).Chroma())
}

func TestClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ClassCs, New(C, Sharp).Class())
	assert.Equal(ClassCs, New(D, Flat).Class())
	assert.Equal(ClassB, New(C, Flat).Class())
	assert.Equal(ClassE, New(F, Flat).Class())
	assert.Equal("C#", ClassCs.String())
	assert.Equal("Db", ClassCs.SpellWith(Flats).String())
	assert.Equal("F", ClassF.SpellWith(Flats).String())
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)

	d1, err := interval.New(interval.Diminished(1), interval.Unison)
	assert.NoError(err)

	cases := []struct {
		start string
		by    interval.Interval
		want  string
	}{
		{"C", interval.PerfectFifth, "G"},
		{"D", interval.MajorThird, "F#"},
		{"B", interval.MinorSecond, "C"},
		{"E", interval.AugmentedFourth, "A#"},
		{"F#", interval.DiminishedFifth, "C"},
		{"C", interval.MinorThird.Neg(), "A"},
		{"G", interval.PerfectOctave, "G"},
		{"C", d1, "Cb"},
		{"Eb", interval.MajorNinth, "F"},
	}
	for _, c := range cases {
		got := mustParse(t, c.start).Transpose(c.by)
		assert.Equal(c.want, got.String(), "%s + %v", c.start, c.by)
	}
}

func TestDistanceTo(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		from, to string
		want     interval.Interval
	}{
		{"C", "G", interval.PerfectFifth},
		{"C", "F#", interval.AugmentedFourth},
		{"E", "C", interval.MinorSixth},
		{"B", "F", interval.DiminishedFifth},
		{"C", "C", interval.PerfectUnison},
		{"C", "Dbb", interval.DiminishedSecond},
	}
	for _, c := range cases {
		got := mustParse(t, c.from).DistanceTo(mustParse(t, c.to))
		assert.Equal(c.want, got, "%s -> %s", c.from, c.to)
	}

	// a lower respelling of the same letter wraps to the octave
	dd8, err := interval.New(interval.Diminished(2), interval.Octave)
	assert.NoError(err)
	assert.Equal(dd8, mustParse(t, "B#").DistanceTo(mustParse(t, "Bb")))

	// same chroma on adjacent letters wraps too
	a7, err := interval.New(interval.Augmented(1), interval.Seventh)
	assert.NoError(err)
	assert.Equal(a7, mustParse(t, "Cb").DistanceTo(mustParse(t, "B")))
}

func TestTransposeDistanceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	starts := []string{"C", "F#", "Bb", "E", "Abb"}
	intervals := []interval.Interval{
		interval.MinorSecond, interval.MajorThird, interval.PerfectFourth,
		interval.AugmentedFourth, interval.PerfectFifth, interval.MinorSeventh,
	}
	for _, s := range starts {
		for _, ivl := range intervals {
			from := mustParse(t, s)
			to := from.Transpose(ivl)
			assert.Equal(ivl, from.DistanceTo(to), "%s + %v", s, ivl)
		}
	}
}

func TestSimplified(t *testing.T) {
	assert := assert.New(t)

	cases := []struct{ in, want string }{
		{"C##", "D"},
		{"Fbb", "Eb"},
		{"Cb", "B"},
		{"B#", "C"},
		{"C#", "C#"},
		{"G", "G"},
	}
	for _, c := range cases {
		assert.Equal(c.want, mustParse(t, c.in).Simplified().String())
	}
}

func TestEnharmonic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Db", mustParse(t, "C#").Enharmonic().String())
	assert.Equal("C#", mustParse(t, "Db").Enharmonic().String())
	assert.Equal("F", mustParse(t, "F").Enharmonic().String())
}

func TestRespellWith(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Db", mustParse(t, "C#").RespellWith(Flats).String())
	assert.Equal("G##", mustParse(t, "G##").RespellWith(Sharps).String())
	assert.Equal("C", mustParse(t, "C").RespellWith(Flats).String())
	assert.Equal("D#", mustParse(t, "Eb").RespellWith(Sharps).String())
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, mustParse(t, "C").Compare(mustParse(t, "D")))
	assert.Equal(1, mustParse(t, "C#").Compare(mustParse(t, "C")))
	assert.Equal(0, mustParse(t, "G").Compare(mustParse(t, "G")))

	// spelling order and sounding order can disagree
	fbb, ess := mustParse(t, "Fbb"), mustParse(t, "E##")
	assert.Equal(1, fbb.Compare(ess))
	assert.Equal(-1, fbb.CompareEnharmonic(ess))

	assert.True(mustParse(t, "C#").EqualEnharmonic(mustParse(t, "Db")))
	assert.False(mustParse(t, "C#").EqualEnharmonic(mustParse(t, "D")))
}

func TestParseAndString(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"C", "F#", "Bbb", "A##", "Eb"} {
		assert.Equal(s, mustParse(t, s).String())
	}

	p, err := Parse("Gx")
	assert.NoError(err)
	assert.Equal("G##", p.String())

	for _, s := range []string{"", "H", "C#b", "#"} {
		_, err := Parse(s)
		assert.Error(err, "parsing %q", s)
	}
}
