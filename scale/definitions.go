package scale

import (
	"sort"

	"github.com/mwhitman/tonality/interval"
)

// Common scale shapes. The diatonic modes are rotations of one pattern,
// so they share key signatures with their parent major scale.
var (
	Diatonic = mustPattern(
		interval.MajorSecond, interval.MajorSecond, interval.MinorSecond,
		interval.MajorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MinorSecond,
	)

	Ionian     = Diatonic
	Dorian     = Diatonic.WithMode(2)
	Phrygian   = Diatonic.WithMode(3)
	Lydian     = Diatonic.WithMode(4)
	Mixolydian = Diatonic.WithMode(5)
	Aeolian    = Diatonic.WithMode(6)
	Locrian    = Diatonic.WithMode(7)

	MelodicMinor = mustPattern(
		interval.MajorSecond, interval.MinorSecond, interval.MajorSecond,
		interval.MajorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MinorSecond,
	)

	HarmonicMinor = mustPattern(
		interval.MajorSecond, interval.MinorSecond, interval.MajorSecond,
		interval.MajorSecond, interval.MinorSecond, interval.AugmentedSecond,
		interval.MinorSecond,
	)

	NeapolitanMajor = mustPattern(
		interval.MinorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MajorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MinorSecond,
	)

	NeapolitanMinor = mustPattern(
		interval.MinorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MajorSecond, interval.MinorSecond, interval.AugmentedSecond,
		interval.MinorSecond,
	)

	DoubleHarmonicMajor = mustPattern(
		interval.MinorSecond, interval.AugmentedSecond, interval.MinorSecond,
		interval.MajorSecond, interval.MinorSecond, interval.AugmentedSecond,
		interval.MinorSecond,
	)

	MajorPentatonic = mustPattern(
		interval.MajorSecond, interval.MajorSecond, interval.MinorThird,
		interval.MajorSecond, interval.MinorThird,
	)

	MinorPentatonic = MajorPentatonic.WithMode(5)

	WholeTone = mustPattern(
		interval.MajorSecond, interval.MajorSecond, interval.MajorSecond,
		interval.MajorSecond, interval.MajorSecond, interval.DiminishedThird,
	)

	Chromatic = mustPattern(
		interval.AugmentedUnison, interval.MinorSecond,
		interval.AugmentedUnison, interval.MinorSecond,
		interval.MinorSecond,
		interval.AugmentedUnison, interval.MinorSecond,
		interval.AugmentedUnison, interval.MinorSecond,
		interval.AugmentedUnison, interval.MinorSecond,
		interval.MinorSecond,
	)
)

var byName = map[string]Pattern{
	"major":                 Diatonic,
	"ionian":                Ionian,
	"dorian":                Dorian,
	"phrygian":              Phrygian,
	"lydian":                Lydian,
	"mixolydian":            Mixolydian,
	"minor":                 Aeolian,
	"aeolian":               Aeolian,
	"locrian":               Locrian,
	"melodic-minor":         MelodicMinor,
	"harmonic-minor":        HarmonicMinor,
	"neapolitan-major":      NeapolitanMajor,
	"neapolitan-minor":      NeapolitanMinor,
	"double-harmonic-major": DoubleHarmonicMajor,
	"major-pentatonic":      MajorPentatonic,
	"minor-pentatonic":      MinorPentatonic,
	"whole-tone":            WholeTone,
	"chromatic":             Chromatic,
}

// ByName looks a pattern up by its hyphenated name, e.g.
// "harmonic-minor".
func ByName(name string) (Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

// Names lists the known pattern names, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

