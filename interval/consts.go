package interval

func must(quality Quality, number Number) Interval {
	ivl, err := New(quality, number)
	if err != nil {
		panic(err)
	}
	return ivl
}

// Common intervals up to two octaves.
var (
	PerfectUnison    = must(Perfect, Unison)
	DiminishedSecond = must(Diminished(1), Second)
	MinorSecond      = must(Minor, Second)
	AugmentedUnison  = must(Augmented(1), Unison)
	MajorSecond      = must(Major, Second)
	DiminishedThird  = must(Diminished(1), Third)
	MinorThird       = must(Minor, Third)
	AugmentedSecond  = must(Augmented(1), Second)
	MajorThird       = must(Major, Third)
	DiminishedFourth = must(Diminished(1), Fourth)
	PerfectFourth    = must(Perfect, Fourth)
	AugmentedThird   = must(Augmented(1), Third)
	DiminishedFifth  = must(Diminished(1), Fifth)
	AugmentedFourth  = must(Augmented(1), Fourth)
	PerfectFifth     = must(Perfect, Fifth)
	DiminishedSixth  = must(Diminished(1), Sixth)
	MinorSixth       = must(Minor, Sixth)
	AugmentedFifth   = must(Augmented(1), Fifth)
	MajorSixth       = must(Major, Sixth)
	DiminishedSeventh = must(Diminished(1), Seventh)
	MinorSeventh      = must(Minor, Seventh)
	AugmentedSixth    = must(Augmented(1), Sixth)
	MajorSeventh      = must(Major, Seventh)
	DiminishedOctave  = must(Diminished(1), Octave)
	PerfectOctave     = must(Perfect, Octave)
	AugmentedSeventh  = must(Augmented(1), Seventh)

	DiminishedNinth      = must(Diminished(1), Ninth)
	MinorNinth           = must(Minor, Ninth)
	AugmentedOctave      = must(Augmented(1), Octave)
	MajorNinth           = must(Major, Ninth)
	DiminishedTenth      = must(Diminished(1), Tenth)
	MinorTenth           = must(Minor, Tenth)
	AugmentedNinth       = must(Augmented(1), Ninth)
	MajorTenth           = must(Major, Tenth)
	DiminishedEleventh   = must(Diminished(1), Eleventh)
	PerfectEleventh      = must(Perfect, Eleventh)
	AugmentedTenth       = must(Augmented(1), Tenth)
	DiminishedTwelfth    = must(Diminished(1), Twelfth)
	AugmentedEleventh    = must(Augmented(1), Eleventh)
	PerfectTwelfth       = must(Perfect, Twelfth)
	DiminishedThirteenth = must(Diminished(1), Thirteenth)
	MinorThirteenth      = must(Minor, Thirteenth)
	AugmentedTwelfth     = must(Augmented(1), Twelfth)
	MajorThirteenth      = must(Major, Thirteenth)
	DiminishedFourteenth = must(Diminished(1), Fourteenth)
	MinorFourteenth      = must(Minor, Fourteenth)
	AugmentedThirteenth  = must(Augmented(1), Thirteenth)
	MajorFourteenth      = must(Major, Fourteenth)
	DiminishedFifteenth  = must(Diminished(1), Fifteenth)
	PerfectFifteenth     = must(Perfect, Fifteenth)
	AugmentedFourteenth  = must(Augmented(1), Fourteenth)
)
