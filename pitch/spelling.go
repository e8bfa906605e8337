package pitch

// Spelling is a preference for how to name the black-key pitch classes.
type Spelling uint8

const (
	Sharps Spelling = iota
	Flats
)

// SpellingOf reports which family an accidental belongs to. Naturals
// belong to neither, so ok is false.
func SpellingOf(acc Accidental) (sp Spelling, ok bool) {
	switch {
	case acc > 0:
		return Sharps, true
	case acc < 0:
		return Flats, true
	default:
		return 0, false
	}
}

func (s Spelling) Flip() Spelling {
	if s == Sharps {
		return Flats
	}
	return Sharps
}

func (s Spelling) String() string {
	if s == Sharps {
		return "sharps"
	}
	return "flats"
}
