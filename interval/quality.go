package interval

import (
	"fmt"
	"strings"
)

// Quality classifies an interval as perfect, major, minor, or some degree
// of diminished or augmented. The zero value is Perfect.
type Quality struct {
	kind   qualityKind
	degree int
}

type qualityKind uint8

const (
	qualityPerfect qualityKind = iota
	qualityMajor
	qualityMinor
	qualityDiminished
	qualityAugmented
)

var (
	Perfect = Quality{kind: qualityPerfect}
	Major   = Quality{kind: qualityMajor}
	Minor   = Quality{kind: qualityMinor}
)

// Diminished returns a quality narrowed n times, e.g. Diminished(2) for a
// doubly diminished interval. Degrees below 1 are rejected by New.
func Diminished(n int) Quality {
	return Quality{kind: qualityDiminished, degree: n}
}

// Augmented returns a quality widened n times.
func Augmented(n int) Quality {
	return Quality{kind: qualityAugmented, degree: n}
}

// DiminishedDegree reports how many times the quality is diminished.
func (q Quality) DiminishedDegree() (int, bool) {
	if q.kind == qualityDiminished {
		return q.degree, true
	}
	return 0, false
}

// AugmentedDegree reports how many times the quality is augmented.
func (q Quality) AugmentedDegree() (int, bool) {
	if q.kind == qualityAugmented {
		return q.degree, true
	}
	return 0, false
}

// Inverted flips the quality: major <-> minor, diminished <-> augmented,
// perfect stays perfect.
func (q Quality) Inverted() Quality {
	switch q.kind {
	case qualityMajor:
		return Minor
	case qualityMinor:
		return Major
	case qualityDiminished:
		return Augmented(q.degree)
	case qualityAugmented:
		return Diminished(q.degree)
	default:
		return q
	}
}

func (q Quality) wellFormed() bool {
	switch q.kind {
	case qualityDiminished, qualityAugmented:
		return q.degree >= 1
	default:
		return q.degree == 0
	}
}

// semitoneAdjust is the offset from the major-or-perfect size of a number.
func (q Quality) semitoneAdjust(perfect bool) int {
	switch q.kind {
	case qualityMinor:
		return -1
	case qualityDiminished:
		if perfect {
			return -q.degree
		}
		return -(q.degree + 1)
	case qualityAugmented:
		return q.degree
	default:
		return 0
	}
}

func (q Quality) String() string {
	switch q.kind {
	case qualityPerfect:
		return "P"
	case qualityMajor:
		return "M"
	case qualityMinor:
		return "m"
	case qualityDiminished:
		return strings.Repeat("d", q.degree)
	default:
		return strings.Repeat("A", q.degree)
	}
}

// ParseQuality reads the shorthand produced by Quality.String: "P", "M",
// "m", or a run of "d"s or "A"s.
func ParseQuality(s string) (Quality, error) {
	switch {
	case s == "P":
		return Perfect, nil
	case s == "M":
		return Major, nil
	case s == "m":
		return Minor, nil
	case s != "" && strings.Count(s, "d") == len(s):
		return Diminished(len(s)), nil
	case s != "" && strings.Count(s, "A") == len(s):
		return Augmented(len(s)), nil
	default:
		return Quality{}, fmt.Errorf("invalid interval quality %q", s)
	}
}
