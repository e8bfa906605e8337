package scale

import (
	"fmt"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/pitch"
)

// Root is anything a scale can be built on: an octave-less pitch or a
// concrete note.
type Root[T any] interface {
	Transpose(interval.Interval) T
	Compare(T) int
	AsPitch() pitch.Pitch
}

// Rooted is a pattern applied to a tonic.
type Rooted[T Root[T]] struct {
	Root    T
	Pattern Pattern
}

// Degrees lists one octave of the scale starting at the root, without
// the closing octave.
func (s Rooted[T]) Degrees() []T {
	out := make([]T, 0, s.Pattern.Len())
	cur := s.Root
	for _, step := range s.Pattern.steps {
		out = append(out, cur)
		cur = cur.Transpose(step)
	}
	return out
}

// Degree is the scale member at the 1-based degree. Degrees past the
// pattern length continue into upper octaves.
func (s Rooted[T]) Degree(degree int) (T, error) {
	var zero T
	if degree < 1 {
		return zero, fmt.Errorf("scale degree must be positive, got %d", degree)
	}
	return s.Root.Transpose(s.Pattern.FromRoot(degree)), nil
}

// DegreeAndAlteration locates a value against the scale by letter: the
// 1-based degree whose letter matches, plus the accidental adjustment
// relative to the scale's own spelling. G natural against an E major
// scale is degree 3 flattened once.
func (s Rooted[T]) DegreeAndAlteration(v T) (degree int, alteration pitch.Accidental, ok bool) {
	target := v.AsPitch()
	for i, member := range s.Degrees() {
		mp := member.AsPitch()
		if mp.Letter() == target.Letter() {
			return i + 1, target.Accidental() - mp.Accidental(), true
		}
	}
	return 0, 0, false
}

// DegreeOf finds the 1-based degree whose pitch class matches, ignoring
// octave.
func (s Rooted[T]) DegreeOf(v T) (int, bool) {
	for i, member := range s.Degrees() {
		if member.AsPitch() == v.AsPitch() {
			return i + 1, true
		}
	}
	return 0, false
}

// Build lays the scale out across a range, inclusive on both ends. The
// walk starts three octaves below the root, so ranges reaching under the
// root are covered.
func (s Rooted[T]) Build(min, max T) []T {
	cur := s.Root
	for i := 0; i < 3; i++ {
		cur = cur.Transpose(interval.PerfectOctave.Neg())
	}

	var out []T
	for {
		passStart := cur
		for _, step := range s.Pattern.steps {
			if cur.Compare(max) > 0 {
				return out
			}
			if cur.Compare(min) >= 0 {
				out = append(out, cur)
			}
			cur = cur.Transpose(step)
		}
		// Octave-less roots never climb out of the range; stop after
		// one full cycle over them.
		if cur.Compare(passStart) <= 0 {
			return out
		}
	}
}

// NextAfter snaps a value up to the scale: the first member at or above
// it within the root's octave, wrapping to the octave above.
func (s Rooted[T]) NextAfter(v T) T {
	for _, member := range s.Degrees() {
		if member.Compare(v) >= 0 {
			return member
		}
	}
	return s.Root.Transpose(interval.PerfectOctave)
}

// Transpose moves the whole scale, keeping its shape.
func (s Rooted[T]) Transpose(ivl interval.Interval) Rooted[T] {
	return Rooted[T]{Root: s.Root.Transpose(ivl), Pattern: s.Pattern}
}

// FromDegree recovers the rooted scale that has v as its 1-based degree.
// Deriving from degree 3 of an F major scale at A yields the F scale.
func FromDegree[T Root[T]](pattern Pattern, degree int, v T) (Rooted[T], error) {
	if degree < 1 {
		return Rooted[T]{}, fmt.Errorf("scale degree must be positive, got %d", degree)
	}
	root := v.Transpose(pattern.FromRoot(degree).Neg())
	return Rooted[T]{Root: root, Pattern: pattern}, nil
}
