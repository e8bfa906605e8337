// Package scale models scales as interval patterns that can be rooted
// on a pitch or a note. A pattern is the shape (whole and half steps), a
// rooted scale is the shape applied to a tonic.
package scale

import (
	"errors"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/util"
)

// ErrNotOctave is returned for patterns whose steps do not add up to a
// full octave.
var ErrNotOctave = errors.New("scale: pattern does not close the octave")

// ErrEmptyPattern is returned for patterns with no steps.
var ErrEmptyPattern = errors.New("scale: pattern has no steps")

// Pattern is an ordered list of ascending steps spanning exactly one
// octave. The steps carry spelling: a whole step written as a major
// second spells differently from one written as a diminished third.
type Pattern struct {
	steps []interval.Interval
}

func NewPattern(steps ...interval.Interval) (Pattern, error) {
	if len(steps) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	total := 0
	for _, step := range steps {
		total += step.Semitones()
	}
	if total != 12 {
		return Pattern{}, ErrNotOctave
	}

	out := make([]interval.Interval, len(steps))
	copy(out, steps)
	return Pattern{steps: out}, nil
}

func mustPattern(steps ...interval.Interval) Pattern {
	p, err := NewPattern(steps...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Len() int {
	return len(p.steps)
}

// Steps returns a copy of the pattern's steps.
func (p Pattern) Steps() []interval.Interval {
	out := make([]interval.Interval, len(p.steps))
	copy(out, p.steps)
	return out
}

// WithMode rotates the pattern to start on its mode-th step, 1-based.
// Diatonic.WithMode(6) is the natural minor shape.
func (p Pattern) WithMode(mode int) Pattern {
	n := len(p.steps)
	out := make([]interval.Interval, n)
	for i := range out {
		out[i] = p.steps[util.FloorMod(i+mode-1, n)]
	}
	return Pattern{steps: out}
}

// FromRoot is the cumulative interval from the root up to the 1-based
// degree. Degrees past the pattern length keep climbing through upper
// octaves.
func (p Pattern) FromRoot(degree int) interval.Interval {
	ivl := interval.PerfectUnison
	for i := 0; i < degree-1; i++ {
		ivl = ivl.Add(p.steps[i%len(p.steps)])
	}
	return ivl
}

// Between is the interval from one 1-based degree up to another.
// Descending degree pairs give descending intervals.
func (p Pattern) Between(from, to int) interval.Interval {
	return p.FromRoot(to).Sub(p.FromRoot(from))
}
