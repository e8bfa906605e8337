package pitch

import (
	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/util"
)

// Class is one of the twelve equal-tempered pitch classes, identified by
// chroma 0 (C) through 11 (B). A class carries no spelling: C sharp and
// D flat are the same Class.
type Class uint8

const (
	ClassC Class = iota
	ClassCs
	ClassD
	ClassDs
	ClassE
	ClassF
	ClassFs
	ClassG
	ClassGs
	ClassA
	ClassAs
	ClassB
)

func ClassFromChroma(chroma int) (Class, bool) {
	if chroma < 0 || chroma > 11 {
		return 0, false
	}
	return Class(chroma), true
}

func (c Class) Chroma() int {
	return int(c)
}

// Letter is the letter of the natural-or-sharp name of the class.
func (c Class) Letter() Letter {
	return [12]Letter{C, C, D, D, E, F, F, G, G, A, A, B}[c]
}

// Accidental is the accidental of the natural-or-sharp name of the class.
func (c Class) Accidental() Accidental {
	return [12]Accidental{0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 1, 0}[c]
}

// SemitonesTo is the ascending distance from c to rhs, in [0, 11].
func (c Class) SemitonesTo(rhs Class) int {
	return util.FloorMod(int(rhs)-int(c), 12)
}

func (c Class) AddSemitones(n int) Class {
	return Class(util.FloorMod(int(c)+n, 12))
}

func (c Class) Transpose(ivl interval.Interval) Class {
	return c.AddSemitones(ivl.Semitones())
}

// SpellWith names the class using the requested accidental family.
// Naturals are unaffected: F spelled with flats is still F, not E sharp.
func (c Class) SpellWith(sp Spelling) Pitch {
	if sp == Sharps || c.Accidental() == Natural {
		return New(c.Letter(), c.Accidental())
	}
	upper := c.AddSemitones(1)
	return New(upper.Letter(), Flat)
}

func (c Class) String() string {
	return c.SpellWith(Sharps).String()
}
