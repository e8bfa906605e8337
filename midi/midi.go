package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/mwhitman/tonality/constants"
	"github.com/mwhitman/tonality/note"
)

// ReadMidiFile parses a Standard MIDI File. Malformed files can make
// the parser panic (https://github.com/gomidi/midi/issues/20), so the
// panic is caught and surfaced as an error.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("could not read midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", filepath, err)
	}
	return res, nil
}

// ReadNotes flattens the note-on events of every track into notes, in
// file order, spelled with sharps.
func ReadNotes(filepath string) ([]note.Note, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}

	var out []note.Note
	for _, tr := range s.Tracks {
		for _, ev := range tr {
			var ch, key, vel uint8
			if ev.Message.GetNoteStart(&ch, &key, &vel) {
				out = append(out, note.FromMIDI(key))
			}
		}
	}
	return out, nil
}

// WriteSequence writes the notes as sequential quarter notes on channel
// 0. Notes outside the MIDI range are rejected before anything is
// written.
func WriteSequence(filepath string, notes []note.Note, bpm float64) error {
	keys := make([]uint8, 0, len(notes))
	for _, n := range notes {
		key, err := n.MIDI()
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}

	clock := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, key := range keys {
		tr.Add(0, gomidi.NoteOn(0, key, constants.DefaultVelocity))
		tr.Add(clock.Ticks4th(), gomidi.NoteOff(0, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return err
	}
	return s.WriteFile(filepath)
}
