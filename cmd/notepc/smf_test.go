package main

import (
	"reflect"
	"testing"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

func TestTranslateTrack(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(2, 60, 100))
	tr.Add(10, midi.ControlChange(2, 1, 64))
	tr.Add(10, midi.NoteOn(2, 120, 100)) // above max note, dropped
	tr.Add(20, midi.NoteOff(2, 60))      // always dropped
	tr.Close(0)

	got := translateTrack(translate.DefaultConfig(), tr)

	var want smf.Track
	want.Add(0, smf.MetaTempo(120))
	want.Add(0, midi.ProgramChange(2, 60))
	want.Add(10, midi.ControlChange(2, 1, 64))
	want.Close(0)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("translated track:\n got %v\nwant %v", got, want)
	}
}

// dropped events in between must not shift what survives
func TestTranslateTrackKeepsAbsolutePositions(t *testing.T) {
	cfg := translate.DefaultConfig()
	cfg.MaxNote = 10

	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 100, 64)) // dropped
	tr.Add(5, midi.NoteOn(0, 101, 64)) // dropped
	tr.Add(5, midi.NoteOn(0, 3, 64))   // survives at tick 10
	tr.Close(0)

	var want smf.Track
	want.Add(10, midi.ProgramChange(0, 3))
	want.Close(0)

	if got := translateTrack(cfg, tr); !reflect.DeepEqual(got, want) {
		t.Errorf("positions shifted:\n got %v\nwant %v", got, want)
	}
}

func TestTranslateTrackFilterEverything(t *testing.T) {
	cfg := translate.DefaultConfig()
	cfg.PassOther = false

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("piano"))
	tr.Add(4, midi.ControlChange(0, 64, 127))
	tr.Add(4, midi.Pitchbend(0, 2000))
	tr.Close(0)

	got := translateTrack(cfg, tr)

	// metas are not the engine's to filter; voice messages all go
	var want smf.Track
	want.Add(0, smf.MetaTrackSequenceName("piano"))
	want.Close(0)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("filtered track:\n got %v\nwant %v", got, want)
	}
}
