// Package event defines the MIDI events exchanged with the host as a closed
// set of variants behind one Event interface. The set is fixed: the translator
// matches on Kind and anything it does not recognize travels as Raw.
package event

import "fmt"

type Kind uint8

const (
	KindNoteOn Kind = iota
	KindNoteOff
	KindProgramChange
	KindControlChange
	KindPitchBend
	KindChannelPressure
	KindPolyPressure
	KindRaw
)

// Event is one timestamped MIDI event within a processing block.
type Event interface {
	Kind() Kind
	// Channel is the zero-based MIDI channel (0-15).
	Channel() uint8
	// Timing is the event's sample offset within the current block.
	Timing() int32
	String() string
}

// Base carries the fields every event kind shares.
type Base struct {
	Ch     uint8
	Offset int32
}

func (b Base) Channel() uint8 { return b.Ch }

func (b Base) Timing() int32 { return b.Offset }

type NoteOn struct {
	Base
	Note     uint8
	Velocity uint8
}

func (NoteOn) Kind() Kind { return KindNoteOn }

func (e NoteOn) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}", e.Ch, e.Note, e.Velocity, e.Offset)
}

type NoteOff struct {
	Base
	Note     uint8
	Velocity uint8
}

func (NoteOff) Kind() Kind { return KindNoteOff }

func (e NoteOff) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, offset:%d}", e.Ch, e.Note, e.Velocity, e.Offset)
}

type ProgramChange struct {
	Base
	Program uint8
}

func (ProgramChange) Kind() Kind { return KindProgramChange }

func (e ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange{ch:%d, prog:%d, offset:%d}", e.Ch, e.Program, e.Offset)
}

type ControlChange struct {
	Base
	Controller uint8
	Value      uint8
}

func (ControlChange) Kind() Kind { return KindControlChange }

func (e ControlChange) String() string {
	return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d, offset:%d}", e.Ch, e.Controller, e.Value, e.Offset)
}

type PitchBend struct {
	Base
	Value int16 // -8192 to 8191, 0 is center
}

func (PitchBend) Kind() Kind { return KindPitchBend }

func (e PitchBend) String() string {
	return fmt.Sprintf("PitchBend{ch:%d, val:%d, offset:%d}", e.Ch, e.Value, e.Offset)
}

type ChannelPressure struct {
	Base
	Pressure uint8
}

func (ChannelPressure) Kind() Kind { return KindChannelPressure }

func (e ChannelPressure) String() string {
	return fmt.Sprintf("ChannelPressure{ch:%d, pressure:%d, offset:%d}", e.Ch, e.Pressure, e.Offset)
}

type PolyPressure struct {
	Base
	Note     uint8
	Pressure uint8
}

func (PolyPressure) Kind() Kind { return KindPolyPressure }

func (e PolyPressure) String() string {
	return fmt.Sprintf("PolyPressure{ch:%d, note:%d, pressure:%d, offset:%d}", e.Ch, e.Note, e.Pressure, e.Offset)
}

// Raw is an event the union has no dedicated variant for: SysEx, realtime
// messages, anything opaque. It carries the wire bytes untouched so
// pass-through keeps the payload intact.
type Raw struct {
	Base
	Data []byte
}

func (Raw) Kind() Kind { return KindRaw }

func (e Raw) String() string {
	return fmt.Sprintf("Raw{ch:%d, data:% X, offset:%d}", e.Ch, e.Data, e.Offset)
}
