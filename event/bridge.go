package event

import (
	"gitlab.com/gomidi/midi/v2"
)

// FromMessage classifies a wire message into the event union. Anything that is
// not a recognized channel voice message comes back as Raw with its bytes kept.
func FromMessage(msg midi.Message, timing int32) Event {
	var ch, b1, b2 uint8
	var rel int16
	var abs uint16
	base := Base{Offset: timing}
	switch {
	case msg.GetNoteStart(&ch, &b1, &b2):
		base.Ch = ch
		return NoteOn{Base: base, Note: b1, Velocity: b2}
	case msg.GetNoteEnd(&ch, &b1):
		// GetNoteOff fills the release velocity for true note-offs; a
		// velocity-zero note-on lands here with zero.
		msg.GetNoteOff(&ch, &b1, &b2)
		base.Ch = ch
		return NoteOff{Base: base, Note: b1, Velocity: b2}
	case msg.GetProgramChange(&ch, &b1):
		base.Ch = ch
		return ProgramChange{Base: base, Program: b1}
	case msg.GetControlChange(&ch, &b1, &b2):
		base.Ch = ch
		return ControlChange{Base: base, Controller: b1, Value: b2}
	case msg.GetPitchBend(&ch, &rel, &abs):
		base.Ch = ch
		return PitchBend{Base: base, Value: rel}
	case msg.GetAfterTouch(&ch, &b1):
		base.Ch = ch
		return ChannelPressure{Base: base, Pressure: b1}
	case msg.GetPolyAfterTouch(&ch, &b1, &b2):
		base.Ch = ch
		return PolyPressure{Base: base, Note: b1, Pressure: b2}
	}
	if len(msg) > 0 && msg[0] >= 0x80 && msg[0] < 0xF0 {
		base.Ch = msg[0] & 0x0F
	}
	return Raw{Base: base, Data: msg}
}

// ToMessage turns an event back into the wire message it stands for.
func ToMessage(e Event) midi.Message {
	switch ev := e.(type) {
	case NoteOn:
		return midi.NoteOn(ev.Ch, ev.Note, ev.Velocity)
	case NoteOff:
		return midi.NoteOff(ev.Ch, ev.Note)
	case ProgramChange:
		return midi.ProgramChange(ev.Ch, ev.Program)
	case ControlChange:
		return midi.ControlChange(ev.Ch, ev.Controller, ev.Value)
	case PitchBend:
		return midi.Pitchbend(ev.Ch, ev.Value)
	case ChannelPressure:
		return midi.AfterTouch(ev.Ch, ev.Pressure)
	case PolyPressure:
		return midi.PolyAfterTouch(ev.Ch, ev.Note, ev.Pressure)
	case Raw:
		return midi.Message(ev.Data)
	}
	return nil
}
