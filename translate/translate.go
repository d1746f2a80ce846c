package translate

import (
	"github.com/Nico7an/MidiNoteToProgramChange/event"
)

// Translate runs the block's events through the decision engine in order,
// handing each surviving event to emit. Per input event at most one event comes
// out, with the input's timing:
//
//   - a note-on inside the convertible window becomes a program change on the
//     configured output channel; outside the window it is dropped
//   - a note-off is always dropped, there is no program-change "off"
//   - everything else is forwarded untouched when PassOther is set, dropped
//     otherwise
//
// The engine holds no state across calls and never fails: notes that cannot
// convert simply produce nothing.
func (c Config) Translate(in []event.Event, emit func(event.Event)) {
	c = c.normalized()
	for _, ev := range in {
		switch ev := ev.(type) {
		case event.NoteOn:
			prog, ok := c.program(ev.Note)
			if !ok {
				continue
			}
			ch := ev.Ch
			if c.ChannelMode == ChannelFixed {
				ch = c.Channel
			}
			emit(event.ProgramChange{
				Base:    event.Base{Ch: ch, Offset: ev.Offset},
				Program: prog,
			})
		case event.NoteOff:
			// dropped
		default:
			if c.PassOther {
				emit(ev)
			}
		}
	}
}

// TranslateAll is Translate collecting into a slice.
func (c Config) TranslateAll(in []event.Event) []event.Event {
	out := make([]event.Event, 0, len(in))
	c.Translate(in, func(ev event.Event) {
		out = append(out, ev)
	})
	return out
}
