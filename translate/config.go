// Package translate turns incoming note-ons into program changes. The decision
// engine itself is a pure function over a Config snapshot; Params is the
// host-facing side that owns the mutable values and hands out snapshots.
package translate

// Mapping selects the note→program formula.
type Mapping uint8

const (
	// MappingDirect maps note n to program n for n <= MaxNote.
	MappingDirect Mapping = iota
	// MappingOffset maps note n to program n-BaseNote for
	// BaseNote <= n <= BaseNote+MaxNote. Notes below BaseNote never convert.
	MappingOffset
)

func (m Mapping) String() string {
	if m == MappingOffset {
		return "offset"
	}
	return "direct"
}

// ChannelMode selects the output channel of emitted program changes.
type ChannelMode uint8

const (
	// ChannelAuto reuses the incoming note's channel.
	ChannelAuto ChannelMode = iota
	// ChannelFixed forces Config.Channel.
	ChannelFixed
)

// Defaults as exposed on the parameter surface.
const (
	DefaultMaxNote  = 99
	DefaultBaseNote = 24 // C0
)

// Config is one block's worth of settings. It is passed by value: a block sees
// a consistent snapshot no matter what the control side does meanwhile.
type Config struct {
	Mapping     Mapping
	ChannelMode ChannelMode
	Channel     uint8 // zero-based, used when ChannelMode is ChannelFixed
	MaxNote     uint8
	BaseNote    uint8
	PassOther   bool
}

// DefaultConfig matches the parameter defaults: direct mapping, auto channel,
// max note 99, pass-through on.
func DefaultConfig() Config {
	return Config{
		Mapping:     MappingDirect,
		ChannelMode: ChannelAuto,
		MaxNote:     DefaultMaxNote,
		BaseNote:    DefaultBaseNote,
		PassOther:   true,
	}
}

// normalized saturates every field into the MIDI domain. Params already clamps
// on the way in; this keeps a hand-built Config from mis-mapping.
func (c Config) normalized() Config {
	if c.MaxNote > 127 {
		c.MaxNote = 127
	}
	if c.BaseNote > 127 {
		c.BaseNote = 127
	}
	if c.Channel > 15 {
		c.Channel = 15
	}
	return c
}

// program applies the mapping formula. ok is false when the note falls outside
// the convertible window.
func (c Config) program(note uint8) (prog uint8, ok bool) {
	switch c.Mapping {
	case MappingOffset:
		if note < c.BaseNote {
			return 0, false
		}
		prog = note - c.BaseNote
	default:
		prog = note
	}
	if prog > c.MaxNote {
		return 0, false
	}
	return prog, true
}
