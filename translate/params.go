package translate

import "sync"

// Params is the host-automatable parameter set. Setters may be called from a
// control thread at any time; the processing side calls Snapshot once per block
// and works off the copy, so the block never sees half-updated values.
//
// Every setter clamps into its declared domain, so a Config coming out of
// Snapshot is always valid.
type Params struct {
	mu  sync.Mutex
	cfg Config
}

func NewParams() *Params {
	return &Params{cfg: DefaultConfig()}
}

// Snapshot returns a consistent copy of the current configuration.
func (p *Params) Snapshot() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// SetOutputChannel takes the 1-based display value: 0 selects auto (follow the
// incoming note's channel), 1-16 force that channel. Out-of-range saturates.
func (p *Params) SetOutputChannel(v int) {
	if v < 0 {
		v = 0
	}
	if v > 16 {
		v = 16
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if v == 0 {
		p.cfg.ChannelMode = ChannelAuto
		p.cfg.Channel = 0
		return
	}
	p.cfg.ChannelMode = ChannelFixed
	p.cfg.Channel = uint8(v - 1)
}

// SetMaxNote sets the inclusive upper bound on convertible notes, clamped to
// 0-127.
func (p *Params) SetMaxNote(v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.MaxNote = clampNote(v)
}

// SetBaseNote sets the note that maps to program 0 under the offset mapping,
// clamped to 0-127.
func (p *Params) SetBaseNote(v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.BaseNote = clampNote(v)
}

// SetPassOther governs whether non-note events reach the output.
func (p *Params) SetPassOther(b bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.PassOther = b
}

// SetMapping selects the note→program formula.
func (p *Params) SetMapping(m Mapping) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m != MappingOffset {
		m = MappingDirect
	}
	p.cfg.Mapping = m
}

func clampNote(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}
