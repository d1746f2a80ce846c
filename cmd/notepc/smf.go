package main

import (
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Nico7an/MidiNoteToProgramChange/event"
	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

// translateFile rewrites a Standard MIDI File track by track and writes the
// result next to the input unless outPath says otherwise.
func translateFile(logger *charmlog.Logger, cfg translate.Config, inPath, outPath string) error {
	mid, err := smf.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	out := smf.New()
	out.TimeFormat = mid.TimeFormat
	for i, tr := range mid.Tracks {
		nt := translateTrack(cfg, tr)
		logger.Debug("track", "n", i, "in", len(tr), "out", len(nt))
		out.Add(nt)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".mid") + ".pc.mid"
	}
	if err := out.WriteFile(outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("saved", "file", outPath)
	return nil
}

type tickedMessage struct {
	tick int64
	msg  midi.Message
}

// translateTrack runs one track's channel voice messages through the decision
// engine as a single batch, with absolute ticks as the event timing. Meta and
// system messages are not the engine's business and keep their positions
// untouched.
func translateTrack(cfg translate.Config, tr smf.Track) smf.Track {
	var kept []tickedMessage // metas and sysex, positions preserved
	var in []event.Event
	var abs int64
	for _, ev := range tr {
		abs += int64(ev.Delta)
		msg := ev.Message
		if msg.Is(smf.MetaEndOfTrackMsg) {
			continue // Close adds it back
		}
		if !msg.IsPlayable() {
			kept = append(kept, tickedMessage{abs, midi.Message(msg)})
			continue
		}
		in = append(in, event.FromMessage(midi.Message(msg), int32(abs)))
	}

	var voice []tickedMessage
	cfg.Translate(in, func(ev event.Event) {
		voice = append(voice, tickedMessage{int64(ev.Timing()), event.ToMessage(ev)})
	})

	// both lists are tick-ordered; merge them back, metas first on ties
	out := smf.Track{}
	var last int64
	add := func(t tickedMessage) {
		out.Add(uint32(t.tick-last), t.msg)
		last = t.tick
	}
	i, j := 0, 0
	for i < len(kept) && j < len(voice) {
		if kept[i].tick <= voice[j].tick {
			add(kept[i])
			i++
		} else {
			add(voice[j])
			j++
		}
	}
	for ; i < len(kept); i++ {
		add(kept[i])
	}
	for ; j < len(voice); j++ {
		add(voice[j])
	}
	out.Close(0)
	return out
}
