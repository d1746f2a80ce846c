package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`mapping: offset
output_channel: 10
max_note: 90
base_note: 36
pass_through: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fileCfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	params := translate.NewParams()
	fileCfg.Apply(params)
	cfg := params.Snapshot()

	if cfg.Mapping != translate.MappingOffset {
		t.Errorf("mapping: got %v", cfg.Mapping)
	}
	if cfg.ChannelMode != translate.ChannelFixed || cfg.Channel != 9 {
		t.Errorf("output channel 10 should mean fixed channel 9, got mode=%d channel=%d", cfg.ChannelMode, cfg.Channel)
	}
	if cfg.MaxNote != 90 || cfg.BaseNote != 36 {
		t.Errorf("notes: got max=%d base=%d", cfg.MaxNote, cfg.BaseNote)
	}
	if cfg.PassOther {
		t.Error("pass_through should be off")
	}
}

// values outside the MIDI domain clamp at the parameter layer
func TestApplyClampsFileValues(t *testing.T) {
	fileCfg := FileConfig{
		Mapping:       "direct",
		OutputChannel: 99,
		MaxNote:       300,
		BaseNote:      -4,
		PassThrough:   true,
	}
	params := translate.NewParams()
	fileCfg.Apply(params)
	cfg := params.Snapshot()

	if cfg.Channel != 15 {
		t.Errorf("channel: got %d, want 15", cfg.Channel)
	}
	if cfg.MaxNote != 127 || cfg.BaseNote != 0 {
		t.Errorf("notes: got max=%d base=%d", cfg.MaxNote, cfg.BaseNote)
	}
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	fileCfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if fileCfg != DefaultFileConfig() {
		t.Errorf("got %+v, want defaults", fileCfg)
	}
}
