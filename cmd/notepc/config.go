package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

// FileConfig is the YAML shape of -config.
type FileConfig struct {
	Mapping       string `yaml:"mapping"`        // "direct" or "offset"
	OutputChannel int    `yaml:"output_channel"` // 0 = auto, 1-16 = fixed
	MaxNote       int    `yaml:"max_note"`
	BaseNote      int    `yaml:"base_note"`
	PassThrough   bool   `yaml:"pass_through"`
}

func DefaultFileConfig() FileConfig {
	return FileConfig{
		Mapping:       "direct",
		OutputChannel: 0,
		MaxNote:       translate.DefaultMaxNote,
		BaseNote:      translate.DefaultBaseNote,
		PassThrough:   true,
	}
}

func LoadConfig(filename string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filename, err)
	}
	return cfg, nil
}

// Apply pushes the file values through the parameter setters, which clamp
// whatever the file says into the MIDI domain.
func (c FileConfig) Apply(p *translate.Params) {
	m := translate.MappingDirect
	if c.Mapping == "offset" {
		m = translate.MappingOffset
	}
	p.SetMapping(m)
	p.SetOutputChannel(c.OutputChannel)
	p.SetMaxNote(c.MaxNote)
	p.SetBaseNote(c.BaseNote)
	p.SetPassOther(c.PassThrough)
}
