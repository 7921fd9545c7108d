// Package config loads the optional clockface.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/transition"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "clockface.yaml"

const (
	DefaultFPS          = 60
	DefaultSnapshotSize = 512
	DefaultChimeVolume  = 0.5
)

// Config represents the optional clockface.yaml configuration.
type Config struct {
	Preset       string         `yaml:"preset,omitempty"`
	SecondCurve  string         `yaml:"second_curve,omitempty"`
	MinuteCurve  string         `yaml:"minute_curve,omitempty"`
	Stall        string         `yaml:"stall,omitempty"`
	Quantization string         `yaml:"quantization,omitempty"`
	MinuteCreep  *bool          `yaml:"minute_creep,omitempty"`
	FPS          int            `yaml:"fps,omitempty"`
	Chime        ChimeConfig    `yaml:"chime"`
	Snapshot     SnapshotConfig `yaml:"snapshot"`
}

// ChimeConfig controls the audible tick.
type ChimeConfig struct {
	Enabled bool    `yaml:"enabled"`
	Sample  string  `yaml:"sample,omitempty"`
	Volume  float64 `yaml:"volume,omitempty"`
}

// SnapshotConfig controls PNG snapshots.
type SnapshotConfig struct {
	Size int `yaml:"size,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	PresetName   string
	Clock        clock.Config
	FPS          int
	Chime        ChimeConfig
	SnapshotSize int
}

// LoadOptional reads the configuration at path if present. A missing file
// yields an empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Resolve applies defaults and turns names into concrete settings.
func (c *Config) Resolve() (*Resolved, error) {
	name := strings.TrimSpace(c.Preset)
	if name == "" {
		name = clock.DefaultPreset
	}
	cc, err := clock.Preset(name)
	if err != nil {
		return nil, err
	}

	if c.SecondCurve != "" {
		if cc.SecondCurve, err = transition.ParseCurve(c.SecondCurve); err != nil {
			return nil, fmt.Errorf("second_curve: %w", err)
		}
	}
	if c.MinuteCurve != "" {
		if cc.MinuteCurve, err = transition.ParseCurve(c.MinuteCurve); err != nil {
			return nil, fmt.Errorf("minute_curve: %w", err)
		}
	}
	if c.Stall != "" {
		if cc.Stall, err = transition.ParseStallPolicy(c.Stall); err != nil {
			return nil, fmt.Errorf("stall: %w", err)
		}
	}
	if c.Quantization != "" {
		if cc.Seconds, err = clock.ParseQuantization(c.Quantization); err != nil {
			return nil, fmt.Errorf("quantization: %w", err)
		}
	}
	if c.MinuteCreep != nil {
		cc.MinuteCreep = *c.MinuteCreep
	}

	fps := c.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	if fps < 1 || fps > 240 {
		return nil, fmt.Errorf("fps must be between 1 and 240, got %d", fps)
	}

	chime := c.Chime
	if chime.Volume == 0 {
		chime.Volume = DefaultChimeVolume
	}
	if chime.Volume < 0 || chime.Volume > 1 {
		return nil, fmt.Errorf("chime volume must be between 0 and 1, got %v", chime.Volume)
	}

	size := c.Snapshot.Size
	if size == 0 {
		size = DefaultSnapshotSize
	}
	if size < 16 || size > 8192 {
		return nil, fmt.Errorf("snapshot size must be between 16 and 8192, got %d", size)
	}

	return &Resolved{
		PresetName:   name,
		Clock:        cc,
		FPS:          fps,
		Chime:        chime,
		SnapshotSize: size,
	}, nil
}
