package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/transition"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.PresetName != clock.DefaultPreset {
		t.Fatalf("expected default preset, got %q", r.PresetName)
	}
	if r.FPS != DefaultFPS || r.SnapshotSize != DefaultSnapshotSize {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if r.Chime.Enabled {
		t.Fatal("expected chime disabled by default")
	}
}

func TestLoadOptionalOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	doc := `preset: basic
minute_curve: spring
stall: freeze
quantization: deadzone
minute_creep: false
fps: 30
chime:
  enabled: true
  sample: tick.wav
snapshot:
  size: 256
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := transition.CurveName(r.Clock.MinuteCurve); got != "spring" {
		t.Fatalf("expected spring minute curve, got %q", got)
	}
	if got := transition.CurveName(r.Clock.SecondCurve); got != "sine" {
		t.Fatalf("expected preset second curve to survive, got %q", got)
	}
	if r.Clock.Stall != transition.StallFreeze {
		t.Fatalf("expected freeze, got %v", r.Clock.Stall)
	}
	if r.Clock.Seconds != clock.QuantizeDeadZone {
		t.Fatalf("expected deadzone, got %v", r.Clock.Seconds)
	}
	if r.Clock.MinuteCreep {
		t.Fatal("expected minute creep disabled by override")
	}
	if r.FPS != 30 || r.SnapshotSize != 256 {
		t.Fatalf("unexpected fps/size: %+v", r)
	}
	if !r.Chime.Enabled || r.Chime.Sample != "tick.wav" || r.Chime.Volume != DefaultChimeVolume {
		t.Fatalf("unexpected chime config: %+v", r.Chime)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Preset != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("presett: basic\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []Config{
		{Preset: "sundial"},
		{SecondCurve: "zigzag"},
		{Stall: "panic"},
		{Quantization: "smooth"},
		{FPS: 1000},
		{Chime: ChimeConfig{Volume: 2}},
		{Snapshot: SnapshotConfig{Size: 4}},
	}
	for _, c := range cases {
		if _, err := c.Resolve(); err == nil {
			t.Errorf("expected error resolving %+v", c)
		}
	}

	_, err := (&Config{Preset: "sundial"}).Resolve()
	if !errors.Is(err, clock.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}
