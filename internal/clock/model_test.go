package clock

import (
	"errors"
	"math"
	"testing"

	"github.com/olivier-w/clockface/internal/transition"
)

func newPresetModel(t *testing.T, name string) *Model {
	t.Helper()
	cfg, err := Preset(name)
	if err != nil {
		t.Fatalf("Preset(%q): %v", name, err)
	}
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestResetSnapsToTargets(t *testing.T) {
	m := newPresetModel(t, "spring")
	now := at(10, 9, 30, 0)
	m.Reset(now)
	if got, want := m.Angles(), TargetAngles(now, m.Config().TargetOptions()); got != want {
		t.Fatalf("expected reset angles %+v, got %+v", want, got)
	}
}

func TestUpdateWithRepeatedTimestampIsStable(t *testing.T) {
	m := newPresetModel(t, "spring")
	now := at(10, 9, 30, 0)
	m.Reset(now)

	first := m.Update(now, 50_000)
	second := m.Update(now, 50_000)
	if first != second {
		t.Fatalf("expected unchanged angles, got %+v then %+v", first, second)
	}
	if want := math.Pi * (9.0/30 - 0.5); round6(first.Minute) != round6(want) {
		t.Fatalf("minute = %.6f, want %.6f", first.Minute, want)
	}
	wantHour := math.Pi * (10.0/6 + 9.0/360 + 30.0/21600 - 0.5)
	if round6(first.Hour) != round6(wantHour) {
		t.Fatalf("hour = %.6f, want %.6f", first.Hour, wantHour)
	}
}

func TestSecondHandAnimatesBetweenTicks(t *testing.T) {
	m := newPresetModel(t, "basic")
	m.Reset(at(8, 0, 5, 0))
	m.Update(at(8, 0, 5, 0), 10_000)

	before := m.Angles().Second
	m.Update(at(8, 0, 6, 0), 10_016)
	mid := m.Update(at(8, 0, 6, 100), 10_116).Second
	target := TargetAngles(at(8, 0, 6, 0), m.Config().TargetOptions()).Second
	if mid <= before || mid >= target {
		t.Fatalf("expected second hand between %v and %v, got %v", before, target, mid)
	}
	settled := m.Update(at(8, 0, 6, 400), 10_416).Second
	if settled != target {
		t.Fatalf("expected second hand settled on %v, got %v", target, settled)
	}
}

func TestHourHandIsNeverEased(t *testing.T) {
	m := newPresetModel(t, "basic")
	m.Reset(at(2, 59, 59, 0))
	m.Update(at(2, 59, 59, 0), 10_000)
	now := at(3, 0, 0, 0)
	if got, want := m.Update(now, 10_016).Hour, TargetAngles(now, TargetOptions{}).Hour; got != want {
		t.Fatalf("expected hour %v, got %v", want, got)
	}
}

func TestMinuteRolloverTakesShortPath(t *testing.T) {
	m := newPresetModel(t, "spring")
	m.Reset(at(4, 59, 59, 500))
	m.Update(at(4, 59, 59, 500), 10_000)
	m.Update(at(5, 0, 0, 0), 10_016)
	for ts := 10_032.0; ts < 10_700; ts += 16 {
		a := m.Update(at(5, 0, 0, 0), ts)
		// Overshoot can carry the hand a little past twelve, but never the
		// long way around the dial.
		if a.Minute < -math.Pi/2-0.2 || a.Minute > -math.Pi/2+0.2 {
			t.Fatalf("minute hand swept the long way: %v at %v", a.Minute, ts)
		}
	}
}

func TestStallTeleportsBothHands(t *testing.T) {
	m := newPresetModel(t, "spring")
	m.Reset(at(6, 10, 0, 0))
	m.Update(at(6, 10, 0, 0), 10_000)
	later := at(6, 14, 20, 0)
	got := m.Update(later, 10_000+transition.StallThreshold*30)
	want := TargetAngles(later, m.Config().TargetOptions())
	if got != want {
		t.Fatalf("expected hands on target after stall, got %+v want %+v", got, want)
	}
}

func TestStallFreezeHoldsBothHands(t *testing.T) {
	m := newPresetModel(t, "deadzone")
	m.Reset(at(6, 10, 0, 0))
	before := m.Update(at(6, 10, 0, 0), 10_000)
	got := m.Update(at(6, 14, 20, 0), 10_000+transition.StallThreshold*30)
	if got.Second != before.Second || got.Minute != before.Minute {
		t.Fatalf("expected hands to hold for the stalled frame, got %+v from %+v", got, before)
	}
}

func TestPresetsAreKnown(t *testing.T) {
	names := PresetNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %v", names)
	}
	for _, n := range names {
		if _, err := Preset(n); err != nil {
			t.Fatalf("Preset(%q): %v", n, err)
		}
	}
	if _, err := Preset("cuckoo"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestSetConfigRejectsBadRateAndKeepsModel(t *testing.T) {
	m := newPresetModel(t, "basic")
	now := at(9, 0, 0, 0)
	m.Reset(now)
	err := m.SetConfig(Config{SecondRate: -1}, now)
	if !errors.Is(err, transition.ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
	if !m.Config().MinuteCreep {
		t.Fatal("expected previous config to remain active")
	}
	if err := m.SetConfig(Config{}, now); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if m.Config().SecondRate != DefaultSecondRate {
		t.Fatalf("expected default rate, got %v", m.Config().SecondRate)
	}
}

func TestFixedTimeSource(t *testing.T) {
	want := at(1, 2, 3, 4)
	if got := FixedTime(want).Now(); !got.Equal(want) {
		t.Fatalf("FixedTime.Now() = %v", got)
	}
	if SystemTime.Now().IsZero() {
		t.Fatal("expected system time")
	}
}
