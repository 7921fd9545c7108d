package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0:00"},
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{12*time.Minute + 5*time.Second, "12:05"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	ts := time.Date(2024, 1, 2, 7, 5, 9, 0, time.UTC)
	if got := FormatClock(ts); got != "07:05:09" {
		t.Fatalf("FormatClock = %q", got)
	}
}
