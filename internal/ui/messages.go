package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries the generation of the frame loop that scheduled it so a
// loop orphaned by pause/resume stops instead of running alongside the new one.
type frameMsg struct {
	t   time.Time
	gen int
}

type snapshotSavedMsg struct {
	path string
	err  error
}

func frameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{t: t, gen: gen}
	})
}
