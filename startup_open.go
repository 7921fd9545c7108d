package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/clockface/internal/chime"
	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/config"
	"github.com/olivier-w/clockface/internal/ui"
)

type openFunc func(res *config.Resolved, logger *slog.Logger) (ui.Model, string, error)

func openClockCmd(open openFunc, res *config.Resolved, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		model, warning, err := open(res, logger)
		return startupResolvedMsg{model: model, warning: warning, err: err}
	}
}

// buildClockModel opens the chime when enabled and builds the clock screen.
// A chime that cannot be opened is reported as a warning, not an error.
func buildClockModel(res *config.Resolved, logger *slog.Logger) (ui.Model, string, error) {
	var ticker chime.Ticker = chime.Nop{}
	var warning string
	if res.Chime.Enabled {
		p, err := chime.New(chime.Options{Sample: res.Chime.Sample, Volume: res.Chime.Volume})
		if err != nil {
			logger.Warn("chime disabled", "err", err)
			warning = "Chime disabled: " + err.Error()
		} else {
			ticker = p
		}
	}

	model, err := ui.New(ui.Options{
		Preset:       res.PresetName,
		Clock:        res.Clock,
		FPS:          res.FPS,
		Time:         clock.SystemTime,
		Ticker:       ticker,
		SnapshotSize: res.SnapshotSize,
		Logger:       logger,
	})
	if err != nil {
		ticker.Close()
		return ui.Model{}, "", err
	}
	return model, warning, nil
}
