package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/config"
	"github.com/olivier-w/clockface/internal/face"
)

type options struct {
	configPath string
	logPath    string
	preset     string
	chime      bool
	fps        int
	size       int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 && args[0] == "snapshot" {
		return runSnapshot(args[1:], os.Stdout)
	}

	var opts options
	fs := flag.NewFlagSet("clockface", flag.ContinueOnError)
	registerCommon(fs, &opts)
	fs.BoolVar(&opts.chime, "chime", false, "play a tick each second")
	fs.IntVar(&opts.fps, "fps", 0, "frames per second (default from config, else 60)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	gg.SetLogger(logger)

	res, err := resolve(opts)
	if err != nil {
		return err
	}
	logger.Info("starting", "preset", res.PresetName, "fps", res.FPS, "chime", res.Chime.Enabled)

	program := tea.NewProgram(newStartupModel(res, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func runSnapshot(args []string, stdout io.Writer) error {
	var opts options
	var out, at string
	fs := flag.NewFlagSet("clockface snapshot", flag.ContinueOnError)
	registerCommon(fs, &opts)
	fs.StringVar(&out, "o", "clockface.png", "output PNG path, or - for stdout")
	fs.IntVar(&opts.size, "size", 0, "image size in pixels (default from config, else 512)")
	fs.StringVar(&at, "at", "", "render this local time (HH:MM:SS) instead of now")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	gg.SetLogger(logger)

	res, err := resolve(opts)
	if err != nil {
		return err
	}
	now := time.Now()
	if at != "" {
		if now, err = parseClockTime(at, now); err != nil {
			return err
		}
	}

	m, err := clock.NewModel(res.Clock)
	if err != nil {
		return err
	}
	m.Reset(now)
	logger.Debug("snapshot", "at", now, "angles", m.Angles().String(), "size", res.SnapshotSize)

	if out == "-" {
		return face.WritePNG(stdout, m.Angles(), res.SnapshotSize)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := face.WritePNG(f, m.Angles(), res.SnapshotSize); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved %s\n", out)
	return nil
}

func registerCommon(fs *flag.FlagSet, opts *options) {
	fs.StringVar(&opts.configPath, "config", config.FileName, "configuration file")
	fs.StringVar(&opts.logPath, "log", "", "write debug logs to this file")
	fs.StringVar(&opts.preset, "preset", "", "animation preset (basic, deadzone, spring)")
}

func resolve(opts options) (*config.Resolved, error) {
	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.preset != "" {
		cfg.Preset = opts.preset
	}
	if opts.fps != 0 {
		cfg.FPS = opts.fps
	}
	if opts.size != 0 {
		cfg.Snapshot.Size = opts.size
	}
	if opts.chime {
		cfg.Chime.Enabled = true
	}
	return cfg.Resolve()
}

// openLogger returns a logger writing to path, or a silent logger when path
// is empty. The terminal belongs to the UI, so logs never go to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func parseClockTime(s string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -at time %q: want HH:MM:SS", s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), day.Location()), nil
}
