package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/clockface/internal/chime"
	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/face"
	"github.com/olivier-w/clockface/internal/util"
)

// Options configures a Model.
type Options struct {
	Preset       string
	Clock        clock.Config
	FPS          int
	Time         clock.TimeSource
	Ticker       chime.Ticker
	SnapshotSize int
	SnapshotDir  string
	Logger       *slog.Logger
}

// Model is the Bubbletea model for the clockface TUI.
type Model struct {
	clock   *clock.Model
	time    clock.TimeSource
	face    *face.Terminal
	ticker  chime.Ticker
	logger  *slog.Logger
	presets presetCycle
	frame   time.Duration
	epoch   time.Time
	// frameGen identifies the live frame loop; pausing retires it.
	frameGen int

	now        time.Time
	lastSecond float64
	chimeOn    bool
	paused     bool
	pausedAt   time.Time
	width      int
	height     int
	quitting   bool

	snapshotSize int
	snapshotDir  string
	statusMsg    string
	statusTime   time.Time

	keys     keyMap
	help     help.Model
	progress progress.Model
}

// New creates a Model with every hand snapped to the current time.
func New(opts Options) (Model, error) {
	cm, err := clock.NewModel(opts.Clock)
	if err != nil {
		return Model{}, err
	}
	if opts.Time == nil {
		opts.Time = clock.SystemTime
	}
	if opts.Ticker == nil {
		opts.Ticker = chime.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	now := opts.Time.Now()
	cm.Reset(now)

	p := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	_, isNop := opts.Ticker.(chime.Nop)
	return Model{
		clock:        cm,
		time:         opts.Time,
		face:         face.NewTerminal(),
		ticker:       opts.Ticker,
		logger:       opts.Logger,
		presets:      newPresetCycle(clock.PresetNames(), opts.Preset),
		frame:        time.Second / time.Duration(opts.FPS),
		epoch:        now,
		now:          now,
		lastSecond:   cm.SecondTarget(),
		chimeOn:      !isNop,
		snapshotSize: opts.SnapshotSize,
		snapshotDir:  opts.SnapshotDir,
		keys:         newKeyMap(),
		help:         help.New(),
		progress:     p,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.frame, m.frameGen), tea.SetWindowTitle("clockface"))
}

// timestamp converts a frame time to milliseconds on the frame clock.
func (m Model) timestamp(t time.Time) float64 {
	return float64(t.Sub(m.epoch)) / float64(time.Millisecond)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(m.keys, msg) {
			m.quitting = true
			m.ticker.Close()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.frameGen++
				m.pausedAt = m.time.Now()
				return m, nil
			}
			m.logger.Debug("resumed", "paused_for", m.time.Now().Sub(m.pausedAt))
			return m, frameCmd(m.frame, m.frameGen)
		case key.Matches(msg, m.keys.Preset):
			name := m.presets.Next()
			cfg, err := clock.Preset(name)
			if err == nil {
				err = m.clock.SetConfig(cfg, m.time.Now())
			}
			if err != nil {
				m.setStatus(fmt.Sprintf("Preset failed: %v", err))
				return m, nil
			}
			m.lastSecond = m.clock.SecondTarget()
			m.logger.Info("preset changed", "preset", name)
			m.setStatus("Preset " + name)
		case key.Matches(msg, m.keys.Chime):
			if _, nop := m.ticker.(chime.Nop); nop {
				m.setStatus("Chime unavailable")
				return m, nil
			}
			m.chimeOn = !m.chimeOn
		case key.Matches(msg, m.keys.Snapshot):
			return m, m.snapshotCmd()
		}
		return m, nil

	case snapshotSavedMsg:
		if msg.err != nil {
			m.logger.Error("snapshot failed", "err", msg.err)
			m.setStatus(fmt.Sprintf("Snapshot failed: %v", msg.err))
		} else {
			m.setStatus("Saved " + msg.path)
		}
		return m, nil

	case frameMsg:
		if m.paused || msg.gen != m.frameGen {
			return m, nil
		}
		m.advance(msg.t)
		if m.statusMsg != "" && m.now.Sub(m.statusTime) > 4*time.Second {
			m.statusMsg = ""
		}
		return m, frameCmd(m.frame, m.frameGen)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth < 10 {
			barWidth = 10
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.progress.Width = barWidth
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// advance runs one animation frame at frame time t.
func (m *Model) advance(t time.Time) {
	m.now = m.time.Now()
	m.clock.Update(m.now, m.timestamp(t))
	if target := m.clock.SecondTarget(); target != m.lastSecond {
		m.lastSecond = target
		if m.chimeOn {
			m.ticker.Tick()
		}
	}
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = m.time.Now()
}

func (m Model) snapshotCmd() tea.Cmd {
	angles := m.clock.Angles()
	size := m.snapshotSize
	if size <= 0 {
		size = 512
	}
	path := filepath.Join(m.snapshotDir, "clockface-"+m.now.Format("150405")+".png")
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return snapshotSavedMsg{err: err}
		}
		if err := face.WritePNG(f, angles, size); err != nil {
			f.Close()
			return snapshotSavedMsg{err: err}
		}
		return snapshotSavedMsg{path: path, err: f.Close()}
	}
}

// Angles returns the hand angles drawn by the last frame.
func (m Model) Angles() clock.Angles { return m.clock.Angles() }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w < 20 {
		w = 40
	}
	if h < 10 {
		h = 20
	}

	// header, readout, progress, status and help take 8 rows
	faceRows := h - 8
	if faceRows < 4 {
		faceRows = 4
	}
	m.face.Update(m.clock.Angles(), w-4, faceRows)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("clockface"))
	b.WriteString("\n")
	b.WriteString(indent(m.face.View(), "  "))
	b.WriteString("\n\n  ")
	b.WriteString(readoutStyle.Render(util.FormatClock(m.now)))
	b.WriteString("  ")
	b.WriteString(m.progress.ViewAs(minuteProgress(m.now)))
	b.WriteString("\n  ")

	status := describeConfig(m.presets.Current(), m.clock.Config())
	if m.paused {
		status = "❚❚ paused " + util.FormatDuration(m.time.Now().Sub(m.pausedAt)) + "  " + status
	}
	if m.chimeOn {
		status += "  ♪"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	view := b.String()
	if pad := m.height - lipgloss.Height(view); pad > 0 {
		view += strings.Repeat("\n", pad)
	}
	return view
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// WithStatus returns m showing s as a transient status message.
func (m Model) WithStatus(s string) Model {
	m.setStatus(s)
	return m
}
