// Package ui is the interactive bubbletea front-end for the marquee
// engine: one engine step per tick, with pause, reverse, single-step,
// and speed controls.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/marquee"
)

const (
	minWait = 25 * time.Millisecond
	maxWait = 2 * time.Second
)

// tickMsg advances the marquee by one frame.
type tickMsg time.Time

// toastExpiredMsg clears the transient status message.
type toastExpiredMsg struct{}

// frameCapture is the engine sink: it keeps only the latest frame for
// the next View call.
type frameCapture struct {
	frame marquee.Frame
}

func (c *frameCapture) sink(f marquee.Frame) error {
	c.frame = f
	return nil
}

// Model drives a marquee.Engine from bubbletea ticks.
type Model struct {
	engine  *marquee.Engine
	capture *frameCapture
	text    string
	prefix  string
	suffix  string

	wait   time.Duration
	paused bool
	width  int
	toast  string
	err    error

	keymap KeyMap
	styles Styles
}

// New builds the viewer around an engine constructed from opts. The
// model owns frame timing, so the engine itself never sleeps.
func New(opts marquee.Options, prefix, suffix string) (*Model, error) {
	wait := opts.Wait
	if wait <= 0 {
		wait = 300 * time.Millisecond
	}

	capture := &frameCapture{}
	opts.Wait = 0
	opts.Sink = capture.sink
	engine, err := marquee.New(opts)
	if err != nil {
		return nil, err
	}

	return &Model{
		engine:  engine,
		capture: capture,
		text:    opts.Text,
		prefix:  prefix,
		suffix:  suffix,
		wait:    wait,
		keymap:  DefaultKeyMap(),
		styles:  DefaultStyles(),
	}, nil
}

// Init schedules the first frame.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.wait, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.step(m.engine.StepForward)
		}
		return m, m.tick()

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keymap.Reverse):
		if err := m.engine.SetDirection(m.engine.Direction().Reversed()); err != nil {
			m.err = err
		}

	case key.Matches(msg, m.keymap.StepBack):
		m.paused = true
		m.step(m.engine.StepBackward)

	case key.Matches(msg, m.keymap.StepFwd):
		m.paused = true
		m.step(m.engine.StepForward)

	case key.Matches(msg, m.keymap.Restart):
		m.step(m.engine.Restart)

	case key.Matches(msg, m.keymap.Faster):
		m.wait = clampWait(m.wait / 2)

	case key.Matches(msg, m.keymap.Slower):
		m.wait = clampWait(m.wait * 2)

	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyText()
	}
	return m, nil
}

func (m *Model) step(op func(context.Context) error) {
	if err := op(context.Background()); err != nil {
		logging.WithError(err, "marquee step")
		m.err = err
	}
}

func (m *Model) copyText() tea.Cmd {
	if err := copyToClipboard(m.text); err != nil {
		logging.WithError(err, "copy to clipboard")
		m.toast = "copy failed"
	} else {
		m.toast = "copied"
	}
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func clampWait(d time.Duration) time.Duration {
	if d < minWait {
		return minWait
	}
	if d > maxWait {
		return maxWait
	}
	return d
}

// View renders the marquee cell with a status line and key hints.
func (m *Model) View() tea.View {
	var b strings.Builder

	title := m.styles.Title.Render("marquee")
	line := m.styles.Edge.Render(m.prefix) +
		m.styles.Marquee.Render(m.capture.frame.Text) +
		m.styles.Edge.Render(m.suffix)

	badge := ""
	if m.paused {
		badge = m.styles.Paused.Render("PAUSED")
	} else if m.toast != "" {
		badge = m.styles.Toast.Render(m.toast)
	}
	if badge != "" {
		gap := ansi.StringWidth(line) - ansi.StringWidth(title) - ansi.StringWidth(badge)
		if gap < 1 {
			gap = 1
		}
		title += strings.Repeat(" ", gap) + badge
	}

	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(line)
	b.WriteString("\n\n")

	status := fmt.Sprintf("direction %s · %v/frame · frame %d/%d",
		m.engine.Direction(), m.wait, m.frameNumber(), m.engine.FrameCount())
	b.WriteString(m.styles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(m.hints())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	var view tea.View
	view.SetContent(b.String())
	return view
}

// frameNumber is the 1-based position of the current frame in its pass.
func (m *Model) frameNumber() int {
	return m.capture.frame.Index - m.engine.MinIndex() + 1
}

func (m *Model) hints() string {
	parts := make([]string, 0, 9)
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	line := strings.Join(parts, " · ")
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return m.styles.Hints.Render(line)
}
