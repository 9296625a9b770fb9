package ui

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/marquee"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	opts := marquee.Options{
		Width:        5,
		Text:         "AB",
		Filler:       '.',
		Direction:    marquee.LeadingEdgeRight,
		IncludeFirst: true,
		IncludeLast:  true,
		Wait:         40 * time.Millisecond,
	}
	m, err := New(opts, "|", "|")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := marquee.DefaultOptions("x")
	opts.Width = 0
	if _, err := New(opts, ".", "."); !errors.Is(err, marquee.ErrInvalidConfig) {
		t.Fatalf("New error = %v, want %v", err, marquee.ErrInvalidConfig)
	}
}

func TestTickAdvancesFrame(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if m.capture.frame.Text != "....." {
		t.Errorf("frame after first tick = %q, want all filler", m.capture.frame.Text)
	}
	m.Update(tickMsg(time.Now()))
	if m.capture.frame.Text != "....A" {
		t.Errorf("frame after second tick = %q, want %q", m.capture.frame.Text, "....A")
	}
}

func TestPauseFreezesFrames(t *testing.T) {
	m := newTestModel(t)
	m.Update(tickMsg(time.Now()))
	before := m.capture.frame

	m.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !m.paused {
		t.Fatal("space should pause")
	}
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("ticks keep flowing while paused")
	}
	if m.capture.frame != before {
		t.Errorf("frame advanced while paused: %+v", m.capture.frame)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.paused {
		t.Fatal("space should resume")
	}
}

func TestSingleStepPausesAndMoves(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !m.paused {
		t.Error("single-step should pause playback")
	}
	if m.engine.Index() != 0 {
		t.Errorf("index = %d, want 0", m.engine.Index())
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.engine.Index() != 7 {
		t.Errorf("index after step back = %d, want 7 (wrapped)", m.engine.Index())
	}
}

func TestReverseTogglesDirection(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if m.engine.Direction() != marquee.LeadingEdgeLeft {
		t.Errorf("direction = %v, want %v", m.engine.Direction(), marquee.LeadingEdgeLeft)
	}
	m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if m.engine.Direction() != marquee.LeadingEdgeRight {
		t.Errorf("direction = %v, want %v", m.engine.Direction(), marquee.LeadingEdgeRight)
	}
}

func TestSpeedClamping(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m.Update(tea.KeyPressMsg{Code: '+', Text: "+"})
	}
	if m.wait != minWait {
		t.Errorf("wait after repeated speed-up = %v, want %v", m.wait, minWait)
	}
	for i := 0; i < 12; i++ {
		m.Update(tea.KeyPressMsg{Code: '-', Text: "-"})
	}
	if m.wait != maxWait {
		t.Errorf("wait after repeated slow-down = %v, want %v", m.wait, maxWait)
	}
}

func TestRestartKeyResyncsToFirstFrame(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 5; i++ {
		m.Update(tickMsg(time.Now()))
	}
	m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if m.engine.Index() != 0 {
		t.Errorf("index after restart = %d, want 0", m.engine.Index())
	}
	if m.capture.frame.Text != "....." {
		t.Errorf("frame after restart = %q, want all filler", m.capture.frame.Text)
	}
}

func TestQuitKeyReturnsQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestFrameNumberAccountsForSkippedLeadFrame(t *testing.T) {
	opts := marquee.Options{
		Width:        5,
		Text:         "AB",
		Filler:       '.',
		Direction:    marquee.LeadingEdgeRight,
		IncludeFirst: false,
		IncludeLast:  true,
	}
	m, err := New(opts, ".", ".")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.Update(tickMsg(time.Now()))
	if got := m.frameNumber(); got != 1 {
		t.Errorf("frameNumber = %d, want 1", got)
	}
}
