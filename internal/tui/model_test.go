package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegeltoday/internal/core/calendar"
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/core/session"
)

var fixedNow = time.Date(2026, time.October, 15, 20, 0, 0, 0, time.Local)

type benefitSelector struct{}

func (benefitSelector) PickEncouragement() string { return "you are doing great" }
func (benefitSelector) PickBenefit() string       { return "better bladder control" }

type memoryRecorder struct {
	days []string
}

func (recorder *memoryRecorder) RecordCompletion(day string) error {
	recorder.days = append(recorder.days, day)
	return nil
}

func newTestModel(t *testing.T, config model.SessionConfig) (Model, *session.Session, chan time.Time, *memoryRecorder) {
	t.Helper()
	ticks := make(chan time.Time)
	recorder := &memoryRecorder{}
	runner, err := session.New(config, session.Dependencies{
		Recorder: recorder,
		Selector: benefitSelector{},
	}, session.Options{
		Ticks: ticks,
		Now:   func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	t.Cleanup(runner.Cancel)

	m := NewModel(runner, Options{
		History: func() []string { return recorder.days },
		Now:     func() time.Time { return fixedNow },
	})
	return m, runner, ticks, recorder
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func nextEvent(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, waitForEvent(m.events)())
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelRunsSessionToFinish(t *testing.T) {
	m, runner, ticks, recorder := newTestModel(t, model.SessionConfig{WorkSeconds: 1, RestSeconds: 1, TotalReps: 1})

	assert.Nil(t, startSession(runner)())
	m = nextEvent(t, m)
	assert.True(t, m.started)
	assert.Contains(t, m.View(), "GET READY")
	assert.Contains(t, m.View(), "1 reps ahead")

	for i := 0; i < 3; i++ {
		ticks <- fixedNow
		m = nextEvent(t, m)
	}
	assert.Equal(t, session.PhaseWork, m.last.State.Phase)
	assert.Contains(t, m.View(), "SQUEEZE")
	assert.Contains(t, m.View(), "rep 1 / 1")

	ticks <- fixedNow
	m = nextEvent(t, m)
	assert.Contains(t, m.View(), "RELAX")
	assert.Contains(t, m.View(), "you are doing great")

	ticks <- fixedNow
	m = nextEvent(t, m)
	require.True(t, m.Finished())
	view := m.View()
	assert.Contains(t, view, "Awesome!")
	assert.Contains(t, view, "better bladder control")
	assert.Contains(t, view, "October 2026")
	assert.Equal(t, []string{"2026-10-15"}, recorder.days)

	m, cmd := update(t, m, waitForEvent(m.events)())
	assert.Nil(t, cmd)
	assert.True(t, m.Finished())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.True(t, runner.Completed())
}

func TestModelQuitCancelsSession(t *testing.T) {
	m, runner, ticks, recorder := newTestModel(t, model.SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalReps: 10})

	assert.Nil(t, startSession(runner)())
	m = nextEvent(t, m)
	ticks <- fixedNow
	m = nextEvent(t, m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, isQuit(cmd))

	select {
	case <-runner.Done():
	case <-time.After(time.Second):
		t.Fatal("session was not cancelled")
	}
	assert.False(t, runner.Completed())
	assert.Empty(t, recorder.days)
	assert.Contains(t, m.View(), "Nothing was recorded")
}

func TestModelStartError(t *testing.T) {
	m, runner, _, _ := newTestModel(t, model.SessionConfig{WorkSeconds: 1, RestSeconds: 1, TotalReps: 1})
	require.NoError(t, runner.Start())

	msg := startSession(runner)()
	m, cmd := update(t, m, msg)
	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, m.Err(), session.ErrAlreadyStarted)
}

func TestModelWindowSize(t *testing.T) {
	m, _, _, _ := newTestModel(t, model.SessionConfig{WorkSeconds: 1, RestSeconds: 1, TotalReps: 1})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 48, m.progress.Width)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 40})
	assert.Equal(t, 10, m.progress.Width)
}

func TestRenderMonth(t *testing.T) {
	month := calendar.Build(2026, time.October, fixedNow, []string{"2026-10-01", "2026-10-15"})
	rendered := RenderMonth(month, NewStyles(true))

	assert.Contains(t, rendered, "October 2026")
	assert.Contains(t, rendered, " Su")
	assert.Contains(t, rendered, " 31")
	assert.Contains(t, rendered, "2 days completed this month")
}
