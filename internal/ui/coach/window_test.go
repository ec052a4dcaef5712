package coach

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/core/session"
	"kegeltoday/internal/ui/animation"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	config := animation.DefaultConfig()
	config.Duration = 0
	coach := New(app, config)
	t.Cleanup(coach.Hide)
	return coach
}

func event(eventType session.EventType, phase session.Phase, remaining, rep int) session.Event {
	return session.Event{
		Type:   eventType,
		State:  session.State{Phase: phase, SecondsRemaining: remaining, CurrentRep: rep},
		Config: model.SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalReps: 10},
		At:     time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local),
	}
}

func TestPhaseTitle(t *testing.T) {
	assert.Equal(t, "Get ready", PhaseTitle(session.PhaseReady))
	assert.Equal(t, "Squeeze", PhaseTitle(session.PhaseWork))
	assert.Equal(t, "Relax", PhaseTitle(session.PhaseRest))
	assert.Equal(t, "Done", PhaseTitle(session.PhaseFinished))
}

func TestRepText(t *testing.T) {
	config := model.SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalReps: 10}
	assert.Equal(t, "10 reps", RepText(session.State{Phase: session.PhaseReady, CurrentRep: 1}, config))
	assert.Equal(t, "Rep 3 of 10", RepText(session.State{Phase: session.PhaseWork, CurrentRep: 3}, config))
}

func TestApplyRendersRunningSession(t *testing.T) {
	coach := newTestWindow(t)
	coach.Show()

	coach.applyUnsafe(event(session.EventPhaseChange, session.PhaseWork, 5, 2))
	assert.Equal(t, "Squeeze", coach.phaseLabel.Text)
	assert.Equal(t, "5", coach.timerLabel.Text)
	assert.Equal(t, "Rep 2 of 10", coach.repLabel.Text)
	assert.InDelta(t, 0.1, coach.progress.Value, 1e-9)

	rest := event(session.EventPhaseChange, session.PhaseRest, 5, 2)
	rest.State.Encouragement = "keep breathing"
	coach.applyUnsafe(rest)
	assert.Equal(t, "Relax", coach.phaseLabel.Text)
	assert.Equal(t, "keep breathing", coach.encourage.Text)
	assert.InDelta(t, 0.15, coach.progress.Value, 1e-9)

	coach.applyUnsafe(event(session.EventPhaseChange, session.PhaseWork, 5, 3))
	assert.Empty(t, coach.encourage.Text)
}

func TestApplyFinishedShowsSummary(t *testing.T) {
	coach := newTestWindow(t)
	coach.Show()

	finished := event(session.EventFinished, session.PhaseFinished, 0, 10)
	finished.Benefit = "stronger core"
	coach.applyUnsafe(finished)

	assert.True(t, coach.finishedView.Visible())
	assert.False(t, coach.sessionView.Visible())
	assert.Equal(t, "stronger core", coach.benefitLabel.Text)

	backHome := 0
	coach.SetOnBackHome(func() { backHome++ })
	test.Tap(coach.backButton)
	assert.Equal(t, 1, backHome)

	coach.Show()
	assert.False(t, coach.finishedView.Visible())
	assert.True(t, coach.sessionView.Visible())
}

func TestStopButtonCallsHandler(t *testing.T) {
	coach := newTestWindow(t)
	coach.Show()

	stopped := 0
	coach.SetOnStop(func() { stopped++ })
	test.Tap(coach.stopButton)
	assert.Equal(t, 1, stopped)
}

func TestCircleLayoutScales(t *testing.T) {
	coach := newTestWindow(t)
	layout := &circleLayout{scale: 0.5}
	layout.Layout(coach.circleArea.Objects, coachSize(200, 100))
	assert.Equal(t, float32(40), coach.circle.Size().Width)
	assert.Equal(t, float32(80), coach.circle.Position().X)
}

func coachSize(width, height float32) fyne.Size {
	return fyne.NewSize(width, height)
}
