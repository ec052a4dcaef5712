package session

import (
	"time"

	"kegeltoday/internal/core/model"
)

// Phase is one discrete stage of a session.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseWork     Phase = "work"
	PhaseRest     Phase = "rest"
	PhaseFinished Phase = "finished"
)

// EventType defines the type of session event.
type EventType string

const (
	EventStarted     EventType = "started"
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventFinished    EventType = "finished"
	EventCancelled   EventType = "cancelled"
)

// Event is a session update for observers.
type Event struct {
	Type      EventType
	SessionID string
	State     State
	Config    model.SessionConfig
	Benefit   string
	At        time.Time
}

// Progress returns the completed fraction of the session, from 0 to 1.
func (event Event) Progress() float64 {
	total := event.Config.TotalReps
	if total <= 0 {
		return 0
	}
	switch event.State.Phase {
	case PhaseFinished:
		return 1
	case PhaseReady:
		return 0
	}
	done := float64(event.State.CurrentRep - 1)
	if event.State.Phase == PhaseRest {
		done += 0.5
	}
	return done / float64(total)
}
