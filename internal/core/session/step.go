package session

import (
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/feedback"
)

// State is the mutable part of a running session.
type State struct {
	Phase            Phase
	SecondsRemaining int
	CurrentRep       int
	Encouragement    string
}

// InitialState is the ready countdown of a fresh session.
func InitialState() State {
	return State{
		Phase:            PhaseReady,
		SecondsRemaining: model.ReadySeconds,
		CurrentRep:       1,
	}
}

// EffectKind enumerates the side effects a step can request.
type EffectKind int

const (
	// EffectCue plays Effect.Cue.
	EffectCue EffectKind = iota
	// EffectEncourage replaces the encouragement line.
	EffectEncourage
	// EffectRecordCompletion stores today's completion.
	EffectRecordCompletion
	// EffectBenefit picks the benefit line shown on the finished screen.
	EffectBenefit
	// EffectComplete signals the caller that the session is over.
	EffectComplete
)

// Effect is a side effect requested by Step and executed by the runner.
type Effect struct {
	Kind EffectKind
	Cue  feedback.Cue
}

func cue(kind feedback.Cue) Effect {
	return Effect{Kind: EffectCue, Cue: kind}
}

// Step advances the session by one elapsed second. Durations are read from
// config only when a phase is entered.
func Step(state State, config model.SessionConfig) (State, []Effect) {
	switch state.Phase {
	case PhaseReady:
		if state.SecondsRemaining > 1 {
			state.SecondsRemaining--
			return state, []Effect{cue(feedback.CueTick)}
		}
		state.Phase = PhaseWork
		state.SecondsRemaining = config.WorkSeconds
		return state, []Effect{cue(feedback.CueChange)}

	case PhaseWork:
		if state.SecondsRemaining > 1 {
			state.SecondsRemaining--
			return state, nil
		}
		state.Phase = PhaseRest
		state.SecondsRemaining = config.RestSeconds
		return state, []Effect{cue(feedback.CueChange), {Kind: EffectEncourage}}

	case PhaseRest:
		if state.SecondsRemaining > 1 {
			state.SecondsRemaining--
			return state, nil
		}
		if state.CurrentRep < config.TotalReps {
			state.CurrentRep++
			state.Phase = PhaseWork
			state.SecondsRemaining = config.WorkSeconds
			return state, []Effect{cue(feedback.CueChange)}
		}
		state.Phase = PhaseFinished
		state.SecondsRemaining = 0
		return state, []Effect{
			cue(feedback.CueFinish),
			{Kind: EffectRecordCompletion},
			{Kind: EffectBenefit},
			{Kind: EffectComplete},
		}

	default:
		return state, nil
	}
}
