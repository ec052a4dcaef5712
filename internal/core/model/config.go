package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a session configuration that cannot be run.
var ErrInvalidConfig = errors.New("invalid session config")

// ReadySeconds is the fixed countdown before the first squeeze.
const ReadySeconds = 3

// SessionConfig defines the timing of one guided session.
type SessionConfig struct {
	WorkSeconds int
	RestSeconds int
	TotalReps   int
}

// Validate rejects negative durations and rep counts below one.
func (config SessionConfig) Validate() error {
	if config.WorkSeconds < 0 {
		return fmt.Errorf("%w: work seconds %d is negative", ErrInvalidConfig, config.WorkSeconds)
	}
	if config.RestSeconds < 0 {
		return fmt.Errorf("%w: rest seconds %d is negative", ErrInvalidConfig, config.RestSeconds)
	}
	if config.TotalReps < 1 {
		return fmt.Errorf("%w: total reps %d is below 1", ErrInvalidConfig, config.TotalReps)
	}
	return nil
}

// MaxPhaseSeconds is the longest countdown any phase can start with.
func (config SessionConfig) MaxPhaseSeconds() int {
	longest := ReadySeconds
	if config.WorkSeconds > longest {
		longest = config.WorkSeconds
	}
	if config.RestSeconds > longest {
		longest = config.RestSeconds
	}
	return longest
}

// TotalSeconds estimates the full session length including the ready countdown.
// Zero-length phases still take one tick.
func (config SessionConfig) TotalSeconds() int {
	work := config.WorkSeconds
	if work < 1 {
		work = 1
	}
	rest := config.RestSeconds
	if rest < 1 {
		rest = 1
	}
	return ReadySeconds + config.TotalReps*(work+rest)
}
