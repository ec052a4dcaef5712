package feedback

import "time"

// Cue identifies the kind of feedback tied to a tick or transition.
type Cue string

const (
	CueTick   Cue = "tick"
	CueChange Cue = "change"
	CueFinish Cue = "finish"
)

// Tone is a single enveloped sine note. A zero Frequency is a rest.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Gain      float64
	Attack    time.Duration
	Release   time.Duration
}

// Pattern holds the tones and vibration timings for one cue.
// Vibration alternates pulse and pause durations, starting with a pulse.
type Pattern struct {
	Tones     []Tone
	Vibration []time.Duration
}

// PatternFor returns the feedback pattern of a cue.
func PatternFor(cue Cue) Pattern {
	switch cue {
	case CueTick:
		return Pattern{
			Tones: []Tone{note(660, 80*time.Millisecond, 0.25)},
		}
	case CueChange:
		return Pattern{
			Tones:     []Tone{note(880, 180*time.Millisecond, 0.4)},
			Vibration: []time.Duration{200 * time.Millisecond},
		}
	case CueFinish:
		return Pattern{
			Tones: []Tone{
				note(523.25, 150*time.Millisecond, 0.4),
				note(659.25, 150*time.Millisecond, 0.4),
				note(783.99, 150*time.Millisecond, 0.4),
				note(1046.5, 450*time.Millisecond, 0.45),
			},
			Vibration: []time.Duration{
				200 * time.Millisecond, 100 * time.Millisecond,
				200 * time.Millisecond, 100 * time.Millisecond,
				400 * time.Millisecond,
			},
		}
	default:
		return Pattern{}
	}
}

func note(frequency float64, duration time.Duration, gain float64) Tone {
	return Tone{
		Frequency: frequency,
		Duration:  duration,
		Gain:      gain,
		Attack:    10 * time.Millisecond,
		Release:   duration / 2,
	}
}
