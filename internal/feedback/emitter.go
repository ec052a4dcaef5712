package feedback

import (
	"errors"
	"sync"
	"time"

	"kegeltoday/internal/logger"
)

// Backend produces audio for tone sequences. Play must not block; done is
// called once the sequence has been heard, from any goroutine.
type Backend interface {
	Open() error
	Play(tones []Tone, done func()) error
	Close() error
}

// Vibrator plays haptic pulse patterns without blocking.
type Vibrator interface {
	Vibrate(pattern []time.Duration) error
	Stop()
}

// Options configures which feedback channels are active.
type Options struct {
	Sound   bool
	Haptics bool
	Muted   []Cue
}

// Emitter turns cues into tones and vibrations on a best-effort basis.
// The audio backend is opened on first use and held until Release.
type Emitter struct {
	mu         sync.Mutex
	backend    Backend
	vibrator   Vibrator
	options    Options
	muted      map[Cue]bool
	opened     bool
	audioOff   bool
	hapticsOff bool
	generation int
	pending    int
	drained    chan struct{}
}

// NewEmitter creates an emitter. Either backend or vibrator may be nil.
func NewEmitter(backend Backend, vibrator Vibrator, options Options) *Emitter {
	muted := make(map[Cue]bool, len(options.Muted))
	for _, cue := range options.Muted {
		muted[cue] = true
	}
	return &Emitter{
		backend:  backend,
		vibrator: vibrator,
		options:  options,
		muted:    muted,
	}
}

// Emit plays the pattern of a cue. Failures turn the affected channel off
// until the next Release.
func (emitter *Emitter) Emit(cue Cue) {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()

	if emitter.muted[cue] {
		return
	}
	pattern := PatternFor(cue)
	emitter.playLocked(cue, pattern.Tones)
	emitter.vibrateLocked(cue, pattern.Vibration)
}

// Flush waits until queued tones have played or the timeout expires.
// It reports whether everything was heard.
func (emitter *Emitter) Flush(timeout time.Duration) bool {
	emitter.mu.Lock()
	if emitter.pending == 0 {
		emitter.mu.Unlock()
		return true
	}
	drained := emitter.drained
	emitter.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-drained:
		return true
	case <-timer.C:
		return false
	}
}

// Release closes the audio backend and stops vibrations. The emitter can be
// used again afterwards; the backend is reopened on the next cue.
func (emitter *Emitter) Release() {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()

	if emitter.vibrator != nil {
		emitter.vibrator.Stop()
	}
	if emitter.opened {
		if err := emitter.backend.Close(); err != nil {
			logger.Debug("close audio backend", "error", err)
		}
	}
	emitter.opened = false
	emitter.audioOff = false
	emitter.hapticsOff = false
	emitter.generation++
	emitter.markDrainedLocked()
}

func (emitter *Emitter) playLocked(cue Cue, tones []Tone) {
	if !emitter.options.Sound || emitter.backend == nil || emitter.audioOff || len(tones) == 0 {
		return
	}
	if !emitter.opened {
		if err := emitter.backend.Open(); err != nil {
			emitter.audioOff = true
			logger.Warn("audio unavailable, continuing silently", "error", err)
			return
		}
		emitter.opened = true
	}

	if emitter.pending == 0 {
		emitter.drained = make(chan struct{})
	}
	emitter.pending++
	generation := emitter.generation
	if err := emitter.backend.Play(tones, func() { go emitter.toneDone(generation) }); err != nil {
		emitter.pending--
		if emitter.pending == 0 {
			close(emitter.drained)
		}
		logger.Debug("play cue", "cue", cue, "error", err)
	}
}

func (emitter *Emitter) vibrateLocked(cue Cue, pattern []time.Duration) {
	if !emitter.options.Haptics || emitter.vibrator == nil || emitter.hapticsOff || len(pattern) == 0 {
		return
	}
	if err := emitter.vibrator.Vibrate(pattern); err != nil {
		if errors.Is(err, ErrVibrationUnsupported) {
			emitter.hapticsOff = true
		}
		logger.Debug("vibrate cue", "cue", cue, "error", err)
	}
}

func (emitter *Emitter) toneDone(generation int) {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()
	if generation != emitter.generation || emitter.pending == 0 {
		return
	}
	emitter.pending--
	if emitter.pending == 0 {
		close(emitter.drained)
	}
}

func (emitter *Emitter) markDrainedLocked() {
	if emitter.pending > 0 {
		close(emitter.drained)
	}
	emitter.pending = 0
}
