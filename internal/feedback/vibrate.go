package feedback

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

// ErrVibrationUnsupported indicates the device has no haptic output.
var ErrVibrationUnsupported = errors.New("vibration unsupported")

// NoVibrator is used where no haptic output exists.
type NoVibrator struct{}

// Vibrate always reports that vibration is unsupported.
func (NoVibrator) Vibrate([]time.Duration) error {
	return ErrVibrationUnsupported
}

// Stop does nothing.
func (NoVibrator) Stop() {}

// BellVibrator approximates pulses with terminal bell characters.
type BellVibrator struct {
	mu     sync.Mutex
	out    io.Writer
	cancel context.CancelFunc
}

// NewBellVibrator writes bells to out, usually the terminal.
func NewBellVibrator(out io.Writer) *BellVibrator {
	return &BellVibrator{out: out}
}

// Vibrate rings once per pulse, replacing any pattern still playing.
func (vibrator *BellVibrator) Vibrate(pattern []time.Duration) error {
	if vibrator.out == nil {
		return ErrVibrationUnsupported
	}
	vibrator.mu.Lock()
	if vibrator.cancel != nil {
		vibrator.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	vibrator.cancel = cancel
	vibrator.mu.Unlock()

	go vibrator.run(ctx, pattern)
	return nil
}

// Stop interrupts the current pattern.
func (vibrator *BellVibrator) Stop() {
	vibrator.mu.Lock()
	defer vibrator.mu.Unlock()
	if vibrator.cancel != nil {
		vibrator.cancel()
		vibrator.cancel = nil
	}
}

func (vibrator *BellVibrator) run(ctx context.Context, pattern []time.Duration) {
	for index, duration := range pattern {
		if ctx.Err() != nil {
			return
		}
		if index%2 == 0 {
			vibrator.mu.Lock()
			_, _ = io.WriteString(vibrator.out, "\a")
			vibrator.mu.Unlock()
		}
		if !sleepWithContext(ctx, duration) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
