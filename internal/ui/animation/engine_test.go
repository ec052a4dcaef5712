package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kegeltoday/internal/core/session"
)

func TestScaleFor(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, float32(0.7), config.ScaleFor(session.PhaseWork))
	assert.Equal(t, float32(1.1), config.ScaleFor(session.PhaseRest))
	assert.Equal(t, float32(1), config.ScaleFor(session.PhaseReady))
	assert.Equal(t, float32(1), config.ScaleFor(session.PhaseFinished))
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(-1))
	assert.Equal(t, 1.0, EaseInOut(2))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
	assert.Less(t, EaseInOut(0.25), 0.25)
	assert.Greater(t, EaseInOut(0.75), 0.75)
}

func TestInterpolate(t *testing.T) {
	assert.InDelta(t, 1.0, Interpolate(1, 0.7, 0), 1e-6)
	assert.InDelta(t, 0.85, Interpolate(1, 0.7, 0.5), 1e-6)
	assert.InDelta(t, 0.7, Interpolate(1, 0.7, 1), 1e-6)
}

func TestEngineReachesTarget(t *testing.T) {
	config := DefaultConfig()
	config.Duration = 20 * time.Millisecond
	config.FrameInterval = time.Millisecond

	var mu sync.Mutex
	var frames []float32
	engine := New(config, func(scale float32) {
		mu.Lock()
		frames = append(frames, scale)
		mu.Unlock()
	})

	engine.AnimatePhase(context.Background(), session.PhaseWork)
	engine.Wait()

	assert.Equal(t, float32(0.7), engine.Current())
	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, frames)
	assert.Equal(t, float32(0.7), frames[len(frames)-1])
	for _, frame := range frames {
		assert.GreaterOrEqual(t, frame, float32(0.7))
		assert.LessOrEqual(t, frame, float32(1))
	}
}

func TestEngineRetargetsFromCurrentScale(t *testing.T) {
	config := DefaultConfig()
	config.Duration = 0
	engine := New(config, nil)

	engine.AnimatePhase(context.Background(), session.PhaseWork)
	engine.Wait()
	assert.Equal(t, float32(0.7), engine.Current())

	engine.AnimatePhase(context.Background(), session.PhaseRest)
	engine.Wait()
	assert.Equal(t, float32(1.1), engine.Current())
}

func TestEngineStopHaltsAnimation(t *testing.T) {
	config := DefaultConfig()
	config.Duration = time.Hour
	config.FrameInterval = time.Millisecond
	engine := New(config, nil)

	engine.AnimateTo(context.Background(), 0.7)
	engine.Stop()
	engine.Wait()

	current := engine.Current()
	assert.GreaterOrEqual(t, current, float32(0.7))
	assert.LessOrEqual(t, current, float32(1))
}
