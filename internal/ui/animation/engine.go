package animation

import (
	"context"
	"math"
	"sync"
	"time"

	"kegeltoday/internal/core/session"
)

// Config contains animation timing values.
type Config struct {
	Duration      time.Duration
	FrameInterval time.Duration

	RestScale    float32
	SqueezeScale float32
	RelaxScale   float32
}

// ScaleFor returns the target circle scale for a session phase.
func (config Config) ScaleFor(phase session.Phase) float32 {
	switch phase {
	case session.PhaseWork:
		return config.SqueezeScale
	case session.PhaseRest:
		return config.RelaxScale
	default:
		return config.RestScale
	}
}

// Engine eases the breathing circle between scales.
type Engine struct {
	mu       sync.Mutex
	config   Config
	apply    func(scale float32)
	current  float32
	target   float32
	cancel   context.CancelFunc
	finished chan struct{}
}

// New creates a new animation engine. apply receives every frame's scale.
func New(config Config, apply func(scale float32)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = 16 * time.Millisecond
	}
	return &Engine{
		config:  config,
		apply:   apply,
		current: config.RestScale,
		target:  config.RestScale,
	}
}

// AnimatePhase eases towards the scale of phase.
func (engine *Engine) AnimatePhase(ctx context.Context, phase session.Phase) {
	engine.AnimateTo(ctx, engine.config.ScaleFor(phase))
}

// AnimateTo eases from the current scale to target, replacing any running
// animation. A target equal to the current destination is ignored.
func (engine *Engine) AnimateTo(ctx context.Context, target float32) {
	engine.mu.Lock()
	if target == engine.target && engine.cancel != nil {
		engine.mu.Unlock()
		return
	}
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.target = target
	from := engine.current
	finished := make(chan struct{})
	engine.finished = finished
	engine.mu.Unlock()

	go func() {
		defer close(finished)
		engine.run(runCtx, from, target)
	}()
}

// Current returns the last applied scale.
func (engine *Engine) Current() float32 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.current
}

// Wait blocks until the latest animation ends.
func (engine *Engine) Wait() {
	engine.mu.Lock()
	finished := engine.finished
	engine.mu.Unlock()
	if finished != nil {
		<-finished
	}
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, from, to float32) {
	if engine.config.Duration <= 0 {
		engine.set(ctx, to)
		return
	}

	start := time.Now()
	for {
		progress := float64(time.Since(start)) / float64(engine.config.Duration)
		if progress >= 1 {
			engine.set(ctx, to)
			return
		}
		if !engine.set(ctx, Interpolate(from, to, EaseInOut(progress))) {
			return
		}
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
	}
}

func (engine *Engine) set(ctx context.Context, scale float32) bool {
	engine.mu.Lock()
	if ctx.Err() != nil {
		engine.mu.Unlock()
		return false
	}
	engine.current = scale
	engine.mu.Unlock()

	if engine.apply != nil {
		engine.apply(scale)
	}
	return true
}

// EaseInOut maps linear progress in [0,1] to a sine ease-in-out curve.
func EaseInOut(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return -(math.Cos(math.Pi*progress) - 1) / 2
}

// Interpolate returns the value between from and to at progress.
func Interpolate(from, to float32, progress float64) float32 {
	return from + (to-from)*float32(progress)
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
