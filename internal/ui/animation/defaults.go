package animation

import "time"

// DefaultConfig returns the breathing circle timings.
func DefaultConfig() Config {
	return Config{
		Duration:      500 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		RestScale:     1,
		SqueezeScale:  0.7,
		RelaxScale:    1.1,
	}
}
