package feedback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	defaultSampleRate = beep.SampleRate(44100)
	defaultBuffer     = 100 * time.Millisecond
)

// speakerDevice is the process-wide output device. beep allows a single
// speaker.Init per process, so sessions suspend and resume it instead of
// closing it.
type speakerDevice struct {
	mu        sync.Mutex
	once      sync.Once
	initErr   error
	suspended bool

	init    func(sampleRate beep.SampleRate, bufferSize int) error
	resume  func() error
	suspend func() error
	clear   func()
	play    func(streamers ...beep.Streamer)
}

var defaultDevice = &speakerDevice{
	init:    speaker.Init,
	resume:  speaker.Resume,
	suspend: speaker.Suspend,
	clear:   speaker.Clear,
	play:    speaker.Play,
}

func (device *speakerDevice) acquire(sampleRate beep.SampleRate, bufferSize int) error {
	device.once.Do(func() {
		device.initErr = device.init(sampleRate, bufferSize)
	})
	if device.initErr != nil {
		return fmt.Errorf("init speaker: %w", device.initErr)
	}

	device.mu.Lock()
	defer device.mu.Unlock()
	if !device.suspended {
		return nil
	}
	if err := device.resume(); err != nil {
		return fmt.Errorf("resume speaker: %w", err)
	}
	device.suspended = false
	return nil
}

func (device *speakerDevice) release() error {
	device.mu.Lock()
	defer device.mu.Unlock()
	if device.initErr != nil || device.suspended {
		return nil
	}
	device.clear()
	if err := device.suspend(); err != nil {
		return fmt.Errorf("suspend speaker: %w", err)
	}
	device.suspended = true
	return nil
}

// SpeakerBackend plays tones through the system audio device.
type SpeakerBackend struct {
	device     *speakerDevice
	sampleRate beep.SampleRate
	buffer     time.Duration
}

// NewSpeakerBackend returns a backend using the default output device.
func NewSpeakerBackend() *SpeakerBackend {
	return newSpeakerBackend(defaultDevice)
}

func newSpeakerBackend(device *speakerDevice) *SpeakerBackend {
	return &SpeakerBackend{
		device:     device,
		sampleRate: defaultSampleRate,
		buffer:     defaultBuffer,
	}
}

// Open initializes the speaker on first use and resumes it afterwards.
func (backend *SpeakerBackend) Open() error {
	return backend.device.acquire(backend.sampleRate, backend.sampleRate.N(backend.buffer))
}

// Play queues the tones on the speaker mixer.
func (backend *SpeakerBackend) Play(tones []Tone, done func()) error {
	streamers := make([]beep.Streamer, 0, len(tones)+1)
	for _, tone := range tones {
		streamer, err := backend.toneStreamer(tone)
		if err != nil {
			return err
		}
		streamers = append(streamers, streamer)
	}
	streamers = append(streamers, beep.Callback(done))
	backend.device.play(beep.Seq(streamers...))
	return nil
}

// Close drops queued tones and suspends the audio device.
func (backend *SpeakerBackend) Close() error {
	return backend.device.release()
}

func (backend *SpeakerBackend) toneStreamer(tone Tone) (beep.Streamer, error) {
	samples := backend.sampleRate.N(tone.Duration)
	if tone.Frequency <= 0 {
		return beep.Silence(samples), nil
	}
	sine, err := generators.SineTone(backend.sampleRate, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0f Hz: %w", tone.Frequency, err)
	}
	return &envelope{
		streamer: beep.Take(samples, sine),
		total:    samples,
		attack:   backend.sampleRate.N(tone.Attack),
		release:  backend.sampleRate.N(tone.Release),
		gain:     tone.Gain,
	}, nil
}

// envelope applies a linear attack/release ramp to a finite streamer.
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	gain     float64
	position int
}

func (env *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := env.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := env.gainAt(env.position)
		samples[i][0] *= gain
		samples[i][1] *= gain
		env.position++
	}
	return n, ok
}

func (env *envelope) Err() error {
	return env.streamer.Err()
}

func (env *envelope) gainAt(position int) float64 {
	scale := 1.0
	if env.attack > 0 && position < env.attack {
		scale = float64(position) / float64(env.attack)
	}
	if remaining := env.total - position; env.release > 0 && remaining < env.release {
		tail := float64(remaining) / float64(env.release)
		if tail < scale {
			scale = tail
		}
	}
	if scale < 0 {
		scale = 0
	}
	return env.gain * scale
}
