package session

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/feedback"
	"kegeltoday/internal/logger"
)

var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrEnded is returned when starting a finished or cancelled session.
	ErrEnded = errors.New("session ended")
)

// finishFlushTimeout bounds how long the finish chime keeps the audio device open.
const finishFlushTimeout = 2 * time.Second

// Emitter plays feedback cues. It owns a scoped audio resource.
type Emitter interface {
	Emit(cue feedback.Cue)
	Flush(timeout time.Duration) bool
	Release()
}

// Recorder persists completed days.
type Recorder interface {
	RecordCompletion(day string) error
}

// Selector supplies encouragement and benefit lines.
type Selector interface {
	PickEncouragement() string
	PickBenefit() string
}

// Dependencies are the collaborators a session calls back into.
// Nil fields are replaced by no-op implementations.
type Dependencies struct {
	Emitter  Emitter
	Recorder Recorder
	Selector Selector
}

// Options contains runtime options for a Session.
type Options struct {
	TickInterval time.Duration
	// Ticks replaces the internal ticker when set.
	Ticks <-chan time.Time
	Now   func() time.Time
	// OnComplete is called once when the session reaches finished.
	OnComplete func()
}

// Session drives one guided run through the phase state machine.
type Session struct {
	mu        sync.Mutex
	id        string
	config    model.SessionConfig
	options   Options
	deps      Dependencies
	state     State
	benefit   string
	events    []chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	running   bool
	ended     bool
	completed bool
	closed    bool
	log       *log.Logger
}

// New creates a session in the ready phase. It fails for invalid configs.
func New(config model.SessionConfig, deps Dependencies, options Options) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if deps.Emitter == nil {
		deps.Emitter = nopEmitter{}
	}
	if deps.Recorder == nil {
		deps.Recorder = nopRecorder{}
	}
	if deps.Selector == nil {
		deps.Selector = nopSelector{}
	}

	id := uuid.NewString()
	return &Session{
		id:      id,
		config:  config,
		options: options,
		deps:    deps,
		state:   InitialState(),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		log:     logger.With("session", id),
	}, nil
}

// ID returns the unique session id.
func (session *Session) ID() string {
	return session.id
}

// Subscribe registers a new observer channel. It is closed when the session ends.
func (session *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		close(ch)
		return ch
	}
	session.events = append(session.events, ch)
	return ch
}

// Start launches the ticking loop.
func (session *Session) Start() error {
	session.mu.Lock()
	if session.ended {
		session.mu.Unlock()
		return ErrEnded
	}
	if session.started {
		session.mu.Unlock()
		return ErrAlreadyStarted
	}
	session.started = true
	session.running = true
	session.publishLocked(session.eventLocked(EventStarted, session.options.Now()))
	config := session.config
	session.mu.Unlock()

	session.log.Info("session started", "work", config.WorkSeconds, "rest", config.RestSeconds, "reps", config.TotalReps)
	go session.run()
	return nil
}

// Cancel stops the session without recording a completion. When it returns
// no further tick is processed and the emitter has been released. A finished
// session is left as is, but Cancel still waits for its shutdown.
// It must not be called from OnComplete.
func (session *Session) Cancel() {
	session.mu.Lock()
	if session.ended {
		session.mu.Unlock()
		<-session.doneCh
		return
	}
	session.ended = true
	if !session.running {
		session.publishLocked(session.eventLocked(EventCancelled, session.options.Now()))
		session.closeSubscribersLocked()
		close(session.doneCh)
		session.mu.Unlock()
		session.deps.Emitter.Release()
		session.log.Info("session discarded before start")
		return
	}
	session.running = false
	close(session.stopCh)
	session.mu.Unlock()

	<-session.doneCh
}

// UpdateConfig swaps the config used at the next phase boundary.
// A rep count below the current rep is raised to it.
func (session *Session) UpdateConfig(config model.SessionConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if config.TotalReps < session.state.CurrentRep {
		config.TotalReps = session.state.CurrentRep
	}
	session.config = config
	return nil
}

// Snapshot returns the current state and config.
func (session *Session) Snapshot() (State, model.SessionConfig) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state, session.config
}

// Done is closed once the session has finished or been cancelled and all
// resources are released.
func (session *Session) Done() <-chan struct{} {
	return session.doneCh
}

// Completed reports whether the session reached the finished phase.
func (session *Session) Completed() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.completed
}

func (session *Session) run() {
	ticks, stop := session.tickSource()
	defer session.shutdown(stop)

	for {
		select {
		case <-session.stopCh:
			return
		case tickTime := <-ticks:
			if session.tick(tickTime) {
				return
			}
		}
	}
}

func (session *Session) tickSource() (<-chan time.Time, func()) {
	if session.options.Ticks != nil {
		return session.options.Ticks, func() {}
	}
	ticker := time.NewTicker(session.options.TickInterval)
	return ticker.C, ticker.Stop
}

// tick runs one step and its effects. It reports whether the loop must exit.
func (session *Session) tick(tickTime time.Time) bool {
	session.mu.Lock()
	if !session.running {
		session.mu.Unlock()
		return true
	}
	previous := session.state
	next, effects := Step(session.state, session.config)
	session.state = next
	finished := next.Phase == PhaseFinished
	if finished {
		session.running = false
		session.ended = true
		session.completed = true
	}
	session.mu.Unlock()

	complete := session.apply(effects)

	eventType := EventTick
	switch {
	case finished:
		eventType = EventFinished
	case next.Phase != previous.Phase:
		eventType = EventPhaseChange
	}
	session.mu.Lock()
	session.publishLocked(session.eventLocked(eventType, tickTime))
	session.mu.Unlock()

	if complete {
		session.log.Info("session finished")
		if session.options.OnComplete != nil {
			session.options.OnComplete()
		}
	}
	return finished
}

// apply executes effects in order. Failures are logged and never undo the step.
func (session *Session) apply(effects []Effect) bool {
	complete := false
	for _, effect := range effects {
		switch effect.Kind {
		case EffectCue:
			session.deps.Emitter.Emit(effect.Cue)
		case EffectEncourage:
			line := session.deps.Selector.PickEncouragement()
			session.mu.Lock()
			session.state.Encouragement = line
			session.mu.Unlock()
		case EffectRecordCompletion:
			day := model.DayID(session.options.Now())
			if err := session.deps.Recorder.RecordCompletion(day); err != nil {
				session.log.Warn("record completion failed", "day", day, "error", err)
			}
		case EffectBenefit:
			benefit := session.deps.Selector.PickBenefit()
			session.mu.Lock()
			session.benefit = benefit
			session.mu.Unlock()
		case EffectComplete:
			complete = true
		}
	}
	return complete
}

func (session *Session) shutdown(stopTicks func()) {
	stopTicks()

	session.mu.Lock()
	completed := session.completed
	session.mu.Unlock()

	if completed {
		session.deps.Emitter.Flush(finishFlushTimeout)
	}
	session.deps.Emitter.Release()

	session.mu.Lock()
	if !completed {
		session.publishLocked(session.eventLocked(EventCancelled, session.options.Now()))
		session.log.Info("session cancelled", "phase", session.state.Phase, "rep", session.state.CurrentRep)
	}
	session.closeSubscribersLocked()
	session.mu.Unlock()

	close(session.doneCh)
}

func (session *Session) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:      eventType,
		SessionID: session.id,
		State:     session.state,
		Config:    session.config,
		Benefit:   session.benefit,
		At:        at,
	}
}

func (session *Session) publishLocked(event Event) {
	for _, ch := range session.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (session *Session) closeSubscribersLocked() {
	for _, ch := range session.events {
		close(ch)
	}
	session.events = nil
	session.closed = true
}

type nopEmitter struct{}

func (nopEmitter) Emit(feedback.Cue)        {}
func (nopEmitter) Flush(time.Duration) bool { return true }
func (nopEmitter) Release()                 {}

type nopRecorder struct{}

func (nopRecorder) RecordCompletion(string) error { return nil }

type nopSelector struct{}

func (nopSelector) PickEncouragement() string { return "" }
func (nopSelector) PickBenefit() string       { return "" }
