package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"kegeltoday/internal/core/session"
)

type eventMsg struct {
	event session.Event
}

type closedMsg struct{}

type errMsg struct {
	err error
}

// Options configures the session screen.
type Options struct {
	Dark bool
	// History returns the completed days shown after a finished session.
	History func() []string
	Now     func() time.Time
}

// Model is the bubbletea model for one guided session.
type Model struct {
	runner   *session.Session
	events   <-chan session.Event
	options  Options
	keys     KeyMap
	help     help.Model
	progress progress.Model
	styles   Styles

	last      session.Event
	started   bool
	finished  bool
	cancelled bool
	quitting  bool
	err       error
	history   []string
	width     int
}

// NewModel subscribes to runner. Init starts it.
func NewModel(runner *session.Session, options Options) Model {
	if options.Now == nil {
		options.Now = time.Now
	}
	styles := NewStyles(options.Dark)
	state, config := runner.Snapshot()
	return Model{
		runner:   runner,
		events:   runner.Subscribe(16),
		options:  options,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithGradient(styles.GradientStart, styles.GradientEnd)),
		styles:   styles,
		last:     session.Event{Type: session.EventStarted, State: state, Config: config},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(startSession(m.runner), waitForEvent(m.events))
}

// Finished reports whether the session reached the end.
func (m Model) Finished() bool {
	return m.finished
}

// Err returns the error that ended the screen, if any.
func (m Model) Err() error {
	return m.err
}

func startSession(runner *session.Session) tea.Cmd {
	return func() tea.Msg {
		if err := runner.Start(); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func waitForEvent(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg{event: event}
	}
}
