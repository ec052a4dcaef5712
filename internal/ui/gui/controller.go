package gui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"kegeltoday/internal/core/encourage"
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/core/session"
	"kegeltoday/internal/feedback"
	"kegeltoday/internal/logger"
	"kegeltoday/internal/storage"
	"kegeltoday/internal/ui/animation"
	"kegeltoday/internal/ui/coach"
	"kegeltoday/internal/ui/home"
	"kegeltoday/internal/ui/preferences"
	"kegeltoday/internal/ui/theme"
	"kegeltoday/internal/ui/tray"
	"kegeltoday/resources"
)

// ErrSessionRunning is returned when a session is started while one runs.
var ErrSessionRunning = errors.New("a session is already running")

const themeCheckInterval = time.Minute

// Config wires the desktop app to its stores.
type Config struct {
	ConfigDir string
	Settings  model.Settings
	KV        storage.KV
	Progress  *storage.ProgressStore
	Now       func() time.Time

	// Ticks and NewEmitter replace the real ticker and audio in tests.
	Ticks      <-chan time.Time
	NewEmitter func(model.Settings) session.Emitter
}

// Controller connects sessions, windows and the tray.
type Controller struct {
	app    fyne.App
	config Config

	home  *home.Window
	coach *coach.Window
	prefs *preferences.Window
	tray  *tray.Manager

	mu        sync.Mutex
	settings  model.Settings
	themeMode model.ThemeMode
	current   *session.Session
	stopTheme chan struct{}
}

// New builds every window. Nothing is shown until Run or Show.
func New(app fyne.App, config Config) *Controller {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.NewEmitter == nil {
		config.NewEmitter = newSpeakerEmitter
	}

	controller := &Controller{
		app:       app,
		config:    config,
		settings:  config.Settings,
		themeMode: storage.LoadThemeMode(config.KV),
		stopTheme: make(chan struct{}),
	}

	controller.home = home.New(app, home.Callbacks{
		OnStart: func() {
			if err := controller.StartSession(); err != nil {
				logger.Warn("start session", "error", err)
			}
		},
		OnPreferences:   controller.showPreferences,
		OnPresetChanged: controller.selectPreset,
	})
	controller.coach = coach.New(app, animation.DefaultConfig())
	controller.coach.SetOnStop(controller.StopSession)
	controller.coach.SetOnBackHome(controller.home.Show)
	controller.prefs = preferences.New(app, controller.settings, controller.themeMode, controller.saveSettings)

	if desktopApp, ok := app.(desktop.App); ok {
		controller.tray = tray.New(desktopApp, tray.Icons{
			Idle:   resources.MustIcon(resources.TrayIdle),
			Active: resources.MustIcon(resources.TrayActive),
			Done:   resources.MustIcon(resources.TrayDone),
		}, tray.Callbacks{
			OnStartSession: func() {
				if err := controller.StartSession(); err != nil {
					logger.Warn("start session from tray", "error", err)
				}
			},
			OnStopSession: controller.StopSession,
			OnShowHome:    controller.home.Show,
			OnPreferences: controller.showPreferences,
			OnQuit:        controller.Quit,
		})
	}

	controller.home.SetPreset(controller.settings.PresetID)
	controller.refreshProgress()
	theme.Apply(app, controller.themeMode, config.Now())
	return controller
}

// Run shows the home window and blocks until the app quits.
func (controller *Controller) Run() {
	controller.home.SetMaster()
	controller.home.Show()
	go controller.watchTheme()
	controller.app.Run()
	controller.Shutdown()
}

// Show brings the home window to the front.
func (controller *Controller) Show() {
	fyne.Do(controller.home.Show)
}

// StartSession starts a session with the configured rhythm.
func (controller *Controller) StartSession() error {
	controller.mu.Lock()
	if controller.current != nil {
		controller.mu.Unlock()
		return ErrSessionRunning
	}
	settings := controller.settings
	controller.mu.Unlock()

	config := settings.SessionConfig()
	current, err := session.New(config, session.Dependencies{
		Emitter:  controller.config.NewEmitter(settings),
		Recorder: controller.config.Progress,
		Selector: encourage.New(),
	}, session.Options{
		Ticks: controller.config.Ticks,
		Now:   controller.config.Now,
		OnComplete: func() {
			fyne.Do(controller.refreshProgress)
		},
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	controller.mu.Lock()
	if controller.current != nil {
		controller.mu.Unlock()
		return ErrSessionRunning
	}
	controller.current = current
	controller.mu.Unlock()

	events := current.Subscribe(16)
	controller.home.SetSessionRunning(true)
	if controller.tray != nil {
		controller.tray.SetSessionRunning(true)
	}
	controller.home.Hide()
	controller.coach.Show()

	go controller.forward(current, events)
	if err := current.Start(); err != nil {
		current.Cancel()
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// StopSession cancels the running session, if any.
func (controller *Controller) StopSession() {
	controller.mu.Lock()
	current := controller.current
	controller.mu.Unlock()
	if current == nil {
		return
	}
	current.Cancel()
}

// Current returns the running session or nil.
func (controller *Controller) Current() *session.Session {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.current
}

// Quit stops any session and closes the app.
func (controller *Controller) Quit() {
	controller.Shutdown()
	controller.app.Quit()
}

// Shutdown cancels the running session and stops background work.
func (controller *Controller) Shutdown() {
	controller.StopSession()
	controller.mu.Lock()
	defer controller.mu.Unlock()
	select {
	case <-controller.stopTheme:
	default:
		close(controller.stopTheme)
	}
}

func (controller *Controller) forward(current *session.Session, events <-chan session.Event) {
	for event := range events {
		controller.coach.Apply(event)
		if controller.tray != nil && event.Type != session.EventTick {
			status := trayStatus(event)
			fyne.Do(func() {
				controller.tray.SetStatus(status)
			})
		}
	}

	<-current.Done()
	controller.mu.Lock()
	if controller.current == current {
		controller.current = nil
	}
	controller.mu.Unlock()

	fyne.Do(func() {
		controller.home.SetSessionRunning(false)
		if controller.tray != nil {
			controller.tray.SetSessionRunning(false)
		}
		if !current.Completed() {
			controller.coach.Hide()
			controller.home.Show()
		}
		controller.refreshProgress()
	})
}

func (controller *Controller) refreshProgress() {
	completed := controller.config.Progress.ListCompletions()
	now := controller.config.Now()
	controller.home.Refresh(completed, now)
	if controller.tray != nil {
		done := controller.config.Progress.HasCompleted(storage.Today(now))
		if !done {
			controller.tray.SetStatus("not done today")
		}
		controller.tray.SetCompletedToday(done)
	}
}

func (controller *Controller) selectPreset(presetID string) {
	controller.mu.Lock()
	settings := controller.settings
	settings.PresetID = presetID
	settings.Custom = model.SessionConfig{}
	controller.mu.Unlock()

	controller.applySettings(settings)
	controller.prefs.UpdateSettings(settings, controller.currentThemeMode())
}

func (controller *Controller) saveSettings(settings model.Settings, mode model.ThemeMode) {
	controller.applySettings(settings)
	controller.home.SetPreset(settings.PresetID)

	controller.mu.Lock()
	controller.themeMode = mode
	controller.mu.Unlock()
	if err := storage.SaveThemeMode(controller.config.KV, mode); err != nil {
		logger.Warn("save theme mode", "error", err)
	}
	theme.Apply(controller.app, mode, controller.config.Now())
}

func (controller *Controller) applySettings(settings model.Settings) {
	controller.mu.Lock()
	controller.settings = settings
	current := controller.current
	controller.mu.Unlock()

	if err := storage.SaveSettings(controller.config.ConfigDir, settings); err != nil {
		logger.Warn("save settings", "error", err)
	}
	if current != nil {
		if err := current.UpdateConfig(settings.SessionConfig()); err != nil {
			logger.Warn("update running session", "error", err)
		}
	}
}

func (controller *Controller) currentThemeMode() model.ThemeMode {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.themeMode
}

func (controller *Controller) showPreferences() {
	controller.prefs.Show()
}

func (controller *Controller) watchTheme() {
	ticker := time.NewTicker(themeCheckInterval)
	defer ticker.Stop()

	dark := theme.IsDark(controller.currentThemeMode(), controller.config.Now())
	for {
		select {
		case <-controller.stopTheme:
			return
		case <-ticker.C:
			mode := controller.currentThemeMode()
			now := controller.config.Now()
			if isDark := theme.IsDark(mode, now); isDark != dark {
				dark = isDark
				fyne.Do(func() {
					theme.Apply(controller.app, mode, now)
				})
			}
		}
	}
}

func trayStatus(event session.Event) string {
	switch event.State.Phase {
	case session.PhaseReady:
		return "getting ready"
	case session.PhaseFinished:
		return "done today"
	default:
		return fmt.Sprintf("%s, rep %d of %d",
			coach.PhaseTitle(event.State.Phase), event.State.CurrentRep, event.Config.TotalReps)
	}
}

func newSpeakerEmitter(settings model.Settings) session.Emitter {
	return feedback.NewEmitter(feedback.NewSpeakerBackend(), feedback.NoVibrator{}, feedback.OptionsFromSettings(settings))
}
