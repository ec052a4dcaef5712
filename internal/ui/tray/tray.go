package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray drives.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStartSession func()
	OnStopSession  func()
	OnShowHome     func()
	OnPreferences  func()
	OnQuit         func()
}

// Icons are the tray icons for each state.
type Icons struct {
	Idle   fyne.Resource
	Active fyne.Resource
	Done   fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app            App
	icons          Icons
	callbacks      Callbacks
	statusItem     *fyne.MenuItem
	sessionItem    *fyne.MenuItem
	statusLabel    string
	running        bool
	completedToday bool
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		icons:       icons,
		callbacks:   callbacks,
		statusLabel: "not done today",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.sessionItem = fyne.NewMenuItem("", manager.toggleSession)

	manager.refresh()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetSessionRunning switches the start item to stop while a session runs.
func (manager *Manager) SetSessionRunning(running bool) {
	manager.running = running
	manager.refresh()
}

// SetCompletedToday marks today's session as done.
func (manager *Manager) SetCompletedToday(completed bool) {
	manager.completedToday = completed
	if completed && !manager.running {
		manager.statusLabel = "done today"
	}
	manager.refresh()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("Kegel Today",
		manager.statusItem,
		manager.sessionItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open", func() { invoke(manager.callbacks.OnShowHome) }),
		fyne.NewMenuItem("Preferences", func() { invoke(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	)
}

func (manager *Manager) toggleSession() {
	if manager.running {
		invoke(manager.callbacks.OnStopSession)
		return
	}
	invoke(manager.callbacks.OnStartSession)
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	if manager.running {
		manager.sessionItem.Label = "Stop session"
	} else {
		manager.sessionItem.Label = "Start session"
	}

	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.Menu())
	manager.app.SetSystemTrayIcon(manager.icon())
}

func (manager *Manager) icon() fyne.Resource {
	switch {
	case manager.running:
		return manager.icons.Active
	case manager.completedToday:
		return manager.icons.Done
	default:
		return manager.icons.Idle
	}
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
