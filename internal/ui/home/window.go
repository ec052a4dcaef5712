package home

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	corecalendar "kegeltoday/internal/core/calendar"
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/ui/calendar"
)

// Callbacks defines home window actions.
type Callbacks struct {
	OnStart         func()
	OnPreferences   func()
	OnPresetChanged func(presetID string)
}

// Window is the main screen: rhythm choice, start button and calendar.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	presets     *widget.RadioGroup
	description *widget.Label
	status      *widget.Label
	streak      *widget.Label
	startButton *widget.Button
	calendar    *calendar.View
	labelToID   map[string]string
	idToLabel   map[string]string
}

// New creates the home window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Kegel Today")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	home := &Window{
		window:    window,
		callbacks: callbacks,
		labelToID: map[string]string{},
		idToLabel: map[string]string{},
		calendar:  calendar.New(),
	}

	labels := make([]string, 0, len(model.Presets))
	for _, preset := range model.Presets {
		labels = append(labels, preset.Label)
		home.labelToID[preset.Label] = preset.ID
		home.idToLabel[preset.ID] = preset.Label
	}

	home.description = widget.NewLabel("")
	home.description.Wrapping = fyne.TextWrapWord
	home.presets = widget.NewRadioGroup(labels, home.handlePresetChanged)
	home.presets.Horizontal = true
	home.presets.Required = true

	home.status = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	home.streak = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	home.startButton = widget.NewButton("Start session", func() {
		if home.callbacks.OnStart != nil {
			home.callbacks.OnStart()
		}
	})
	home.startButton.Importance = widget.HighImportance

	settingsButton := widget.NewButton("Settings", func() {
		if home.callbacks.OnPreferences != nil {
			home.callbacks.OnPreferences()
		}
	})

	header := container.NewVBox(
		widget.NewLabelWithStyle("Kegel Today", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		home.presets,
		home.description,
		home.startButton,
		home.status,
		home.streak,
	)
	window.SetContent(container.NewBorder(header, settingsButton, nil, nil, home.calendar.Object()))
	window.Resize(fyne.NewSize(380, 560))
	window.SetCloseIntercept(window.Hide)

	return home
}

// Show displays the home window.
func (home *Window) Show() {
	home.window.Show()
	home.window.RequestFocus()
}

// Hide hides the home window.
func (home *Window) Hide() {
	home.window.Hide()
}

// SetMaster makes closing this window quit the app.
func (home *Window) SetMaster() {
	home.window.SetMaster()
}

// SetPreset selects a preset without firing OnPresetChanged.
func (home *Window) SetPreset(presetID string) {
	label, ok := home.idToLabel[presetID]
	if !ok {
		label = home.idToLabel[model.DefaultPresetID]
	}
	changed := home.presets.OnChanged
	home.presets.OnChanged = nil
	home.presets.SetSelected(label)
	home.presets.OnChanged = changed
	home.showDescription(home.labelToID[label])
}

// SetSessionRunning disables the start button while a session runs.
func (home *Window) SetSessionRunning(running bool) {
	if running {
		home.startButton.Disable()
		return
	}
	home.startButton.Enable()
}

// Refresh redraws today's status, the streak and the calendar.
func (home *Window) Refresh(completed []string, now time.Time) {
	month := corecalendar.Current(now, completed)
	home.calendar.SetMonth(month)
	home.status.SetText(StatusText(completed, now))
	home.streak.SetText(StreakText(corecalendar.Streak(completed, now)))
}

func (home *Window) handlePresetChanged(label string) {
	presetID, ok := home.labelToID[label]
	if !ok {
		return
	}
	home.showDescription(presetID)
	if home.callbacks.OnPresetChanged != nil {
		home.callbacks.OnPresetChanged(presetID)
	}
}

func (home *Window) showDescription(presetID string) {
	preset, ok := model.PresetByID(presetID)
	if !ok {
		home.description.SetText("")
		return
	}
	config := preset.Config
	home.description.SetText(fmt.Sprintf("%s. Squeeze %ds, relax %ds, %d reps.",
		preset.Description, config.WorkSeconds, config.RestSeconds, config.TotalReps))
}

// StatusText tells whether today's session is done.
func StatusText(completed []string, now time.Time) string {
	today := model.DayID(now)
	for _, day := range completed {
		if day == today {
			return "Today's session is done"
		}
	}
	return "Not done yet today"
}

// StreakText describes a run of consecutive days.
func StreakText(streak int) string {
	switch streak {
	case 0:
		return "Start a streak today"
	case 1:
		return "1 day streak"
	default:
		return fmt.Sprintf("%d day streak", streak)
	}
}
