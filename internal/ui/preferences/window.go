package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"kegeltoday/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	themeMode  model.ThemeMode
	onSave     func(model.Settings, model.ThemeMode)
	preset     *widget.Select
	work       *widget.Entry
	rest       *widget.Entry
	reps       *widget.Entry
	sound      *widget.Check
	haptics    *widget.Check
	ticks      *widget.Check
	theme      *widget.RadioGroup
	errorLabel *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, themeMode model.ThemeMode, onSave func(model.Settings, model.ThemeMode)) *Window {
	window := app.NewWindow("Kegel Today Settings")

	preset := widget.NewSelect(presetOptions(), nil)
	work := widget.NewEntry()
	work.SetPlaceHolder("sec")
	rest := widget.NewEntry()
	rest.SetPlaceHolder("sec")
	reps := widget.NewEntry()
	reps.SetPlaceHolder("reps")

	sound := widget.NewCheck("Sound cues", nil)
	haptics := widget.NewCheck("Vibration pulses", nil)
	ticks := widget.NewCheck("Countdown ticks before the first squeeze", nil)
	theme := widget.NewRadioGroup(themeOptions(), nil)

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Rhythm", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		preset,
		widget.NewLabel("Custom rhythm (leave empty to use the preset)"),
		container.NewGridWithColumns(3, work, rest, reps),
		widget.NewLabelWithStyle("Feedback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		haptics,
		ticks,
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		theme,
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 480))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		preset:     preset,
		work:       work,
		rest:       rest,
		reps:       reps,
		sound:      sound,
		haptics:    haptics,
		ticks:      ticks,
		theme:      theme,
		errorLabel: errorLabel,
	}
	prefs.UpdateSettings(settings, themeMode)

	sound.OnChanged = func(enabled bool) {
		prefs.setFeedbackEnabled(enabled)
	}
	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings, prefs.themeMode)
		window.Hide()
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings, themeMode model.ThemeMode) {
	prefs.settings = settings
	prefs.themeMode = themeMode

	if selected, ok := model.PresetByID(settings.PresetID); ok {
		prefs.preset.SetSelected(presetOption(selected))
	}
	prefs.work.SetText(formatCustom(settings.Custom.WorkSeconds))
	prefs.rest.SetText(formatCustom(settings.Custom.RestSeconds))
	prefs.reps.SetText(formatCustom(settings.Custom.TotalReps))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.haptics.SetChecked(settings.HapticsEnabled)
	prefs.ticks.SetChecked(settings.TickCues)
	prefs.setFeedbackEnabled(settings.SoundEnabled)
	prefs.theme.SetSelected(themeLabels[themeMode])
	prefs.errorLabel.Hide()
}

func (prefs *Window) setFeedbackEnabled(enabled bool) {
	if enabled {
		prefs.ticks.Enable()
		return
	}
	prefs.ticks.Disable()
}

func (prefs *Window) handleSave() {
	custom, err := parseCustom(prefs.work.Text, prefs.rest.Text, prefs.reps.Text)
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	settings := prefs.settings
	settings.PresetID = presetIDForOption(prefs.preset.Selected)
	settings.Custom = custom
	settings.SoundEnabled = prefs.sound.Checked
	settings.HapticsEnabled = prefs.haptics.Checked
	settings.TickCues = prefs.ticks.Checked
	themeMode := themeForOption(prefs.theme.Selected)

	prefs.settings = settings
	prefs.themeMode = themeMode
	prefs.errorLabel.Hide()
	if prefs.onSave != nil {
		prefs.onSave(settings, themeMode)
	}
	prefs.window.Hide()
}
