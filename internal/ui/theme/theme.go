package theme

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"kegeltoday/internal/core/model"
)

const (
	nightStartHour = 19
	nightEndHour   = 6
)

// IsDark reports whether mode resolves to dark colors at now.
// Auto mode is dark from 19:00 until 06:00 local time.
func IsDark(mode model.ThemeMode, now time.Time) bool {
	switch mode {
	case model.ThemeDark:
		return true
	case model.ThemeLight:
		return false
	default:
		hour := now.Local().Hour()
		return hour >= nightStartHour || hour < nightEndHour
	}
}

// Variant returns the fyne variant for mode at now.
func Variant(mode model.ThemeMode, now time.Time) fyne.ThemeVariant {
	if IsDark(mode, now) {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

// Accent is the brand pink used for the circle and completed days.
var Accent = color.NRGBA{R: 236, G: 72, B: 153, A: 255}

// Relax is the calm violet used during rest.
var Relax = color.NRGBA{R: 139, G: 92, B: 246, A: 255}

// Theme forces a variant on top of the default fyne theme.
type Theme struct {
	variant fyne.ThemeVariant
}

// New returns a theme fixed to variant.
func New(variant fyne.ThemeVariant) *Theme {
	return &Theme{variant: variant}
}

// Color implements fyne.Theme.
func (current *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == fynetheme.ColorNamePrimary {
		return Accent
	}
	return fynetheme.DefaultTheme().Color(name, current.variant)
}

// Font implements fyne.Theme.
func (current *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

// Icon implements fyne.Theme.
func (current *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

// Size implements fyne.Theme.
func (current *Theme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

// Apply sets the app theme for mode at now.
func Apply(app fyne.App, mode model.ThemeMode, now time.Time) {
	app.Settings().SetTheme(New(Variant(mode, now)))
}
