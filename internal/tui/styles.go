package tui

import "github.com/charmbracelet/lipgloss"

// Styles is a palette for one theme variant.
type Styles struct {
	Title     lipgloss.Style
	Work      lipgloss.Style
	Rest      lipgloss.Style
	Ready     lipgloss.Style
	Timer     lipgloss.Style
	Muted     lipgloss.Style
	Encourage lipgloss.Style
	Success   lipgloss.Style
	Box       lipgloss.Style
	Today     lipgloss.Style
	Stamp     lipgloss.Style
	Day       lipgloss.Style

	GradientStart string
	GradientEnd   string
}

// NewStyles returns the dark or light palette.
func NewStyles(dark bool) Styles {
	accent := lipgloss.Color("#db2777")
	relax := lipgloss.Color("#7c3aed")
	muted := lipgloss.Color("240")
	text := lipgloss.Color("235")
	if dark {
		accent = lipgloss.Color("#f472b6")
		relax = lipgloss.Color("#a78bfa")
		muted = lipgloss.Color("245")
		text = lipgloss.Color("252")
	}

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Work:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		Rest:      lipgloss.NewStyle().Foreground(relax).Bold(true),
		Ready:     lipgloss.NewStyle().Foreground(muted).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(text).Bold(true).Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Encourage: lipgloss.NewStyle().Foreground(relax).Italic(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3),
		Today: lipgloss.NewStyle().Foreground(relax).Bold(true).Underline(true),
		Stamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accent).Bold(true),
		Day:   lipgloss.NewStyle().Foreground(text),

		GradientStart: string(relax),
		GradientEnd:   string(accent),
	}
}
