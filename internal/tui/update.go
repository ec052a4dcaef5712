package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kegeltoday/internal/core/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Quit):
			if !m.finished {
				m.runner.Cancel()
				m.cancelled = true
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Enter):
			if m.finished {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case eventMsg:
		m.last = msg.event
		switch msg.event.Type {
		case session.EventStarted:
			m.started = true
		case session.EventFinished:
			m.finished = true
			if m.options.History != nil {
				m.history = m.options.History()
			}
		case session.EventCancelled:
			m.cancelled = true
		}
		return m, waitForEvent(m.events)

	case closedMsg:
		if m.finished {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func progressWidth(width int) int {
	const maxWidth = 48
	width -= 8
	if width > maxWidth {
		return maxWidth
	}
	if width < 10 {
		return 10
	}
	return width
}
