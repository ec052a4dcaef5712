package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kegeltoday/internal/core/calendar"
	"kegeltoday/internal/core/session"
)

func (m Model) View() string {
	if m.quitting {
		if m.err != nil {
			return fmt.Sprintf("Error: %v\n", m.err)
		}
		if m.cancelled {
			return m.styles.Muted.Render("Session stopped. Nothing was recorded.") + "\n"
		}
		return ""
	}
	if m.finished {
		return m.finishedView()
	}
	return m.sessionView()
}

func (m Model) sessionView() string {
	state := m.last.State
	config := m.last.Config

	lines := []string{
		m.styles.Title.Render("Kegel Today"),
		"",
		m.phaseStyle(state.Phase).Render(PhaseTitle(state.Phase)),
		m.styles.Timer.Render(fmt.Sprintf("%ds", state.SecondsRemaining)),
		m.styles.Muted.Render(RepText(state, config.TotalReps)),
		"",
		m.progress.ViewAs(m.last.Progress()),
	}
	if state.Phase == session.PhaseRest && state.Encouragement != "" {
		lines = append(lines, "", m.styles.Encourage.Render(state.Encouragement))
	}

	body := m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return body + "\n" + m.help.View(m.keys) + "\n"
}

func (m Model) finishedView() string {
	lines := []string{
		m.styles.Success.Render("Awesome!"),
		"You completed your daily session",
	}
	if m.last.Benefit != "" {
		lines = append(lines, "", m.styles.Encourage.Render(m.last.Benefit))
	}
	if m.options.History != nil {
		month := calendar.Current(m.options.Now(), m.history)
		lines = append(lines, "", RenderMonth(month, m.styles))
	}

	body := m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return body + "\n" + m.styles.Muted.Render("enter: back home") + "\n"
}

func (m Model) phaseStyle(phase session.Phase) lipgloss.Style {
	switch phase {
	case session.PhaseWork:
		return m.styles.Work
	case session.PhaseRest:
		return m.styles.Rest
	default:
		return m.styles.Ready
	}
}

// PhaseTitle is the instruction shown for a phase.
func PhaseTitle(phase session.Phase) string {
	switch phase {
	case session.PhaseReady:
		return "GET READY"
	case session.PhaseWork:
		return "SQUEEZE"
	case session.PhaseRest:
		return "RELAX"
	case session.PhaseFinished:
		return "DONE"
	default:
		return strings.ToUpper(string(phase))
	}
}

// RepText describes the current repetition.
func RepText(state session.State, totalReps int) string {
	if state.Phase == session.PhaseReady {
		return fmt.Sprintf("%d reps ahead", totalReps)
	}
	return fmt.Sprintf("rep %d / %d", state.CurrentRep, totalReps)
}
