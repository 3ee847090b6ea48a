package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackctl/internal/constants"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabRow())
	b.WriteString("\n")
	b.WriteString(m.banner())
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View())
	} else {
		b.WriteString(m.contentView())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) tabRow() string {
	active := m.tab
	if m.form != nil {
		active = m.prevTab
	}
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if constants.SessionState(i) == active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// banner is the single status line: the current error wins, then a loading
// indicator, then nothing.
func (m Model) banner() string {
	if msg := m.state.ErrMsg; msg != "" {
		return errorBannerStyle.Render(msg)
	}
	if m.state.Loading() {
		return loadingStyle.Render("Refreshing…")
	}
	return ""
}

func (m Model) contentView() string {
	switch m.tab {
	case constants.StateDashboard:
		return m.dashboard.View()
	case constants.StateCheckIn:
		return m.checkins.View()
	case constants.StateFitness:
		return m.fitness.View()
	case constants.StateMortgage:
		return m.mortgage.View()
	case constants.StateRelationship:
		return m.relationship.View()
	case constants.StateSettings:
		return m.settings.View()
	}
	return ""
}
