package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackctl/internal/models"
)

// EditMsg requests the settings form, prefilled from the current record.
type EditMsg struct {
	Existing *models.Settings
}

// ResetMsg requests the destructive data reset confirmation.
type ResetMsg struct{}

type KeyMap struct {
	Edit  key.Binding
	Reset key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit settings"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all data"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Model struct {
	keys     KeyMap
	settings *models.Settings
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

func (m *Model) SetSettings(s *models.Settings) {
	m.settings = s
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Edit):
			s := m.settings
			return m, func() tea.Msg { return EditMsg{Existing: s} }
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return ResetMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Settings"))
	b.WriteString("\n\n")

	if m.settings == nil {
		b.WriteString(dimStyle.Render("Not loaded."))
		b.WriteString("\n")
	} else {
		s := m.settings
		b.WriteString(fmt.Sprintf("Sender email:     %s\n", orUnset(s.SendgridSenderEmail)))
		b.WriteString(fmt.Sprintf("Recipient email:  %s\n", orUnset(s.ReminderRecipientEmail)))
		b.WriteString(fmt.Sprintf("Weekly review:    %s at %02d:00\n", s.WeeklyReviewDay, s.WeeklyReviewHourLocal))
		b.WriteString(fmt.Sprintf("Gift reminder:    day %d of each month\n", s.MonthlyGiftDay))
		b.WriteString(fmt.Sprintf("Email enabled:    %v\n", s.EmailEnabled))
		b.WriteString(dimStyle.Render("The SendGrid API key is write-only and never shown."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dangerStyle.Render("'R' wipes every record on the server."))
	b.WriteString("\n")

	return b.String()
}

// ShortHelp keys surfaced in the app footer for this tab.
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Edit, m.keys.Reset}
}

func orUnset(v string) string {
	if v == "" {
		return dimStyle.Render("(unset)")
	}
	return v
}
