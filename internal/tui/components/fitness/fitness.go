package fitness

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackctl/internal/metrics"
	"trackctl/internal/models"
)

// AddWeightMsg requests the weight entry form.
type AddWeightMsg struct{}

// AddWaistMsg requests the waist entry form.
type AddWaistMsg struct{}

// AddPhotoMsg requests the progress photo form.
type AddPhotoMsg struct{}

// SetRangeMsg requests the date range filter form.
type SetRangeMsg struct{}

type KeyMap struct {
	Weight key.Binding
	Waist  key.Binding
	Photo  key.Binding
	Range  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Weight: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "log weight"),
		),
		Waist: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "log waist"),
		),
		Photo: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add photo"),
		),
		Range: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "date range"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	latestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	keys   KeyMap
	series []metrics.SeriesRow
	latest models.FitnessLatest
	photos []models.Photo
	width  int
	height int
}

func New(width, height int) Model {
	return Model{keys: DefaultKeyMap(), width: width, height: height}
}

// SetData replaces the rendered series and photo listing.
func (m *Model) SetData(series []metrics.SeriesRow, latest models.FitnessLatest, photos []models.Photo) {
	m.series = series
	m.latest = latest
	m.photos = photos
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Weight):
			return m, func() tea.Msg { return AddWeightMsg{} }
		case key.Matches(msg, m.keys.Waist):
			return m, func() tea.Msg { return AddWaistMsg{} }
		case key.Matches(msg, m.keys.Photo):
			return m, func() tea.Msg { return AddPhotoMsg{} }
		case key.Matches(msg, m.keys.Range):
			return m, func() tea.Msg { return SetRangeMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Fitness"))
	b.WriteString("\n\n")
	b.WriteString(latestStyle.Render(fmt.Sprintf("Latest: weight %s  waist %s",
		formatValue(m.latest.WeightLbs), formatValue(m.latest.BodyFatPct))))
	b.WriteString("\n\n")

	if len(m.series) == 0 {
		b.WriteString(dimStyle.Render("No measurements in range. Press 'w' or 's' to log one."))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("%-12s %10s %10s\n", "Day", "Weight", "Waist"))
		rows := m.series
		max := m.rowBudget()
		if len(rows) > max {
			rows = rows[len(rows)-max:]
		}
		for _, row := range rows {
			b.WriteString(fmt.Sprintf("%-12s %10s %10s\n",
				row.Day, formatValue(row.Weight), formatValue(row.Waist)))
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Progress photos"))
	b.WriteString("\n")
	if len(m.photos) == 0 {
		b.WriteString(dimStyle.Render("None yet. Press 'p' to upload."))
		b.WriteString("\n")
	} else {
		for _, p := range m.photos {
			b.WriteString(fmt.Sprintf("  %s  %s\n", p.Day, p.Filename))
		}
	}

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp keys surfaced in the app footer for this tab.
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Weight, m.keys.Waist, m.keys.Photo, m.keys.Range}
}

func (m Model) rowBudget() int {
	budget := m.height - 10 - len(m.photos)
	if budget < 5 {
		budget = 5
	}
	return budget
}

func formatValue(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *v)
}
