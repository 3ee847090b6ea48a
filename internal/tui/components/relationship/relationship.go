package relationship

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"trackctl/internal/models"
)

// EditTripMsg requests the trip form, prefilled from the current trip.
type EditTripMsg struct {
	Existing *models.Trip
}

// AddGiftMsg requests the gift entry form.
type AddGiftMsg struct{}

type KeyMap struct {
	EditTrip key.Binding
	AddGift  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		EditTrip: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit trip"),
		),
		AddGift: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "add gift"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

type Model struct {
	keys    KeyMap
	trip    *models.Trip
	history []models.TripHistoryEntry
	gifts   []models.Gift
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{keys: DefaultKeyMap(), width: width, height: height}
}

// SetData replaces the trip card, the gift listing, and the snapshot
// history shown under the card.
func (m *Model) SetData(trip *models.Trip, history []models.TripHistoryEntry, gifts []models.Gift) {
	m.trip = trip
	m.history = history
	m.gifts = gifts
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.EditTrip):
			trip := m.trip
			return m, func() tea.Msg { return EditTripMsg{Existing: trip} }
		case key.Matches(msg, m.keys.AddGift):
			return m, func() tea.Msg { return AddGiftMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Trip"))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(m.tripCard()))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Gifts this month"))
	b.WriteString("\n")
	if len(m.gifts) == 0 {
		b.WriteString(dimStyle.Render("None logged. Press 'g' to add one."))
		b.WriteString("\n")
	} else {
		for _, g := range m.gifts {
			b.WriteString(fmt.Sprintf("  %s  %s", g.Day, g.Description))
			if g.Amount > 0 {
				b.WriteString(fmt.Sprintf("  ($%s)", humanize.CommafWithDigits(g.Amount, 2)))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Trip history"))
	b.WriteString("\n")
	if len(m.history) == 0 {
		b.WriteString(dimStyle.Render("No snapshots yet. Saving the trip records one."))
		b.WriteString("\n")
	} else {
		shown := m.history
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, h := range shown {
			b.WriteString(fmt.Sprintf("  %s  %s\n", h.CreatedAt, snapshotLine(h.Snapshot)))
		}
		if len(m.history) > len(shown) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.history)-len(shown))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) tripCard() string {
	if m.trip == nil {
		return dimStyle.Render("No trip planned yet. Press 'e' to start one.")
	}
	t := m.trip
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Dates: %s\n", tripDates(t)))
	b.WriteString(fmt.Sprintf("Adults only: %s\n", checkbox(t.AdultsOnly)))
	b.WriteString(fmt.Sprintf("Lodging booked: %s\n", checkbox(t.LodgingBooked)))
	b.WriteString(fmt.Sprintf("Childcare confirmed: %s", checkbox(t.ChildcareConfirmed)))
	if t.Notes != "" {
		b.WriteString("\n" + dimStyle.Render(t.Notes))
	}
	return b.String()
}

func tripDates(t *models.Trip) string {
	switch {
	case t.StartDate != "" && t.EndDate != "":
		return t.StartDate + " to " + t.EndDate
	case t.StartDate != "":
		return "from " + t.StartDate
	case t.Dates != "":
		return t.Dates
	default:
		return "not set"
	}
}

func checkbox(v bool) string {
	if v {
		return doneStyle.Render("yes")
	}
	return "no"
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp keys surfaced in the app footer for this tab.
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.EditTrip, m.keys.AddGift}
}

func snapshotLine(t models.Trip) string {
	parts := []string{tripDates(&t)}
	if t.LodgingBooked {
		parts = append(parts, "lodging")
	}
	if t.ChildcareConfirmed {
		parts = append(parts, "childcare")
	}
	return strings.Join(parts, ", ")
}
