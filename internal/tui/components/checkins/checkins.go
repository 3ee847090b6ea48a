package checkins

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"trackctl/internal/models"
)

// EditCheckInMsg requests the check-in form, prefilled from the selected day
// when one exists.
type EditCheckInMsg struct {
	Existing *models.CheckIn
}

type Item struct {
	CheckIn models.CheckIn
}

func (i Item) Title() string {
	flags := ""
	if i.CheckIn.Wakeup5AM {
		flags += " ☀"
	}
	if i.CheckIn.Workout {
		flags += " ⚡"
	}
	if i.CheckIn.VideoCaptured {
		flags += " ▶"
	}
	if flags == "" {
		flags = " (none)"
	}
	return i.CheckIn.Day + flags
}

func (i Item) Description() string {
	if i.CheckIn.Notes != "" {
		return i.CheckIn.Notes
	}
	return "no notes"
}

func (i Item) FilterValue() string { return i.CheckIn.Day }

type KeyMap struct {
	Edit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Check-ins"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit}
	}

	return Model{list: l, keys: keys}
}

// SetCheckIns replaces the listing, newest day first.
func (m *Model) SetCheckIns(checkins []models.CheckIn) {
	items := make([]list.Item, 0, len(checkins))
	for i := len(checkins) - 1; i >= 0; i-- {
		items = append(items, Item{CheckIn: checkins[i]})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Edit) {
			var existing *models.CheckIn
			if item, ok := m.list.SelectedItem().(Item); ok {
				c := item.CheckIn
				existing = &c
			}
			return m, func() tea.Msg { return EditCheckInMsg{Existing: existing} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No check-ins in range yet.\n\nPress 'e' to record today."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
