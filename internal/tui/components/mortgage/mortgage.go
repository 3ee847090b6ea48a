package mortgage

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"trackctl/internal/constants"
	"trackctl/internal/metrics"
	"trackctl/internal/models"
)

// AddPaymentMsg requests the extra principal payment form.
type AddPaymentMsg struct{}

// AddBalanceMsg requests the balance check form.
type AddBalanceMsg struct{}

// SetRangeMsg requests the date range filter form.
type SetRangeMsg struct{}

type Item struct {
	Event models.MortgageEvent
}

func (i Item) Title() string {
	label := "Balance check"
	if i.Event.Kind == constants.MortgageKindPayment {
		label = "Extra payment"
	}
	return fmt.Sprintf("%s  %s  $%s", i.Event.Day, label,
		humanize.CommafWithDigits(i.Event.Amount, 2))
}

func (i Item) Description() string {
	if i.Event.Note != "" {
		return i.Event.Note
	}
	return "no note"
}

func (i Item) FilterValue() string { return i.Event.Day + " " + i.Event.Note }

type KeyMap struct {
	Payment key.Binding
	Balance key.Binding
	Range   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Payment: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add payment"),
		),
		Balance: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "balance check"),
		),
		Range: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "date range"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	list     list.Model
	bar      progress.Model
	keys     KeyMap
	summary  *models.MortgageSummary
	barWidth int
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height-headerLines)
	l.Title = "Mortgage events"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Payment, keys.Balance, keys.Range}
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = barWidth(width)

	return Model{list: l, bar: bar, keys: keys, barWidth: bar.Width}
}

const headerLines = 6

func barWidth(width int) int {
	w := width - 4
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

// SetData replaces the summary header and the event listing, newest first.
func (m *Model) SetData(summary *models.MortgageSummary, events []models.MortgageEvent) {
	m.summary = summary
	items := make([]list.Item, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		items = append(items, Item{Event: events[i]})
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
		switch {
		case key.Matches(msg, m.keys.Payment):
			return m, func() tea.Msg { return AddPaymentMsg{} }
		case key.Matches(msg, m.keys.Balance):
			return m, func() tea.Msg { return AddBalanceMsg{} }
		case key.Matches(msg, m.keys.Range):
			return m, func() tea.Msg { return SetRangeMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.headerView()
	if len(m.list.Items()) == 0 {
		return header + dimStyle.Render("No events yet. Press 'p' or 'b' to record one.") + "\n"
	}
	return header + m.list.View()
}

func (m Model) headerView() string {
	ratio := metrics.MortgageProgress(m.summary)
	out := headerStyle.Render("Paydown progress") + "\n"
	out += m.bar.ViewAs(ratio) + "  " + metrics.FormatPercent(ratio) + "\n"
	if m.summary != nil {
		out += fmt.Sprintf("Paid extra YTD: $%s   this month: $%s\n",
			humanize.CommafWithDigits(m.summary.PaidExtraYTD, 2),
			humanize.CommafWithDigits(m.summary.PaidExtraMonth, 2))
		if m.summary.LatestPrincipalBalance != nil {
			out += fmt.Sprintf("Latest balance: $%s\n",
				humanize.CommafWithDigits(*m.summary.LatestPrincipalBalance, 2))
		} else {
			out += dimStyle.Render("No balance check recorded yet.") + "\n"
		}
	} else {
		out += dimStyle.Render("Summary not loaded.") + "\n"
	}
	return out + "\n"
}

func (m *Model) SetSize(width, height int) {
	m.bar.Width = barWidth(width)
	m.list.SetSize(width, height-headerLines)
}

// Filtering reports whether the list filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
