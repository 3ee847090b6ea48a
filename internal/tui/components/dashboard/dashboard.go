package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"trackctl/internal/metrics"
	"trackctl/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	kpiBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(1)

	kpiLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	kpiValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	warningBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Bold(true)

	infoBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)
)

type Model struct {
	summary         *models.Summary
	review          *models.WeeklyReview
	mortgageSummary *models.MortgageSummary
	bar             progress.Model
	width           int
	height          int
}

func New(width, height int) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return Model{bar: bar, width: width, height: height}
}

func (m *Model) SetData(summary *models.Summary, review *models.WeeklyReview, ms *models.MortgageSummary) {
	m.summary = summary
	m.review = review
	m.mortgageSummary = ms
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	if m.summary == nil {
		return "No data yet. Press 'r' to refresh."
	}

	var sections []string

	// Fixed four-slot KPI row
	kpis := metrics.TopKPIs(m.summary, m.mortgageSummary)
	boxes := make([]string, 0, len(kpis))
	for _, k := range kpis {
		boxes = append(boxes, kpiBoxStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				kpiLabelStyle.Render(k.Label),
				kpiValueStyle.Render(k.Value),
			),
		))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))

	// Mortgage progress
	if m.mortgageSummary != nil {
		ratio := metrics.MortgageProgress(m.mortgageSummary)
		paid := humanize.CommafWithDigits(m.mortgageSummary.PaidExtraYTD, 0)
		sections = append(sections, sectionStyle.Render(
			titleStyle.Render("Mortgage paydown")+"\n"+
				m.bar.ViewAs(ratio)+"\n"+
				fmt.Sprintf("$%s extra principal this year", paid),
		))
	}

	// Weekly scorecard
	if m.review != nil {
		score, total := metrics.WeeklyScore(m.review)
		sections = append(sections, sectionStyle.Render(
			titleStyle.Render("This week")+"\n"+
				fmt.Sprintf("%d/%d rules met (%s to %s)", score, total, m.review.WeekStart, m.review.WeekEnd)+"\n"+
				scoreLine("4+ early wakeups", m.review.WakeupsGE4)+"\n"+
				scoreLine("5 workouts", m.review.WorkoutsCompleted5)+"\n"+
				scoreLine("1+ video captured", m.review.CapturedAtLeast1Video)+"\n"+
				scoreLine("Mortgage action", m.review.MortgageActionTaken)+"\n"+
				scoreLine("Relationship action", m.review.RelationshipActionTaken),
		))
	}

	// Reminder badges, server order, capped
	badges := metrics.ReminderBadges(m.summary.Reminders)
	if len(badges) > 0 {
		lines := make([]string, 0, len(badges)+1)
		lines = append(lines, titleStyle.Render("Reminders"))
		for _, b := range badges {
			line := fmt.Sprintf("[%s] %s", b.Area, b.Message)
			if b.Warning {
				lines = append(lines, warningBadgeStyle.Render("! "+line))
			} else {
				lines = append(lines, infoBadgeStyle.Render("· "+line))
			}
		}
		sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func scoreLine(label string, ok bool) string {
	if ok {
		return "  ✓ " + label
	}
	return "  ○ " + label
}
