package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// DashboardModel shows the member's spending overview for the current month.
type DashboardModel struct {
	CommonModel
	svc    *analytics.Service
	member household.Member

	spinner   spinner.Model
	loading   bool
	dashboard *analytics.Dashboard
	err       error
}

func NewDashboardModel(svc *analytics.Service, member household.Member) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return DashboardModel{svc: svc, member: member, spinner: s, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading = false
		m.dashboard = msg.dashboard
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
	}

	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render(m.spinner.View() + " Loading dashboard...")
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	d := m.dashboard

	totals := fmt.Sprintf(
		"Today %s   This week %s   This month %s   (%+.1f%% vs last month)",
		FormatAmount(d.Today), FormatAmount(d.Week), FormatAmount(d.Month), d.Comparison.Change,
	)
	incomeLine := fmt.Sprintf(
		"Income %s   Net %s   Daily average %s",
		FormatAmount(d.Income.Total), FormatAmount(d.Net), FormatAmount(d.Series.DailyAverage),
	)

	left := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("%s, %s", d.Member, d.AsOf.Format("Monday 2 January 2006"))),
		"",
		totals,
		incomeLine,
		"",
		headerStyle.Render("By category"),
		m.breakdownView(),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Upcoming payments"),
		m.upcomingView(),
		"",
		headerStyle.Render("Goals"),
		m.goalsView(),
	)

	panel := lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63"))

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, panel.Render(left), panel.Render(right)))
}

func (m DashboardModel) breakdownView() string {
	if len(m.dashboard.Breakdown.Categories) == 0 {
		return faintStyle.Render("No spending yet this month.")
	}

	var b strings.Builder
	for _, c := range m.dashboard.Breakdown.Categories {
		fmt.Fprintf(&b, "%-18s %10s %5.1f%% %s\n", c.Category, FormatAmount(c.Total), c.Percentage, bar(c.Percentage, 20))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) upcomingView() string {
	if len(m.dashboard.Upcoming) == 0 {
		return faintStyle.Render("Nothing scheduled.")
	}

	var b strings.Builder
	for i, u := range m.dashboard.Upcoming {
		if i == 8 {
			fmt.Fprintf(&b, "... and %d more\n", len(m.dashboard.Upcoming)-i)
			break
		}

		when := fmt.Sprintf("in %d days", u.DaysUntil)

		switch {
		case u.Overdue && u.DaysUntil < 0:
			when = errorStyle.Render(fmt.Sprintf("%d days overdue", -u.DaysUntil))
		case u.Overdue:
			when = errorStyle.Render("due today")
		}

		fmt.Fprintf(&b, "%-20s %10s  %s\n", u.Payment.Description, FormatAmount(u.Payment.Amount), when)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) goalsView() string {
	if len(m.dashboard.Goals) == 0 {
		return faintStyle.Render("No goals set.")
	}

	var b strings.Builder
	for _, g := range m.dashboard.Goals {
		status := ""

		switch {
		case g.Exceeded:
			status = errorStyle.Render(" over budget")
		case g.Achieved:
			status = successStyle.Render(" achieved")
		}

		fmt.Fprintf(&b, "%-18s %s %5.1f%%%s\n", g.Name, bar(g.Percent, 15), g.Percent, status)
	}

	return strings.TrimRight(b.String(), "\n")
}

// bar renders percent (0-100) as a bar of width cells.
func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))

	return activeStyle(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
}

type dashboardMsg struct {
	dashboard *analytics.Dashboard
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.svc.Dashboard(ctx, m.member, time.Now())

		return dashboardMsg{dashboard: d, err: err}
	}
}
