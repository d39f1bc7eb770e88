package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

// RecurringModel lists the household's recurring payments by due date and records payments.
type RecurringModel struct {
	CommonModel
	svc    *recurring.Service
	member household.Member

	table    table.Model
	upcoming []analytics.UpcomingPayment
	form     *huh.Form
	paying   *recurring.Payment

	loading bool
	err     error
	status  string
}

func NewRecurringModel(svc *recurring.Service, member household.Member) RecurringModel {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "When", Width: 14},
		{Title: "Owner", Width: 8},
		{Title: "Amount", Width: 10},
		{Title: "Every", Width: 8},
		{Title: "Description", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RecurringModel{svc: svc, member: member, table: t, loading: true}
}

func (m RecurringModel) Title() string { return "Recurring Payments" }

func (m RecurringModel) ShortHelp() string {
	if m.form != nil {
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back | p: mark paid | r: refresh"
}

func (m RecurringModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecurringModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recurringLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.upcoming = analytics.Upcoming(msg.payments, time.Now())
		m.refreshTable()

		return m, nil

	case markPaidMsg:
		m.form = nil
		m.paying = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, m.loadCmd()
		}

		m.status = fmt.Sprintf("Paid %q (%s), next due %s.",
			msg.result.Payment.Description, FormatAmount(msg.result.Expense.Amount), FormatDate(msg.result.Payment.NextDue))

		return m, m.loadCmd()
	}

	if m.form != nil {
		return m.updateAmount(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			return m.startPayment()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RecurringModel) startPayment() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.upcoming) {
		return m, nil
	}

	p := m.upcoming[idx].Payment
	if !p.VariableAmount {
		return m, m.markPaidCmd(p.ID, nil)
	}

	amount := FormatAmount(p.Amount)
	m.paying = p
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount paid for %s", p.Description)).
				Value(&amount).
				Validate(func(s string) error {
					_, err := money.Parse(s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)
	m.table.Blur()

	return m, m.form.Init()
}

func (m RecurringModel) updateAmount(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.paying = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	amount, err := money.Parse(m.form.GetString("amount"))
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	return m, m.markPaidCmd(m.paying.ID, &amount)
}

func (m RecurringModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading recurring payments...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var monthly int64
	for _, u := range m.upcoming {
		monthly += monthlyCost(u.Payment)
	}

	header := fmt.Sprintf("%d payments, about %s a month", len(m.upcoming), activeStyle(FormatAmount(monthly)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Mark Paid\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RecurringModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.upcoming))
	for _, u := range m.upcoming {
		when := fmt.Sprintf("in %d days", u.DaysUntil)

		switch {
		case u.DaysUntil < 0:
			when = fmt.Sprintf("%d days late", -u.DaysUntil)
		case u.DaysUntil == 0:
			when = "today"
		}

		amount := FormatAmount(u.Payment.Amount)
		if u.Payment.VariableAmount {
			amount = "~" + amount
		}

		rows = append(rows, table.Row{
			FormatDate(u.Payment.NextDue),
			when,
			string(u.Payment.Owner),
			amount,
			string(u.Payment.Frequency),
			u.Payment.Description,
		})
	}

	m.table.SetRows(rows)
}

// monthlyCost approximates what p costs per month.
func monthlyCost(p *recurring.Payment) int64 {
	switch p.Frequency {
	case recurring.Weekly:
		return p.Amount * 52 / 12
	case recurring.Yearly:
		return p.Amount / 12
	}

	return p.Amount
}

// Messages

type recurringLoadedMsg struct {
	payments []*recurring.Payment
	err      error
}

type markPaidMsg struct {
	result *recurring.MarkPaidResult
	err    error
}

func (m RecurringModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		list, err := m.svc.List(ctx, &m.member)

		return recurringLoadedMsg{payments: list, err: err}
	}
}

func (m RecurringModel) markPaidCmd(id uuid.UUID, amount *int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.MarkPaid(ctx, recurring.MarkPaidParams{
			ID:     id,
			PaidBy: m.member,
			Today:  time.Now(),
			Amount: amount,
		})

		return markPaidMsg{result: res, err: err}
	}
}
