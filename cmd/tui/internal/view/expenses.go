package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/buxfer/internal/category"
	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

type expensesState int

const (
	expensesStateBrowse expensesState = iota
	expensesStateForm
	expensesStateConfirmDelete
)

var expenseTimeframes = []Timeframe{TimeframeThisMonth, TimeframeLastMonth, TimeframeThisWeek, TimeframeAll}

type ExpensesModel struct {
	CommonModel
	expenses   *expense.Service
	categories *category.Service
	household  *household.Household
	member     household.Member

	state    expensesState
	table    table.Model
	list     []*expense.Expense
	form     *huh.Form
	editing  *expense.Expense
	catNames []string

	timeframeIdx int
	mineOnly     bool

	loading bool
	err     error
	status  string

	// Form bindings
	formDesc     string
	formAmount   string
	formCategory string
	formDate     string
	formSplit    bool
	formDelete   bool
}

func NewExpensesModel(expenses *expense.Service, categories *category.Service, hh *household.Household, member household.Member) ExpensesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Who", Width: 8},
		{Title: "Amount", Width: 10},
		{Title: "Share", Width: 10},
		{Title: "Category", Width: 16},
		{Title: "Description", Width: 40},
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

	return ExpensesModel{
		expenses:   expenses,
		categories: categories,
		household:  hh,
		member:     member,
		table:      t,
		loading:    true,
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }

func (m ExpensesModel) ShortHelp() string {
	if m.state != expensesStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | e: edit | x: delete | d: timeframe | o: mine/all | r: refresh"
}

func (m ExpensesModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.loadCategoriesCmd())
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.list = msg.expenses
		m.refreshTable()

		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading categories: %v", msg.err)
			return m, nil
		}

		m.catNames = msg.names

		return m, nil

	case expenseSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.state = expensesStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Resize(msg)
		m.table.SetHeight(max(m.Height-7, 3))

		return m, nil
	}

	if m.state == expensesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m ExpensesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.openForm(nil)
		case "e":
			if e := m.selected(); e != nil {
				return m.openForm(e)
			}

			return m, nil
		case "x":
			return m.openDelete()
		case "d":
			m.timeframeIdx = (m.timeframeIdx + 1) % len(expenseTimeframes)
			return m, m.loadCmd()
		case "o":
			m.mineOnly = !m.mineOnly
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpensesModel) selected() *expense.Expense {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.list) {
		return nil
	}

	return m.list[idx]
}

// openForm edits e, or adds a new expense when e is nil.
func (m ExpensesModel) openForm(e *expense.Expense) (tea.Model, tea.Cmd) {
	m.editing = e
	m.formDesc, m.formAmount, m.formCategory = "", "", ""
	m.formDate = FormatDate(time.Now())
	m.formSplit = false

	if e != nil {
		m.formDesc = e.Description
		m.formAmount = FormatAmount(e.Amount)
		m.formCategory = e.Category
		m.formDate = FormatDate(e.Date)
		m.formSplit = e.IsSplit()
	}

	categories := huh.NewOptions(m.catNames...)
	categories = append([]huh.Option[string]{huh.NewOption("Auto-categorize", "")}, categories...)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := money.Parse(s)
					return err
				}),
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categories...).
				Value(&m.formCategory),
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := dates.Parse(s)
					return err
				}),
			huh.NewConfirm().
				Key("split").
				Title("Split in half with the household?").
				Value(&m.formSplit),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpensesModel) openDelete() (tea.Model, tea.Cmd) {
	e := m.selected()
	if e == nil {
		return m, nil
	}

	m.editing = e
	m.formDelete = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("delete").
				Title(fmt.Sprintf("Delete %q (%s)?", e.Description, FormatAmount(e.Amount))).
				Value(&m.formDelete),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpensesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = expensesStateBrowse
		m.form = nil
		m.editing = nil
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

	if m.state == expensesStateConfirmDelete {
		if !m.form.GetBool("delete") {
			return m, func() tea.Msg { return expenseSavedMsg{} }
		}

		return m, m.deleteCmd(m.editing)
	}

	return m, m.saveCmd()
}

func (m ExpensesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	who := "Household"
	if m.mineOnly {
		who = string(m.member)
	}

	var total int64
	for _, e := range m.list {
		total += e.Share()
	}

	header := fmt.Sprintf(
		"[d] %s | [o] %s | %d expenses, total %s",
		activeStyle(expenseTimeframes[m.timeframeIdx].String()),
		activeStyle(who),
		len(m.list),
		FormatAmount(total),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != expensesStateBrowse && m.form != nil {
		title := "Add Expense"
		if m.editing != nil {
			title = "Edit Expense"
		}

		if m.state == expensesStateConfirmDelete {
			title = "Delete Expense"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ExpensesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.list))
	for _, e := range m.list {
		rows = append(rows, table.Row{
			FormatDate(e.Date),
			string(e.Owner),
			FormatAmount(e.Amount),
			FormatAmount(e.Share()),
			e.Category,
			e.Description,
		})
	}

	m.table.SetRows(rows)
}

func (m ExpensesModel) filter() expense.ListFilter {
	var filter expense.ListFilter

	if m.mineOnly {
		filter.Owner = new(m.member)
	}

	w := expenseTimeframes[m.timeframeIdx].Window(time.Now())
	if !w.IsAllTime() {
		filter.StartDate = new(w.Start)
		filter.EndDate = new(w.End)
	}

	return filter
}

// Messages

type expensesLoadedMsg struct {
	expenses []*expense.Expense
	err      error
}

type categoriesLoadedMsg struct {
	names []string
	err   error
}

type expenseSavedMsg struct {
	status string
	err    error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		list, err := m.expenses.List(ctx, filter)

		return expensesLoadedMsg{expenses: list, err: err}
	}
}

func (m ExpensesModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		list, err := m.categories.ListCategories(ctx)
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}

		names := make([]string, len(list))
		for i, c := range list {
			names[i] = c.Name
		}

		return categoriesLoadedMsg{names: names}
	}
}

func (m ExpensesModel) saveCmd() tea.Cmd {
	desc := m.form.GetString("description")
	amountStr := m.form.GetString("amount")
	cat := m.form.GetString("category")
	dateStr := m.form.GetString("date")
	split := m.form.GetBool("split")
	editing := m.editing

	var splitWith *household.Member

	if split {
		owner := m.member
		if editing != nil {
			owner = editing.Owner
		}

		if other, ok := m.household.Counterpart(owner); ok {
			splitWith = &other
		}
	}

	return func() tea.Msg {
		amount, err := money.Parse(amountStr)
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		date, err := dates.Parse(dateStr)
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if editing == nil {
			e, err := m.expenses.Create(ctx, expense.CreateParams{
				Owner:       m.member,
				Description: desc,
				Amount:      amount,
				Category:    cat,
				Date:        date,
				SplitWith:   splitWith,
			})
			if err != nil {
				return expenseSavedMsg{err: err}
			}

			return expenseSavedMsg{status: fmt.Sprintf("Added %q as %s.", e.Description, e.Category)}
		}

		updated := *editing
		updated.Description = desc
		updated.Amount = amount
		updated.Date = date
		updated.SplitWith = splitWith
		updated.SplitAmount = nil

		if cat != "" {
			updated.Category = cat
		}

		if err := m.expenses.Update(ctx, m.member, &updated); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{status: fmt.Sprintf("Updated %q.", updated.Description)}
	}
}

func (m ExpensesModel) deleteCmd(e *expense.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.expenses.Delete(ctx, m.member, e.ID); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{status: fmt.Sprintf("Deleted %q.", e.Description)}
	}
}
