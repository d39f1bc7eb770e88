package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

type todoState int

const (
	todoStateList todoState = iota
	todoStateAdding
)

type todoItem struct {
	t *todo.Todo
}

func (i todoItem) Title() string {
	box := "[ ]"
	if i.t.Done {
		box = "[x]"
	}

	return fmt.Sprintf("%s %s", box, i.t.Text)
}

func (i todoItem) Description() string {
	if i.t.Due == nil {
		return ""
	}

	return "Due " + FormatDate(*i.t.Due)
}

func (i todoItem) FilterValue() string { return i.t.Text }

type todoItemDelegate struct{}

func (d todoItemDelegate) Height() int                             { return 2 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(todoItem)
	if !ok {
		return
	}

	title := i.Title()

	switch {
	case index == m.Index():
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	case i.t.Done:
		title = faintStyle.Render(title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	desc := i.Description()
	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", faintStyle.Render(desc))
}

type TodosModel struct {
	CommonModel
	todoService *todo.Service
	member      household.Member

	state   todoState
	list    list.Model
	form    *huh.Form
	loading bool
	status  string
}

func NewTodosModel(svc *todo.Service, member household.Member) TodosModel {
	l := list.New([]list.Item{}, todoItemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return TodosModel{
		todoService: svc,
		member:      member,
		list:        l,
		loading:     true,
	}
}

func (m TodosModel) Title() string { return "Todos" }

func (m TodosModel) ShortHelp() string {
	if m.state == todoStateAdding {
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "Esc: back | a: add | space: toggle | K/J: move | x: delete | /: filter"
}

func (m TodosModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TodosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.setItems(msg.todos)

		if len(msg.todos) == 0 {
			m.status = "Nothing to do."
		}

		return m, nil

	case todoActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.status

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Resize(msg)
		m.list.SetSize(m.Width-4, m.Height-5)

		return m, nil
	}

	if m.state == todoStateAdding {
		return m.updateAdding(msg)
	}

	return m.updateList(msg)
}

func (m TodosModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	selected, hasSelection := m.list.SelectedItem().(todoItem)

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "a":
		m.form = newTodoForm()
		m.state = todoStateAdding

		return m, m.form.Init()
	case " ":
		if hasSelection {
			return m, m.toggleCmd(selected.t)
		}
	case "K":
		if hasSelection {
			return m, m.moveCmd(selected.t, -1)
		}
	case "J":
		if hasSelection {
			return m, m.moveCmd(selected.t, 1)
		}
	case "x":
		if hasSelection {
			return m, m.deleteCmd(selected.t)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TodosModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = todoStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	text := m.form.GetString("text")
	due := m.form.GetString("due")
	m.state = todoStateList
	m.form = nil

	return m, m.createCmd(text, due)
}

func newTodoForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("text").
				Title("Todo").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("text cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("due").
				Title("Due date (optional)").
				Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := dates.Parse(s)
					return err
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m TodosModel) View() string {
	if m.state == todoStateAdding && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(headerStyle.Render("New todo") + "\n\n" + m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading todos...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = faintStyle.Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

func (m *TodosModel) setItems(todos []*todo.Todo) {
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = todoItem{t: t}
	}

	m.list.SetItems(items)
}

// Messages

type todosLoadedMsg struct {
	todos []*todo.Todo
	err   error
}

type todoActionMsg struct {
	status string
	err    error
}

func (m TodosModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		todos, err := m.todoService.List(ctx, m.member)

		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m TodosModel) createCmd(text, due string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var dueDate *time.Time

		if due != "" {
			d, err := dates.Parse(due)
			if err != nil {
				return todoActionMsg{err: err}
			}

			dueDate = &d
		}

		if _, err := m.todoService.Create(ctx, m.member, text, dueDate); err != nil {
			return todoActionMsg{err: err}
		}

		return todoActionMsg{status: "Added."}
	}
}

func (m TodosModel) toggleCmd(t *todo.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.todoService.Toggle(ctx, m.member, t.ID)

		return todoActionMsg{err: err}
	}
}

func (m TodosModel) moveCmd(t *todo.Todo, delta int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.todoService.Move(ctx, m.member, t.ID, delta)

		return todoActionMsg{err: err}
	}
}

func (m TodosModel) deleteCmd(t *todo.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.todoService.Delete(ctx, m.member, t.ID); err != nil {
			return todoActionMsg{err: err}
		}

		return todoActionMsg{status: fmt.Sprintf("Deleted %q.", t.Text)}
	}
}
