package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/buxfer/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/buxfer/internal/app"
	"github.com/MrJamesThe3rd/buxfer/internal/config"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/logging"
)

type View int

const (
	ViewMenu View = iota
	ViewMember
	ViewDashboard
	ViewExpenses
	ViewRecurring
	ViewTodos
	ViewImport
	ViewExport
)

type model struct {
	app    *app.App
	name   string
	member household.Member

	currentView View
	active      tea.Model
	width       int
	height      int
}

func initialModel(a *app.App, name string, member household.Member) model {
	m := model{app: a, name: name, member: member, currentView: ViewMenu}

	if member == "" {
		m.currentView = ViewMember
		m.active = view.NewMemberModel(a.Device, a.Household)
	}

	return m
}

func (m model) Init() tea.Cmd {
	if m.active != nil {
		return m.active.Init()
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			return m.updateMenu(msg)
		}

	case view.MemberSelectedMsg:
		m.member = msg.Member
		m.currentView = ViewMenu
		m.active = nil

		return m, nil

	case view.BackMsg:
		if m.member == "" {
			return m, tea.Quit
		}

		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.app

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		return m.open(ViewDashboard, view.NewDashboardModel(a.Analytics, m.member))
	case "2":
		return m.open(ViewExpenses, view.NewExpensesModel(a.Expenses, a.Categories, a.Household, m.member))
	case "3":
		return m.open(ViewRecurring, view.NewRecurringModel(a.Recurring, m.member))
	case "4":
		return m.open(ViewTodos, view.NewTodosModel(a.Todos, m.member))
	case "5":
		return m.open(ViewImport, view.NewImportModel(a.Export, m.member))
	case "6":
		return m.open(ViewExport, view.NewExportModel(a.Export, m.member))
	case "m":
		return m.open(ViewMember, view.NewMemberModel(a.Device, a.Household))
	}

	return m, nil
}

// open switches to v and replays the last window size so lists and tables lay out immediately.
func (m model) open(v View, next tea.Model) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.active = next

	cmds := []tea.Cmd{next.Init()}

	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.currentView != ViewMenu && m.active != nil {
		if v, ok := m.active.(view.View); ok {
			return view.Frame(m.name, v)
		}

		return m.active.View()
	}

	header := lipgloss.NewStyle().Bold(true).Render(m.name)
	who := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("Signed in as %s", m.member))

	return lipgloss.NewStyle().Padding(2).Render(
		header + "  " + who + "\n\n" +
			"1. Dashboard\n" +
			"2. Expenses\n" +
			"3. Recurring Payments\n" +
			"4. Todos\n" +
			"5. Import CSV\n" +
			"6. Export\n\n" +
			"m. Switch Member\n" +
			"q. Quit",
	)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	member, err := a.Device.CurrentMember(ctx)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		slog.Error("failed to read current member", "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(a, cfg.App.Name, member), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
