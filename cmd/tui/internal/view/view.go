package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameLines is the height taken by Frame's breadcrumb and help lines.
const frameLines = 3

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

// Resize records the space left for a view's body once Frame has drawn around it.
func (c *CommonModel) Resize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = max(msg.Height-frameLines, 0)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// Frame renders v under an "app › title" breadcrumb with its key help underneath.
func Frame(app string, v View) string {
	crumb := faintStyle.Render(app+" › ") + headerStyle.Render(v.Title())
	help := faintStyle.Render(v.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().PaddingLeft(1).Render(crumb), v.View(), lipgloss.NewStyle().PaddingLeft(1).Render(help))
}
