package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/buxfer/internal/encoding"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/export"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportModel imports a CSV file of expenses for the current member.
type ImportModel struct {
	CommonModel
	exportService *export.Service
	member        household.Member

	state      importState
	filePicker filepicker.Model

	imported []*expense.Expense
	status   string
	err      error
}

func NewImportModel(svc *export.Service, member household.Member) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		exportService: svc,
		member:        member,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string     { return "Import Expenses" }
func (m ImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case importResultMsg:
		m.state = importStateResult
		m.imported = msg.imported
		m.err = msg.err

		switch {
		case msg.err != nil && len(msg.imported) > 0:
			m.status = fmt.Sprintf("Imported %d expenses before failing: %v", len(msg.imported), msg.err)
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		default:
			m.status = fmt.Sprintf("Imported %d expenses (read as %s).", len(msg.imported), msg.charset)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.err = nil
		m.status = ""
		m.imported = nil

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a CSV export to import as %s:\n\n%s", m.member, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	status := successStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}

	var b strings.Builder
	for i, e := range m.imported {
		if i == 10 {
			fmt.Fprintf(&b, "... and %d more\n", len(m.imported)-i)
			break
		}

		fmt.Fprintf(&b, "%s  %10s  %-16s %s\n", FormatDate(e.Date), FormatAmount(e.Amount), e.Category, e.Description)
	}

	return style.Render(status + "\n\n" + b.String())
}

type importResultMsg struct {
	imported []*expense.Expense
	charset  encoding.Charset
	err      error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		res, err := m.exportService.ImportCSV(ctx, f, m.member)

		return importResultMsg{imported: res.Expenses, charset: res.Charset, err: err}
	}
}
