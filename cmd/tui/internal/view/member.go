package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/localstate"
)

// MemberSelectedMsg is emitted once the device knows who is using it.
type MemberSelectedMsg struct {
	Member household.Member
}

// MemberModel asks who is using this device and remembers the answer.
type MemberModel struct {
	CommonModel
	device    *localstate.Device
	household *household.Household

	form *huh.Form
	err  error
}

func NewMemberModel(device *localstate.Device, hh *household.Household) MemberModel {
	m := MemberModel{device: device, household: hh}

	options := make([]huh.Option[string], 0, len(hh.Members()))
	for _, member := range hh.Members() {
		options = append(options, huh.NewOption(string(member), string(member)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("member").
				Title("Who is using Buxfer?").
				Options(options...),
		),
	).WithWidth(40).WithShowHelp(false)

	return m
}

func (m MemberModel) Title() string     { return "Select Member" }
func (m MemberModel) ShortHelp() string { return "Enter: select | Esc: back" }

func (m MemberModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MemberModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	case memberSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		return m, func() tea.Msg { return MemberSelectedMsg{Member: msg.member} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd(household.Member(m.form.GetString("member")))
}

func (m MemberModel) View() string {
	content := m.form.View()
	if m.err != nil {
		content += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type memberSavedMsg struct {
	member household.Member
	err    error
}

func (m MemberModel) saveCmd(member household.Member) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return memberSavedMsg{member: member, err: m.device.SetCurrentMember(ctx, member)}
	}
}
