package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateLogin {
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			"Log in to report hours",
			"",
			m.loginForm.View(),
			m.viewMessages(),
		))
	}

	var content string
	switch m.state {
	case constants.StateHours:
		content = m.viewHours()
	case constants.StatePermissions:
		content = docStyle.Render(m.permList.View())
	case constants.StateReport:
		content = docStyle.Render(m.reportModel.View())
	case constants.StateEditing:
		content = m.viewEditing()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewMessages(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	var tabs []string
	tabTitles := []string{"Hours", "Permissions", "Report"}
	tabStates := []constants.SessionState{
		constants.StateHours,
		constants.StatePermissions,
		constants.StateReport,
	}
	for i, title := range tabTitles {
		if m.state == tabStates[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", userStyle.Render(m.user.Name))
}

func (m Model) viewHours() string {
	title := fmt.Sprintf("%s  %s",
		m.daily.Date(),
		totalStyle.Render(fmt.Sprintf("Σ %sh", session.DisplayHours(m.daily.Total()))))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.dailyList.View()))
}

func (m Model) viewEditing() string {
	if m.phase == editLoading || m.form == nil {
		return docStyle.Render("Loading options...")
	}
	return docStyle.Render(m.form.View())
}

func (m Model) viewConfirmDelete() string {
	prompt := "Delete this entry?"
	if m.permDeleteTarget != nil {
		prompt = "Withdraw this permission request?"
	}
	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewMessages() string {
	if m.formError != "" {
		return errorStyle.Render(m.formError)
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}
