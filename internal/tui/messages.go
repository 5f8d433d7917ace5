package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/cascade"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/views"
)

type loginResultMsg struct {
	user models.AuthenticatedUser
	err  error
}

type dailyRefreshedMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type undoDoneMsg struct {
	err error
}

type permsLoadedMsg struct {
	entries []models.PermissionEntry
	err     error
}

type permDeleteDoneMsg struct {
	err error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type cascadeResultMsg struct {
	result cascade.Result
}

type replayDoneMsg struct {
	err error
}

type hourSubmitMsg struct {
	entry models.HourEntry
	err   error
}

type permSubmitMsg struct {
	entry models.PermissionEntry
	err   error
}

type matrixLoadedMsg struct {
	nav  views.MonthNav
	rows []models.GroupedHour
	err  error
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		user, err := client.Login(context.Background(), api.Credentials{
			Username: username,
			Password: password,
		})
		return loginResultMsg{user: user, err: err}
	}
}

func (m *Model) refreshDailyCmd() tea.Cmd {
	daily := m.daily
	return func() tea.Msg {
		return dailyRefreshedMsg{err: daily.Refresh(context.Background())}
	}
}

func (m *Model) deleteEntryCmd(id string) tea.Cmd {
	daily := m.daily
	return func() tea.Msg {
		return deleteDoneMsg{err: daily.Delete(context.Background(), id)}
	}
}

func (m *Model) undoDeleteCmd() tea.Cmd {
	daily := m.daily
	return func() tea.Msg {
		_, err := daily.Undo(context.Background())
		return undoDoneMsg{err: err}
	}
}

func (m *Model) loadPermissionsCmd() tea.Cmd {
	client := m.deps.API
	employeeID := m.user.ID
	return func() tea.Msg {
		entries, err := client.Permissions(context.Background(), employeeID, "", "")
		return permsLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) deletePermissionCmd(id string) tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		return permDeleteDoneMsg{err: client.DeletePermission(context.Background(), id)}
	}
}

func (m *Model) loadProjectsCmd() tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		projects, err := client.Projects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m *Model) runFetchCmd(f *cascade.Fetch) tea.Cmd {
	return func() tea.Msg {
		return cascadeResultMsg{result: f.Run(context.Background())}
	}
}

func (m *Model) replayCmd(p models.TaxonomyPath) tea.Cmd {
	sel := m.selector
	return func() tea.Msg {
		return replayDoneMsg{err: sel.Replay(context.Background(), p)}
	}
}

func (m *Model) submitHoursCmd() tea.Cmd {
	form := m.hoursForm
	return func() tea.Msg {
		entry, err := form.Submit(context.Background())
		return hourSubmitMsg{entry: entry, err: err}
	}
}

func (m *Model) submitPermissionCmd() tea.Cmd {
	form := m.permForm
	return func() tea.Msg {
		entry, err := form.Submit(context.Background())
		return permSubmitMsg{entry: entry, err: err}
	}
}

func (m *Model) loadMatrixCmd(nav views.MonthNav) tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		rows, err := client.MonthlyMatrix(context.Background(), nav.Year, nav.Month)
		return matrixLoadedMsg{nav: nav, rows: rows, err: err}
	}
}
