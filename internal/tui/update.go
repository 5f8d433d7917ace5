package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/cascade"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	apperrors "github.com/ib-ingenieria/horas-cli/internal/errors"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/tui/components/dailylist"
	"github.com/ib-ingenieria/horas-cli/internal/tui/components/permlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.loggedIn() {
			m.dailyList.SetSize(msg.Width, m.contentHeight())
			m.permList.SetSize(msg.Width, m.contentHeight())
			m.reportModel.SetSize(msg.Width, m.contentHeight())
		}
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateEditing:
		return m.updateEditing(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateBrowsing(msg)
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	case loginResultMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			m.loginVals.Password = ""
			m.loginForm = newLoginForm(m.loginVals)
			return m, m.loginForm.Init()
		}
		m.formError = ""
		m.startSession(msg.user)
		return m, m.refreshDailyCmd()
	}

	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State == huh.StateCompleted {
		return m, m.loginCmd(m.loginVals.Username, m.loginVals.Password)
	}
	if m.loginForm.State == huh.StateAborted {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			// Abandoning the form keeps the draft; only edit mode is left.
			if m.hoursForm.Editing() {
				m.hoursForm.Reset()
			}
			if m.permForm.Editing() {
				m.permForm.Reset()
			}
			return m.leaveEditing(nil)
		}
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case projectsLoadedMsg:
		if msg.err != nil {
			return m.leaveEditing(msg.err)
		}
		m.projects = msg.projects
		m.phase = editPickProject
		m.levelChoice = ""
		m.form = newProjectForm(m.projects, &m.levelChoice)
		return m, m.form.Init()

	case cascadeResultMsg:
		if err := m.selector.Apply(msg.result); err != nil {
			return m.leaveEditing(err)
		}
		// A stale result leaves the newer fetch outstanding; keep waiting.
		if m.selector.Loading(msg.result.Level) {
			return m, nil
		}
		m.formLevel = msg.result.Level
		m.phase = editPickLevel
		m.levelChoice = ""
		m.form = newLevelForm(m.formLevel, m.selector.Options(m.formLevel), &m.levelChoice)
		return m, m.form.Init()

	case replayDoneMsg:
		var stale *cascade.StaleError
		if errors.As(msg.err, &stale) {
			// Resume picking at the level whose value disappeared.
			m.formError = apperrors.Format(msg.err)
			m.formLevel = stale.Level
			m.phase = editPickLevel
			m.levelChoice = ""
			m.form = newLevelForm(m.formLevel, m.selector.Options(m.formLevel), &m.levelChoice)
			return m, m.form.Init()
		}
		if msg.err != nil {
			return m.leaveEditing(msg.err)
		}
		return m.showDetailForm()

	case hourSubmitMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			m.phase = editDetails
			m.form = newHoursDetailForm(m.detailVals, m.hoursForm.Editing())
			return m, m.form.Init()
		}
		m.status = "Saved."
		return m.leaveEditingWith(m.refreshDailyCmd())

	case permSubmitMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			m.phase = editPermission
			m.form = newPermissionForm(m.permVals, m.permForm.Editing())
			return m, m.form.Init()
		}
		m.status = "Permission saved."
		m.state = constants.StatePermissions
		m.phase = editIdle
		m.form = nil
		return m, m.loadPermissionsCmd()
	}

	if m.phase == editLoading || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.advanceForm()
	case huh.StateAborted:
		if m.hoursForm.Editing() {
			m.hoursForm.Reset()
		}
		if m.permForm.Editing() {
			m.permForm.Reset()
		}
		return m.leaveEditing(nil)
	}
	return m, cmd
}

// advanceForm moves the editing flow one step after a form completes.
func (m Model) advanceForm() (tea.Model, tea.Cmd) {
	switch m.phase {
	case editPickProject:
		fetch := m.selector.Select(models.LevelProject, m.levelChoice)
		if fetch == nil {
			return m.leaveEditing(nil)
		}
		m.phase = editLoading
		m.form = nil
		return m, m.runFetchCmd(fetch)

	case editPickLevel:
		fetch := m.selector.Select(m.formLevel, m.levelChoice)
		if fetch == nil {
			return m.showDetailForm()
		}
		m.phase = editLoading
		m.form = nil
		return m, m.runFetchCmd(fetch)

	case editPickFavorite:
		for _, f := range m.favs {
			if f.ID == m.favChoice {
				m.phase = editLoading
				m.form = nil
				return m, m.replayCmd(f.Path())
			}
		}
		return m.leaveEditing(nil)

	case editDetails:
		m.hoursForm.SetPath(m.selector.Path())
		if !m.hoursForm.Editing() {
			m.hoursForm.SetDate(m.detailVals.Date)
		}
		m.hoursForm.SetHours(m.detailVals.Hours)
		m.hoursForm.SetNote(m.detailVals.Note)
		m.phase = editLoading
		m.form = nil
		return m, m.submitHoursCmd()

	case editPermission:
		m.permForm.SetDate(m.permVals.Date)
		m.permForm.SetType(m.permVals.Type)
		m.permForm.SetHours(m.permVals.Hours)
		m.permForm.SetNote(m.permVals.Note)
		m.phase = editLoading
		m.form = nil
		return m, m.submitPermissionCmd()
	}
	return m, nil
}

// showDetailForm opens the date/hours/note step, prefilled from the session
// form (and so from the draft).
func (m Model) showDetailForm() (tea.Model, tea.Cmd) {
	data := m.hoursForm.Data()
	date := data.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}
	m.detailVals = &HoursFormModel{
		Date:  date,
		Hours: data.Hours,
		Note:  data.Note,
	}
	m.phase = editDetails
	m.form = newHoursDetailForm(m.detailVals, m.hoursForm.Editing())
	return m, m.form.Init()
}

func (m Model) leaveEditing(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.formError = apperrors.Format(err)
	}
	m.state = m.returnState()
	m.phase = editIdle
	m.form = nil
	return m, nil
}

func (m Model) leaveEditingWith(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = m.returnState()
	m.phase = editIdle
	m.form = nil
	m.formError = ""
	return m, cmd
}

func (m Model) returnState() constants.SessionState {
	if m.phase == editPermission {
		return constants.StatePermissions
	}
	return constants.StateHours
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y":
			if m.deleteTarget != nil {
				id := m.deleteTarget.ID
				m.deleteTarget = nil
				m.state = constants.StateHours
				return m, m.deleteEntryCmd(id)
			}
			if m.permDeleteTarget != nil {
				id := m.permDeleteTarget.ID
				m.permDeleteTarget = nil
				m.state = constants.StatePermissions
				return m, m.deletePermissionCmd(id)
			}
			m.state = constants.StateHours
			return m, nil
		case "n", "esc":
			if m.permDeleteTarget != nil {
				m.state = constants.StatePermissions
			} else {
				m.state = constants.StateHours
			}
			m.deleteTarget = nil
			m.permDeleteTarget = nil
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case dailyRefreshedMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
		} else {
			m.formError = ""
			m.dailyList.SetEntries(m.daily.Entries())
		}
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			return m, nil
		}
		m.formError = ""
		m.status = "Deleted. Press 'u' to undo."
		m.dailyList.SetEntries(m.daily.Entries())
		return m, nil

	case undoDoneMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			return m, nil
		}
		m.formError = ""
		m.status = "Entry restored as a new record."
		m.dailyList.SetEntries(m.daily.Entries())
		return m, nil

	case permsLoadedMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
		} else {
			m.formError = ""
			m.permList.SetEntries(msg.entries)
		}
		return m, nil

	case permDeleteDoneMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			return m, nil
		}
		m.status = "Permission request withdrawn."
		return m, m.loadPermissionsCmd()

	case matrixLoadedMsg:
		if msg.err != nil {
			m.formError = apperrors.Format(msg.err)
			return m, nil
		}
		m.formError = ""
		m.reportModel.SetMatrix(msg.nav, msg.rows)
		return m, nil

	case dailylist.AddEntryMsg:
		return m.startHoursEntry()

	case dailylist.EditEntryMsg:
		m.hoursForm.LoadForEdit(msg.Entry)
		m.state = constants.StateEditing
		m.phase = editLoading
		m.formError = ""
		return m, m.replayCmd(msg.Entry.Path())

	case dailylist.DeleteEntryMsg:
		e := msg.Entry
		m.deleteTarget = &e
		m.state = constants.StateConfirmDelete
		return m, nil

	case dailylist.UndoDeleteMsg:
		if !m.daily.CanUndo() {
			m.status = "Nothing to undo."
			return m, nil
		}
		return m, m.undoDeleteCmd()

	case permlist.AddPermissionMsg:
		return m.startPermissionEntry()

	case permlist.EditPermissionMsg:
		return m.startPermissionEdit(msg.Entry)

	case permlist.DeletePermissionMsg:
		e := msg.Entry
		m.permDeleteTarget = &e
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if handled, model, cmd := m.handleBrowsingKeys(msg); handled {
			return model, cmd
		}
	}

	switch m.state {
	case constants.StateHours:
		var cmd tea.Cmd
		m.dailyList, cmd = m.dailyList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StatePermissions:
		var cmd tea.Cmd
		m.permList, cmd = m.permList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateReport:
		var cmd tea.Cmd
		m.reportModel, cmd = m.reportModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleBrowsingKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil

	case key.Matches(msg, m.keys.Logout):
		m.endSession()
		return true, m, m.loginForm.Init()

	case key.Matches(msg, m.keys.Tab):
		model, cmd := m.switchTab(nextTab(m.state))
		return true, model, cmd

	case key.Matches(msg, m.keys.ShiftTab):
		model, cmd := m.switchTab(prevTab(m.state))
		return true, model, cmd
	}

	switch m.state {
	case constants.StateHours:
		switch {
		case key.Matches(msg, m.keys.PrevDay):
			model, cmd := m.shiftDay(-1)
			return true, model, cmd
		case key.Matches(msg, m.keys.NextDay):
			model, cmd := m.shiftDay(1)
			return true, model, cmd
		case key.Matches(msg, m.keys.Refresh):
			return true, m, m.refreshDailyCmd()
		case key.Matches(msg, m.keys.Favorite):
			model, cmd := m.saveFavorite()
			return true, model, cmd
		case key.Matches(msg, m.keys.UseFav):
			model, cmd := m.startFavoritePick()
			return true, model, cmd
		}
	case constants.StatePermissions:
		if key.Matches(msg, m.keys.Refresh) {
			return true, m, m.loadPermissionsCmd()
		}
	case constants.StateReport:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			nav := m.reportModel.Nav.Prev()
			return true, m, m.loadMatrixCmd(nav)
		case key.Matches(msg, m.keys.NextMonth):
			nav := m.reportModel.Nav.Next()
			if nav == m.reportModel.Nav {
				return true, m, nil
			}
			return true, m, m.loadMatrixCmd(nav)
		case key.Matches(msg, m.keys.Refresh):
			return true, m, m.loadMatrixCmd(m.reportModel.Nav)
		}
	}

	return false, m, nil
}

func nextTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHours:
		return constants.StatePermissions
	case constants.StatePermissions:
		return constants.StateReport
	default:
		return constants.StateHours
	}
}

func prevTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHours:
		return constants.StateReport
	case constants.StateReport:
		return constants.StatePermissions
	default:
		return constants.StateHours
	}
}

func (m Model) switchTab(s constants.SessionState) (tea.Model, tea.Cmd) {
	m.state = s
	m.status = ""
	switch s {
	case constants.StateHours:
		return m, m.refreshDailyCmd()
	case constants.StatePermissions:
		return m, m.loadPermissionsCmd()
	case constants.StateReport:
		return m, m.loadMatrixCmd(m.reportModel.Nav)
	}
	return m, nil
}

func (m Model) shiftDay(days int) (tea.Model, tea.Cmd) {
	d, err := time.Parse(constants.DateFormat, m.daily.Date())
	if err != nil {
		d = time.Now()
	}
	m.daily.SetDate(d.AddDate(0, 0, days).Format(constants.DateFormat))
	return m, m.refreshDailyCmd()
}

func (m Model) startHoursEntry() (tea.Model, tea.Cmd) {
	m.state = constants.StateEditing
	m.phase = editLoading
	m.formError = ""
	m.selector.Reset()
	return m, m.loadProjectsCmd()
}

func (m Model) startPermissionEntry() (tea.Model, tea.Cmd) {
	data := m.permForm.Data()
	m.permVals = &PermissionFormModel{
		Date:  data.Date,
		Type:  constants.PermissionType(data.Activity),
		Hours: data.Hours,
		Note:  data.Note,
	}
	m.state = constants.StateEditing
	m.phase = editPermission
	m.formError = ""
	m.form = newPermissionForm(m.permVals, false)
	return m, m.form.Init()
}

func (m Model) startPermissionEdit(e models.PermissionEntry) (tea.Model, tea.Cmd) {
	m.permForm.LoadForEdit(e)
	data := m.permForm.Data()
	m.permVals = &PermissionFormModel{
		Date:  data.Date,
		Type:  constants.PermissionType(data.Activity),
		Hours: data.Hours,
		Note:  data.Note,
	}
	m.state = constants.StateEditing
	m.phase = editPermission
	m.formError = ""
	m.form = newPermissionForm(m.permVals, true)
	return m, m.form.Init()
}

func (m Model) saveFavorite() (tea.Model, tea.Cmd) {
	path := m.hoursForm.Data().Path()
	if !path.Complete() {
		m.formError = "complete a project selection before saving a favorite"
		return m, nil
	}
	fav := models.NewFavorite(path)
	if err := m.deps.Store.AddFavorite(m.user.ID, fav); err != nil {
		m.formError = apperrors.Format(err)
		return m, nil
	}
	m.formError = ""
	m.status = "Favorite saved."
	return m, nil
}

func (m Model) startFavoritePick() (tea.Model, tea.Cmd) {
	favs, err := m.deps.Store.Favorites(m.user.ID)
	if err != nil {
		m.formError = apperrors.Format(err)
		return m, nil
	}
	if len(favs) == 0 {
		m.status = "No favorites saved yet. Press 'f' on a completed form to save one."
		return m, nil
	}
	m.favs = favs
	m.favChoice = ""
	m.state = constants.StateEditing
	m.phase = editPickFavorite
	m.formError = ""
	m.form = newFavoriteForm(favs, &m.favChoice)
	return m, m.form.Init()
}
