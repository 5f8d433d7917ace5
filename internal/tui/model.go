package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/cascade"
	"github.com/ib-ingenieria/horas-cli/internal/config"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
	"github.com/ib-ingenieria/horas-cli/internal/tui/components/dailylist"
	"github.com/ib-ingenieria/horas-cli/internal/tui/components/permlist"
	"github.com/ib-ingenieria/horas-cli/internal/tui/components/report"
	"github.com/ib-ingenieria/horas-cli/internal/views"
)

// Deps is the dependency bundle the TUI is constructed with. A nil User
// starts at the login screen.
type Deps struct {
	API    *api.Client
	Store  localstore.Provider
	Config config.Config
	User   *models.AuthenticatedUser
}

// editPhase is the sub-state of StateEditing: which form is on screen, or
// whether a catalog fetch is in flight.
type editPhase int

const (
	editIdle editPhase = iota
	editLoading
	editPickProject
	editPickLevel
	editPickFavorite
	editDetails
	editPermission
)

type Model struct {
	deps Deps
	user models.AuthenticatedUser

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	loginForm *huh.Form
	loginVals *LoginFormModel

	hoursForm *session.Form
	permForm  *session.PermissionForm
	selector  *cascade.Selector
	daily     *views.Daily

	dailyList   dailylist.Model
	permList    permlist.Model
	reportModel report.Model

	// Editing sub-state. form is whichever huh form is on screen.
	form        *huh.Form
	phase       editPhase
	formLevel   models.Level
	levelChoice string
	favChoice   string
	projects    []models.Project
	favs        []models.Favorite
	detailVals  *HoursFormModel
	permVals    *PermissionFormModel

	deleteTarget     *models.DailyEntry
	permDeleteTarget *models.PermissionEntry

	formError string
	status    string
	quitting  bool
	width     int
	height    int
}

// New builds the TUI model. With a known user the session starts on the
// hours tab; otherwise at the login form.
func New(deps Deps) Model {
	m := Model{
		deps: deps,
		keys: DefaultKeyMap(),
		help: help.New(),
	}

	if deps.User != nil {
		m.startSession(*deps.User)
	} else {
		m.state = constants.StateLogin
		m.loginVals = &LoginFormModel{}
		m.loginForm = newLoginForm(m.loginVals)
	}

	return m
}

// startSession wires the per-employee state after a successful login.
func (m *Model) startSession(user models.AuthenticatedUser) {
	m.user = user
	m.state = constants.StateHours

	m.hoursForm = session.NewForm(m.deps.API, m.deps.Store, user.ID)
	m.permForm = session.NewPermissionForm(m.deps.API, m.deps.Store, user.ID)
	m.selector = cascade.New(m.deps.API)

	today := time.Now().Format(constants.DateFormat)
	m.daily = views.NewDaily(m.deps.API, user.ID, today)

	m.dailyList = dailylist.New(nil, m.width, m.contentHeight())
	m.permList = permlist.New(nil, m.width, m.contentHeight())
	m.reportModel = report.New(m.width, m.contentHeight())
}

// endSession drops the in-memory user and returns to the login form. Drafts
// and favorites stay in the local store.
func (m *Model) endSession() {
	m.user = models.AuthenticatedUser{}
	m.state = constants.StateLogin
	m.loginVals = &LoginFormModel{}
	m.loginForm = newLoginForm(m.loginVals)
	m.formError = ""
	m.status = ""
}

func (m Model) loggedIn() bool {
	return m.user.ID != 0
}

func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHours:
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.UseFav)
	case constants.StateReport:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateLogin {
		return m.loginForm.Init()
	}
	return m.refreshDailyCmd()
}
