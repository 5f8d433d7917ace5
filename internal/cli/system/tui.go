package system

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/tui"
)

// TuiCmd starts the interactive terminal UI. It is the default command.
type TuiCmd struct{}

func (c *TuiCmd) Run(appCtx *cli.Context) error {
	deps := tui.Deps{
		API:    appCtx.API,
		Store:  appCtx.Store,
		Config: appCtx.Config,
	}

	// A remembered or skip-login user goes straight past the login screen.
	if user, err := appCtx.RequireUser(context.Background()); err == nil {
		deps.User = &user
	} else {
		logger.Debug("Starting without a session", "reason", err)
	}

	p := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
