package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/cli/auth"
	"github.com/ib-ingenieria/horas-cli/internal/cli/favorites"
	"github.com/ib-ingenieria/horas-cli/internal/cli/hours"
	"github.com/ib-ingenieria/horas-cli/internal/cli/permissions"
	"github.com/ib-ingenieria/horas-cli/internal/cli/reports"
	"github.com/ib-ingenieria/horas-cli/internal/cli/system"
	"github.com/ib-ingenieria/horas-cli/internal/config"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	apperrors "github.com/ib-ingenieria/horas-cli/internal/errors"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag

	Login  auth.LoginCmd  `cmd:"" help:"Log in to the hours backend."`
	Logout auth.LogoutCmd `cmd:"" help:"Log out and forget saved credentials."`
	Tui    system.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Hours  struct {
		Add    hours.AddCmd    `cmd:"" help:"Record worked hours."`
		List   hours.ListCmd   `cmd:"" help:"List hours for a day."`
		Delete hours.DeleteCmd `cmd:"" help:"Delete an hours record."`
	} `cmd:"" help:"Manage reported hours."`
	Permissions struct {
		Add    permissions.AddCmd    `cmd:"" help:"Request a leave permission."`
		List   permissions.ListCmd   `cmd:"" help:"List permission requests."`
		Delete permissions.DeleteCmd `cmd:"" help:"Withdraw a permission request."`
	} `cmd:"" help:"Manage leave permissions."`
	Report struct {
		Month   reports.MonthCmd   `cmd:"" help:"Per-day detail of your month." default:"1"`
		Matrix  reports.MatrixCmd  `cmd:"" help:"Employee x day hours grid for a month."`
		Grouped reports.GroupedCmd `cmd:"" help:"Per-employee daily totals for a month."`
	} `cmd:"" help:"Monthly reports."`
	Favorites struct {
		Add    favorites.AddCmd    `cmd:"" help:"Save a taxonomy path as a favorite."`
		List   favorites.ListCmd   `cmd:"" help:"List saved favorites."`
		Delete favorites.DeleteCmd `cmd:"" help:"Remove a favorite."`
		Use    favorites.UseCmd    `cmd:"" help:"Record hours against a favorite."`
	} `cmd:"" help:"Manage taxonomy favorites."`
	Debug system.DebugCmd `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Time and leave-permission reporting client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	apperrors.Fatal(err)

	storePath := cfg.StorePath
	if storePath == "" {
		storePath = constants.DefaultStorePath
	}
	storePath = expandHome(storePath)

	apperrors.Fatal(logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(storePath),
	}))

	var store localstore.Provider
	if strings.HasSuffix(storePath, ".json") {
		store = localstore.NewJSONStore(storePath)
	} else {
		store = localstore.NewSQLiteStore(storePath)
	}
	apperrors.Fatal(store.Load())
	defer store.Close()

	appCtx := &cli.Context{
		API:    api.New(cfg.APIBaseURL, time.Duration(cfg.RequestTimeout)*time.Second),
		Store:  store,
		Config: cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
