package system

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
)

type DebugCmd struct {
	StorePath     *DebugStorePathCmd     `cmd:"" help:"Show local store path."`
	DumpConfig    *DebugDumpConfigCmd    `cmd:"" help:"Dump the resolved configuration as JSON."`
	DumpDraft     *DebugDumpDraftCmd     `cmd:"" help:"Dump a persisted draft as JSON."`
	DumpFavorites *DebugDumpFavoritesCmd `cmd:"" help:"Dump saved favorites as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(appCtx *cli.Context) error {
	output := map[string]string{
		"path": appCtx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpConfigCmd struct{}

func (cmd *DebugDumpConfigCmd) Run(appCtx *cli.Context) error {
	jsonBytes, err := json.MarshalIndent(appCtx.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDraftCmd struct {
	Kind string `arg:"" optional:"" default:"hours" help:"Draft namespace to dump (hours or permissions)."`
}

func (cmd *DebugDumpDraftCmd) Run(appCtx *cli.Context) error {
	kind := constants.FormKind(cmd.Kind)
	if kind != constants.FormHours && kind != constants.FormPermissions {
		return fmt.Errorf("unknown draft kind: %s (expected hours or permissions)", cmd.Kind)
	}

	user, err := appCtx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	draft, err := appCtx.Store.Draft(user.ID, kind)
	if err != nil {
		if errors.Is(err, localstore.ErrNoDraft) {
			return fmt.Errorf("no %s draft for employee %d", kind, user.ID)
		}
		return fmt.Errorf("failed to get draft: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpFavoritesCmd struct{}

func (cmd *DebugDumpFavoritesCmd) Run(appCtx *cli.Context) error {
	user, err := appCtx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	favs, err := appCtx.Store.Favorites(user.ID)
	if err != nil {
		return fmt.Errorf("failed to get favorites: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(favs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
