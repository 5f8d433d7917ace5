package permissions

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
)

type DeleteCmd struct {
	ID    string `arg:"" help:"ID of the permission request to withdraw."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	if _, err := appCtx.RequireUser(ctx); err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Withdraw permission request %s?", c.ID)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := appCtx.API.DeletePermission(ctx, c.ID); err != nil {
		return err
	}
	fmt.Printf("Withdrew permission request %s\n", c.ID)
	return nil
}
