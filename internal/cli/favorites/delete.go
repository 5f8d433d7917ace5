package favorites

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the favorite to remove."`
}

func (c *DeleteCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	if err := appCtx.Store.DeleteFavorite(user.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed favorite %s\n", c.ID)
	return nil
}
