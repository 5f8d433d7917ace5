package favorites

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	favs, err := appCtx.Store.Favorites(user.ID)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println("No favorites saved. Add one with 'horas favorites add'.")
		return nil
	}

	fmt.Println(headerStyle.Render("Favorites"))
	for _, f := range favs {
		fmt.Printf("  %s  %s\n", dimStyle.Render(f.ID), renderPath(f.Path()))
	}
	return nil
}
