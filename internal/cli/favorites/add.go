package favorites

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/cascade"
	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

type AddCmd struct {
	Project    string `arg:"" help:"Project code."`
	Phase      string `arg:"" help:"Phase within the project."`
	Discipline string `arg:"" help:"Discipline within the phase."`
	Activity   string `arg:"" help:"Activity within the discipline."`
}

func (c *AddCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	path := models.TaxonomyPath{
		ProjectCode: c.Project,
		Phase:       c.Phase,
		Discipline:  c.Discipline,
		Activity:    c.Activity,
	}

	// Verify the path still exists in the catalogs before saving it.
	sel := cascade.New(appCtx.API)
	if err := sel.Replay(ctx, path); err != nil {
		return fmt.Errorf("path not saved: %w", err)
	}

	fav := models.NewFavorite(path)
	if err := appCtx.Store.AddFavorite(user.ID, fav); err != nil {
		return err
	}

	fmt.Printf("Saved favorite %s (%s)\n", renderPath(path), fav.ID)
	return nil
}
