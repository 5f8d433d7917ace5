package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/cascade"
	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

// UseCmd records hours against a saved favorite's path. The path is replayed
// against the live catalogs first; a favorite whose path has disappeared from
// the catalogs is reported, not silently submitted.
type UseCmd struct {
	ID    string `arg:"" optional:"" help:"ID of the favorite to use. Prompted when omitted."`
	Date  string `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Hours string `short:"t" help:"Hours worked. Prompted when omitted."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *UseCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
	}
	return nil
}

func (c *UseCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	fav, err := c.pick(appCtx, user.ID)
	if err != nil {
		return err
	}

	sel := cascade.New(appCtx.API)
	if err := sel.Replay(ctx, fav.Path()); err != nil {
		var stale *cascade.StaleError
		if errors.As(err, &stale) {
			return fmt.Errorf("favorite %s is out of date: %w", fav.ID, stale)
		}
		return err
	}

	form := session.NewForm(appCtx.API, appCtx.Store, user.ID)
	form.SetPath(sel.Path())
	if c.Date != "" {
		form.SetDate(c.Date)
	}

	hours := c.Hours
	note := c.Note
	if hours == "" {
		prompt := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hours").
					Value(&hours).
					Validate(func(s string) error {
						v, err := session.NormalizeHours(s)
						if err != nil {
							return err
						}
						if v <= 0 || v > constants.MaxHoursPerDay {
							return fmt.Errorf("hours must be between 0 and %d", constants.MaxHoursPerDay)
						}
						return nil
					}),
				huh.NewInput().
					Title("Note (optional)").
					Value(&note),
			),
		)
		if err := prompt.Run(); err != nil {
			return err
		}
	}
	form.SetHours(hours)
	form.SetNote(note)

	entry, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s hours on %s (%s)\n",
		session.DisplayHours(entry.Hours), entry.Date, renderPath(entry.Path()))
	return nil
}

func (c *UseCmd) pick(appCtx *cli.Context, employeeID int) (models.Favorite, error) {
	favs, err := appCtx.Store.Favorites(employeeID)
	if err != nil {
		return models.Favorite{}, err
	}
	if len(favs) == 0 {
		return models.Favorite{}, fmt.Errorf("no favorites saved, add one with 'horas favorites add'")
	}

	if c.ID != "" {
		for _, f := range favs {
			if f.ID == c.ID {
				return f, nil
			}
		}
		return models.Favorite{}, fmt.Errorf("no favorite with id %s", c.ID)
	}

	opts := make([]huh.Option[string], 0, len(favs))
	byID := make(map[string]models.Favorite, len(favs))
	for _, f := range favs {
		opts = append(opts, huh.NewOption(renderPath(f.Path()), f.ID))
		byID[f.ID] = f
	}
	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Favorite").
				Options(opts...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return models.Favorite{}, err
	}
	return byID[choice], nil
}
