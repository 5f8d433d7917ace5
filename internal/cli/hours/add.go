package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type AddCmd struct {
	Date       string `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Project    string `help:"Project code. Prompted when omitted."`
	Phase      string `help:"Phase within the project."`
	Discipline string `help:"Discipline within the phase."`
	Activity   string `help:"Activity within the discipline."`
	Hours      string `short:"t" help:"Hours worked. Comma or dot decimals both work."`
	Note       string `short:"n" help:"Optional note."`
}

func (c *AddCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
	}
	return nil
}

func (c *AddCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	form := session.NewForm(appCtx.API, appCtx.Store, user.ID)
	if c.Date != "" {
		form.SetDate(c.Date)
	}
	if c.Hours != "" {
		form.SetHours(c.Hours)
	}
	if c.Note != "" {
		form.SetNote(c.Note)
	}

	path := models.TaxonomyPath{
		ProjectCode: c.Project,
		Phase:       c.Phase,
		Discipline:  c.Discipline,
		Activity:    c.Activity,
	}
	if path.Complete() {
		form.SetPath(path)
	} else {
		selected, err := promptPath(ctx, appCtx, path)
		if err != nil {
			return err
		}
		form.SetPath(selected)
	}

	if c.Hours == "" {
		hours := form.Data().Hours
		note := form.Data().Note
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
		form.SetHours(hours)
		form.SetNote(note)
	}

	entry, err := form.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s hours on %s (%s > %s > %s > %s)\n",
		session.DisplayHours(entry.Hours), entry.Date,
		entry.ProjectCode, entry.Phase, entry.Discipline, entry.Activity)
	return nil
}

// promptPath walks the four catalog levels with select prompts, fetching each
// level's options only after the previous one is chosen. Pre-filled levels
// from flags are kept when the catalogs still contain them.
func promptPath(ctx context.Context, appCtx *cli.Context, pre models.TaxonomyPath) (models.TaxonomyPath, error) {
	var p models.TaxonomyPath

	projects, err := appCtx.API.Projects(ctx)
	if err != nil {
		return p, fmt.Errorf("loading projects: %w", err)
	}
	if len(projects) == 0 {
		return p, fmt.Errorf("the server returned no projects")
	}
	codes := make([]string, 0, len(projects))
	labels := make(map[string]string, len(projects))
	for _, pr := range projects {
		codes = append(codes, pr.Code)
		labels[pr.Code] = fmt.Sprintf("%s (%s)", pr.Name, pr.Code)
	}
	p.ProjectCode, err = selectOne(ctx, "Project", codes, labels, pre.ProjectCode)
	if err != nil {
		return p, err
	}

	stages, err := appCtx.API.Stages(ctx, p.ProjectCode)
	if err != nil {
		return p, fmt.Errorf("loading phases: %w", err)
	}
	p.Phase, err = selectOne(ctx, "Phase", stages, nil, pre.Phase)
	if err != nil {
		return p, err
	}

	disciplines, err := appCtx.API.Disciplines(ctx, p.ProjectCode, p.Phase)
	if err != nil {
		return p, fmt.Errorf("loading disciplines: %w", err)
	}
	p.Discipline, err = selectOne(ctx, "Discipline", disciplines, nil, pre.Discipline)
	if err != nil {
		return p, err
	}

	activities, err := appCtx.API.Activities(ctx, p.ProjectCode, p.Phase, p.Discipline)
	if err != nil {
		return p, fmt.Errorf("loading activities: %w", err)
	}
	p.Activity, err = selectOne(ctx, "Activity", activities, nil, pre.Activity)
	if err != nil {
		return p, err
	}

	return p, nil
}

func selectOne(_ context.Context, title string, options []string, labels map[string]string, pre string) (string, error) {
	if pre != "" {
		for _, o := range options {
			if o == pre {
				return pre, nil
			}
		}
		fmt.Printf("%s %q is no longer available, pick again\n", title, pre)
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no %s options available", title)
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		label := o
		if labels != nil && labels[o] != "" {
			label = labels[o]
		}
		opts = append(opts, huh.NewOption(label, o))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
