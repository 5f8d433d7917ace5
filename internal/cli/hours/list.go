package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/session"
	"github.com/ib-ingenieria/horas-cli/internal/views"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

type ListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD). Defaults to today."`
}

func (c *ListCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
	}
	return nil
}

func (c *ListCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	daily := views.NewDaily(appCtx.API, user.ID, date)
	if err := daily.Refresh(ctx); err != nil {
		return err
	}

	entries := daily.Entries()
	if len(entries) == 0 {
		fmt.Printf("No hours recorded on %s.\n", date)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Hours on %s", date)))
	for _, e := range entries {
		project := e.ProjectName
		if project == "" {
			project = e.ProjectCode
		}
		fmt.Printf("  %s  %-6s  %s > %s > %s > %s\n",
			dimStyle.Render(e.ID),
			session.DisplayHours(e.Hours)+"h",
			project, e.Phase, e.Discipline, e.Activity)
		if e.Note != "" {
			fmt.Printf("          %s\n", dimStyle.Render(e.Note))
		}
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("Total: %sh", session.DisplayHours(daily.Total()))))
	return nil
}
