package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type MonthCmd struct {
	monthFlags
}

func (c *MonthCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	nav, err := c.nav()
	if err != nil {
		return err
	}

	entries, err := appCtx.API.MonthlyReport(ctx, nav.Year, nav.Month)
	if err != nil {
		return err
	}

	var mine []models.DailyEntry
	for _, e := range entries {
		if e.EmployeeID == user.ID {
			mine = append(mine, e)
		}
	}
	if len(mine) == 0 {
		fmt.Printf("No hours recorded in %s.\n", monthTitle(nav))
		return nil
	}

	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Date < mine[j].Date })

	fmt.Println(headerStyle.Render(monthTitle(nav)))
	var total float64
	lastDate := ""
	for _, e := range mine {
		date := e.Date
		if date == lastDate {
			date = "          "
		} else {
			lastDate = e.Date
		}
		project := e.ProjectName
		if project == "" {
			project = e.ProjectCode
		}
		fmt.Printf("  %s  %-6s  %s > %s > %s > %s\n",
			date, session.DisplayHours(e.Hours)+"h",
			project, e.Phase, e.Discipline, e.Activity)
		total += e.Hours
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("Total: %sh", session.DisplayHours(total))))
	return nil
}
