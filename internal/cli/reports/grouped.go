package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type GroupedCmd struct {
	monthFlags
}

func (c *GroupedCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	if _, err := appCtx.RequireUser(ctx); err != nil {
		return err
	}

	nav, err := c.nav()
	if err != nil {
		return err
	}

	rows, err := appCtx.API.GroupedByEmployee(ctx, nav.Year, nav.Month)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Printf("No hours recorded in %s.\n", monthTitle(nav))
		return nil
	}

	// Rows only carry short names; resolve full names from the employee
	// catalog, best effort.
	fullName := map[string]string{}
	if employees, err := appCtx.API.Employees(ctx); err == nil {
		for _, e := range employees {
			fullName[e.ShortName] = e.Name
		}
	} else {
		logger.Debug("Employee catalog unavailable", "error", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ShortName != rows[j].ShortName {
			return rows[i].ShortName < rows[j].ShortName
		}
		return rows[i].Date < rows[j].Date
	})

	fmt.Println(headerStyle.Render(monthTitle(nav)))
	totals := map[string]float64{}
	lastName := ""
	for _, r := range rows {
		if r.ShortName != lastName {
			header := r.ShortName
			if name := fullName[r.ShortName]; name != "" {
				header += "  " + name
			}
			fmt.Printf("%s\n", headerStyle.Render(header))
			lastName = r.ShortName
		}
		fmt.Printf("  %s  %sh\n", r.Date, session.DisplayHours(r.Hours))
		totals[r.ShortName] += r.Hours
	}

	names := make([]string, 0, len(totals))
	for n := range totals {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Println()
	for _, n := range names {
		fmt.Println(totalStyle.Render(fmt.Sprintf("%s: %sh", n, session.DisplayHours(totals[n]))))
	}
	return nil
}
