package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/session"
	"github.com/ib-ingenieria/horas-cli/internal/views"
)

type MatrixCmd struct {
	monthFlags
}

func (c *MatrixCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	if _, err := appCtx.RequireUser(ctx); err != nil {
		return err
	}

	nav, err := c.nav()
	if err != nil {
		return err
	}

	rows, err := appCtx.API.MonthlyMatrix(ctx, nav.Year, nav.Month)
	if err != nil {
		return err
	}

	matrix := views.BuildMatrix(nav, rows)
	if len(matrix.Rows) == 0 {
		fmt.Printf("No hours recorded in %s.\n", monthTitle(nav))
		return nil
	}

	fmt.Println(headerStyle.Render(monthTitle(nav)))

	var head strings.Builder
	head.WriteString(fmt.Sprintf("%-12s", ""))
	for day := 1; day <= matrix.DaysInMonth; day++ {
		head.WriteString(fmt.Sprintf("%4d", day))
	}
	head.WriteString("   Total")
	fmt.Println(dimStyle.Render(head.String()))

	for _, row := range matrix.Rows {
		var line strings.Builder
		line.WriteString(fmt.Sprintf("%-12s", truncate(row.ShortName, 12)))
		for _, h := range row.Days {
			if h == 0 {
				line.WriteString(dimStyle.Render("   ."))
				continue
			}
			line.WriteString(fmt.Sprintf("%4s", compactHours(h)))
		}
		line.WriteString(fmt.Sprintf("  %6s", session.DisplayHours(row.Total)))
		fmt.Println(line.String())
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// compactHours keeps the cells at most 4 wide: whole hours print bare,
// fractional ones drop the leading zero.
func compactHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d", int(h))
	}
	return strings.TrimPrefix(fmt.Sprintf("%.1f", h), "0")
}
