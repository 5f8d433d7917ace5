package permissions

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type ListCmd struct {
	From string `help:"Start of the date range (YYYY-MM-DD)."`
	To   string `help:"End of the date range (YYYY-MM-DD)."`
}

func (c *ListCmd) Validate() error {
	for _, d := range []string{c.From, c.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
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

	entries, err := appCtx.API.Permissions(ctx, user.ID, c.From, c.To)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No permission requests found.")
		return nil
	}

	fmt.Println(headerStyle.Render("Permission requests"))
	for _, e := range entries {
		fmt.Printf("  %s  %s  %-5s  %s  %s\n",
			dimStyle.Render(e.ID),
			e.Date,
			session.DisplayHours(e.Hours)+"h",
			constants.PermissionTypeLabel(constants.PermissionType(e.Activity)),
			renderStatus(e.Status))
		if e.Note != "" {
			fmt.Printf("          %s\n", dimStyle.Render(e.Note))
		}
		if e.Response != "" {
			fmt.Printf("          %s\n", dimStyle.Render("Reviewer: "+e.Response))
		}
	}
	return nil
}

func renderStatus(status string) string {
	switch status {
	case "APROBADO":
		return approvedStyle.Render(status)
	case "RECHAZADO":
		return rejectedStyle.Render(status)
	case "":
		return dimStyle.Render("PENDIENTE")
	default:
		return status
	}
}
