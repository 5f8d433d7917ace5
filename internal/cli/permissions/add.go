package permissions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type AddCmd struct {
	Date  string `short:"d" help:"Permission date (YYYY-MM-DD). Defaults to today."`
	Type  string `short:"t" help:"Permission type. Prompted when omitted."`
	Hours string `help:"Hours requested. Defaults to a full day."`
	Note  string `short:"n" help:"Justification (at least 5 characters). Prompted when omitted."`
}

func (c *AddCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
	}
	if c.Type != "" && !validType(c.Type) {
		return fmt.Errorf("unknown permission type %q, one of: %s", c.Type, typeNames())
	}
	return nil
}

func validType(s string) bool {
	for _, t := range constants.PermissionTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

func typeNames() string {
	names := make([]string, 0, len(constants.PermissionTypes))
	for _, t := range constants.PermissionTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func (c *AddCmd) Run(appCtx *cli.Context) error {
	ctx := context.Background()
	user, err := appCtx.RequireUser(ctx)
	if err != nil {
		return err
	}

	form := session.NewPermissionForm(appCtx.API, appCtx.Store, user.ID)
	if c.Date != "" {
		form.SetDate(c.Date)
	}
	if c.Hours != "" {
		form.SetHours(c.Hours)
	}
	if c.Type != "" {
		form.SetType(constants.PermissionType(c.Type))
	}
	if c.Note != "" {
		form.SetNote(c.Note)
	}

	if c.Type == "" || c.Note == "" {
		if err := promptMissing(form, c.Type == "", c.Note == ""); err != nil {
			return err
		}
	}

	entry, err := form.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Requested %s (%sh) on %s\n",
		constants.PermissionTypeLabel(constants.PermissionType(entry.Activity)),
		session.DisplayHours(entry.Hours), entry.Date)
	return nil
}

func promptMissing(form *session.PermissionForm, needType, needNote bool) error {
	permType := constants.PermissionType(form.Data().Activity)
	note := form.Data().Note

	var fields []huh.Field
	if needType {
		opts := make([]huh.Option[constants.PermissionType], 0, len(constants.PermissionTypes))
		for _, t := range constants.PermissionTypes {
			opts = append(opts, huh.NewOption(constants.PermissionTypeLabel(t), t))
		}
		fields = append(fields, huh.NewSelect[constants.PermissionType]().
			Title("Permission type").
			Options(opts...).
			Value(&permType))
	}
	if needNote {
		fields = append(fields, huh.NewInput().
			Title("Justification").
			Value(&note).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) < constants.MinNoteLength {
					return fmt.Errorf("justification must be at least %d characters", constants.MinNoteLength)
				}
				return nil
			}))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	form.SetType(permType)
	form.SetNote(note)
	return nil
}
