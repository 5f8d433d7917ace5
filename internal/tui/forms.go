package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type LoginFormModel struct {
	Username string
	Password string
}

type HoursFormModel struct {
	Date  string
	Hours string
	Note  string
}

type PermissionFormModel struct {
	Date  string
	Type  constants.PermissionType
	Hours string
	Note  string
}

func newLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newProjectForm(projects []models.Project, choice *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Code), p.Code))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(opts...).
				Value(choice),
		),
	).WithTheme(huh.ThemeDracula())
}

func newLevelForm(level models.Level, options []string, choice *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}
	title := levelTitle(level)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(choice),
		),
	).WithTheme(huh.ThemeDracula())
}

func levelTitle(level models.Level) string {
	switch level {
	case models.LevelPhase:
		return "Phase"
	case models.LevelDiscipline:
		return "Discipline"
	case models.LevelActivity:
		return "Activity"
	default:
		return "Project"
	}
}

func newHoursDetailForm(fm *HoursFormModel, editing bool) *huh.Form {
	fields := []huh.Field{}
	if !editing {
		fields = append(fields, huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Value(&fm.Date).
			Validate(func(s string) error {
				if _, err := time.Parse(constants.DateFormat, s); err != nil {
					return fmt.Errorf("invalid date, use YYYY-MM-DD")
				}
				return nil
			}))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Hours").
			Value(&fm.Hours).
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
			Value(&fm.Note),
	)
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula())
}

// newPermissionForm builds the request step. The date is fixed on an existing
// request, so the field is omitted when editing.
func newPermissionForm(fm *PermissionFormModel, editing bool) *huh.Form {
	opts := make([]huh.Option[constants.PermissionType], 0, len(constants.PermissionTypes))
	for _, t := range constants.PermissionTypes {
		opts = append(opts, huh.NewOption(constants.PermissionTypeLabel(t), t))
	}

	fields := []huh.Field{}
	if !editing {
		fields = append(fields,
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}))
	}
	fields = append(fields,
		huh.NewSelect[constants.PermissionType]().
			Title("Permission type").
			Options(opts...).
			Value(&fm.Type),
		huh.NewInput().
			Title("Hours").
			Value(&fm.Hours).
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
			Title("Justification").
			Value(&fm.Note).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) < constants.MinNoteLength {
					return fmt.Errorf("justification must be at least %d characters", constants.MinNoteLength)
				}
				return nil
			}))

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula())
}

func newFavoriteForm(favs []models.Favorite, choice *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(favs))
	for _, f := range favs {
		p := f.Path()
		label := fmt.Sprintf("%s > %s > %s > %s", p.ProjectCode, p.Phase, p.Discipline, p.Activity)
		opts = append(opts, huh.NewOption(label, f.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Favorite").
				Options(opts...).
				Value(choice),
		),
	).WithTheme(huh.ThemeDracula())
}
