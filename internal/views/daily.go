package views

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// DailyAPI is the slice of the API client the daily list needs.
type DailyAPI interface {
	DailyActivities(ctx context.Context, date string, employeeID int) ([]models.DailyEntry, error)
	DeleteHour(ctx context.Context, id string) error
	CreateHour(ctx context.Context, in api.HourCreate) (models.HourEntry, error)
}

// Daily is the list of one employee's entries on one calendar date. It is
// re-fetched whenever the date changes and after every successful submit or
// delete.
type Daily struct {
	api        DailyAPI
	employeeID int

	date    string
	entries []models.DailyEntry

	lastDeleted *models.DailyEntry
}

// NewDaily creates a daily list for the employee, keyed to the given date.
func NewDaily(dailyAPI DailyAPI, employeeID int, date string) *Daily {
	return &Daily{
		api:        dailyAPI,
		employeeID: employeeID,
		date:       date,
	}
}

// Date returns the selected date.
func (d *Daily) Date() string {
	return d.date
}

// SetDate changes the selected date. The caller refreshes afterwards.
func (d *Daily) SetDate(date string) {
	d.date = date
}

// Entries returns the current list.
func (d *Daily) Entries() []models.DailyEntry {
	return d.entries
}

// Total returns the summed hours of the current list.
func (d *Daily) Total() float64 {
	var total float64
	for _, e := range d.entries {
		total += e.Hours
	}
	return total
}

// Refresh re-fetches the list for the current date and employee.
func (d *Daily) Refresh(ctx context.Context) error {
	entries, err := d.api.DailyActivities(ctx, d.date, d.employeeID)
	if err != nil {
		return fmt.Errorf("loading daily activities: %w", err)
	}
	d.entries = entries
	return nil
}

// Delete removes an entry by id and re-fetches the list. The removal is not
// reflected before the server acknowledges it. The deleted values are kept so
// Undo can resubmit them.
func (d *Daily) Delete(ctx context.Context, id string) error {
	var captured *models.DailyEntry
	for i := range d.entries {
		if d.entries[i].ID == id {
			e := d.entries[i]
			captured = &e
			break
		}
	}

	if err := d.api.DeleteHour(ctx, id); err != nil {
		return err
	}
	d.lastDeleted = captured

	return d.Refresh(ctx)
}

// CanUndo reports whether a deleted entry is available for resubmission.
func (d *Daily) CanUndo() bool {
	return d.lastDeleted != nil
}

// Undo resubmits the captured values of the last deleted entry as a brand-new
// record. The server assigns a new id: this is a re-creation, not a true
// undo. The list is re-fetched on success.
func (d *Daily) Undo(ctx context.Context) (models.HourEntry, error) {
	if d.lastDeleted == nil {
		return models.HourEntry{}, fmt.Errorf("nothing to undo")
	}

	e := *d.lastDeleted
	entry, err := d.api.CreateHour(ctx, api.HourCreate{
		Date:        e.Date,
		EmployeeID:  e.EmployeeID,
		ProjectCode: e.ProjectCode,
		Phase:       e.Phase,
		Discipline:  e.Discipline,
		Activity:    e.Activity,
		Hours:       e.Hours,
		Note:        e.Note,
	})
	if err != nil {
		return models.HourEntry{}, err
	}
	d.lastDeleted = nil

	return entry, d.Refresh(ctx)
}
