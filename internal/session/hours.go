package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// HourAPI is the slice of the API client the hours form needs.
type HourAPI interface {
	CreateHour(ctx context.Context, in api.HourCreate) (models.HourEntry, error)
	UpdateHour(ctx context.Context, id string, in api.HourUpdate) (models.HourEntry, error)
}

// Form holds the in-progress hours entry: the typed field values, whether an
// existing record is being edited, and the draft mirroring. Every field
// change is written through to the draft store immediately; the draft is the
// latest form state at all times and never expires on its own.
type Form struct {
	api        HourAPI
	store      localstore.Provider
	employeeID int

	data      models.FormData
	editingID string

	// OnSuccess runs after every successful submit, before the form resets
	// state is reported back. Optional.
	OnSuccess func()
}

// NewForm creates an hours form for the employee, restoring a persisted
// draft when one exists.
func NewForm(hourAPI HourAPI, store localstore.Provider, employeeID int) *Form {
	f := &Form{
		api:        hourAPI,
		store:      store,
		employeeID: employeeID,
		data:       emptyHoursForm(employeeID),
	}

	if store != nil {
		if draft, err := store.Draft(employeeID, constants.FormHours); err == nil {
			draft.EmployeeID = employeeID
			if draft.Date == "" {
				draft.Date = today()
			}
			f.data = draft
		} else if err != localstore.ErrNoDraft {
			logger.Warn("Could not restore draft", "error", err)
		}
	}

	return f
}

func emptyHoursForm(employeeID int) models.FormData {
	return models.FormData{
		Date:       today(),
		EmployeeID: employeeID,
	}
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}

// Data returns the current form state.
func (f *Form) Data() models.FormData {
	return f.data
}

// EditingID returns the id of the record being edited, or "" in create mode.
func (f *Form) EditingID() string {
	return f.editingID
}

// Editing reports whether the form is in edit mode.
func (f *Form) Editing() bool {
	return f.editingID != ""
}

// SetDate sets the entry date (create mode only; dates are immutable after
// creation and the field is ignored on update).
func (f *Form) SetDate(date string) {
	f.data.Date = date
	f.mirrorDraft()
}

// SetPath copies the selector's taxonomy path into the form.
func (f *Form) SetPath(p models.TaxonomyPath) {
	f.data.SetPath(p)
	f.mirrorDraft()
}

// SetHours sets the raw hours string as typed (comma or dot separator).
func (f *Form) SetHours(hours string) {
	f.data.Hours = hours
	f.mirrorDraft()
}

// SetNote sets the note.
func (f *Form) SetNote(note string) {
	f.data.Note = note
	f.mirrorDraft()
}

func (f *Form) mirrorDraft() {
	if f.store == nil {
		return
	}
	if err := f.store.SaveDraft(f.employeeID, constants.FormHours, f.data); err != nil {
		logger.Warn("Could not persist draft", "error", err)
	}
}

// NormalizeHours converts a typed hours value to its numeric form. Comma and
// dot decimal separators are both accepted; the numeric value is always
// dot-form.
func NormalizeHours(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("hours is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours value %q", s)
	}
	return v, nil
}

// DisplayHours renders a numeric hours value for editing, using the comma
// decimal separator of the locale convention.
func DisplayHours(v float64) string {
	return strings.ReplaceAll(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), "."), ".", ",")
}

// IsValid reports whether the form can be submitted: full taxonomy path and
// positive hours.
func (f *Form) IsValid() bool {
	if !f.data.Path().Complete() {
		return false
	}
	v, err := NormalizeHours(f.data.Hours)
	return err == nil && v > 0
}

// Validate returns a single aggregate error naming everything missing, or nil.
func (f *Form) Validate() error {
	var missing []string
	if f.data.Date == "" {
		missing = append(missing, "date")
	}
	if f.data.ProjectCode == "" {
		missing = append(missing, "project")
	}
	if f.data.Phase == "" {
		missing = append(missing, "phase")
	}
	if f.data.Discipline == "" {
		missing = append(missing, "discipline")
	}
	if f.data.Activity == "" {
		missing = append(missing, "activity")
	}
	if v, err := NormalizeHours(f.data.Hours); err != nil || v <= 0 {
		missing = append(missing, "hours (> 0)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("please complete all required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Submit validates and sends the entry: POST for a new record, PUT for the
// record being edited (without the immutable date). On success the form
// resets to the pristine default and leaves edit mode. There is no automatic
// retry; on failure the form state is preserved so the user can resubmit.
func (f *Form) Submit(ctx context.Context) (models.HourEntry, error) {
	if err := f.Validate(); err != nil {
		return models.HourEntry{}, err
	}

	hours, err := NormalizeHours(f.data.Hours)
	if err != nil {
		return models.HourEntry{}, err
	}

	var entry models.HourEntry
	if f.editingID == "" {
		entry, err = f.api.CreateHour(ctx, api.HourCreate{
			Date:        f.data.Date,
			EmployeeID:  f.employeeID,
			ProjectCode: f.data.ProjectCode,
			Phase:       f.data.Phase,
			Discipline:  f.data.Discipline,
			Activity:    f.data.Activity,
			Hours:       hours,
			Note:        f.data.Note,
		})
	} else {
		entry, err = f.api.UpdateHour(ctx, f.editingID, api.HourUpdate{
			ProjectCode: f.data.ProjectCode,
			Phase:       f.data.Phase,
			Discipline:  f.data.Discipline,
			Activity:    f.data.Activity,
			Hours:       hours,
			Note:        f.data.Note,
		})
	}
	if err != nil {
		return models.HourEntry{}, err
	}

	f.Reset()
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return entry, nil
}

// Reset restores the empty-with-employee default and leaves edit mode. The
// draft mirrors the reset state.
func (f *Form) Reset() {
	f.data = emptyHoursForm(f.employeeID)
	f.editingID = ""
	f.mirrorDraft()
}

// LoadForEdit copies an existing entry into the form and enters edit mode.
// The hours value is shown comma-form for editing. The caller is responsible
// for replaying the cascade so the dependent options are populated.
func (f *Form) LoadForEdit(e models.DailyEntry) {
	f.data = models.FormData{
		Date:        e.Date,
		EmployeeID:  f.employeeID,
		ProjectCode: e.ProjectCode,
		Phase:       e.Phase,
		Discipline:  e.Discipline,
		Activity:    e.Activity,
		Hours:       DisplayHours(e.Hours),
		Note:        e.Note,
	}
	f.editingID = e.ID
	f.mirrorDraft()
}
