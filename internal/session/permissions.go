package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// PermissionAPI is the slice of the API client the permissions form needs.
type PermissionAPI interface {
	CreatePermission(ctx context.Context, in api.PermissionCreate) (models.PermissionEntry, error)
	UpdatePermission(ctx context.Context, id string, in api.PermissionUpdate) (models.PermissionEntry, error)
}

// PermissionForm is the permissions counterpart of Form. The taxonomy is
// pinned to the reserved internal project; the activity field carries the
// permission type and the note is the required justification. Status and
// response come from the reviewer and are never sent.
type PermissionForm struct {
	api        PermissionAPI
	store      localstore.Provider
	employeeID int

	data      models.FormData
	editingID string

	OnSuccess func()
}

// NewPermissionForm creates a permissions form for the employee, restoring a
// persisted draft when one exists.
func NewPermissionForm(permAPI PermissionAPI, store localstore.Provider, employeeID int) *PermissionForm {
	f := &PermissionForm{
		api:        permAPI,
		store:      store,
		employeeID: employeeID,
		data:       emptyPermissionForm(employeeID),
	}

	if store != nil {
		if draft, err := store.Draft(employeeID, constants.FormPermissions); err == nil {
			draft.EmployeeID = employeeID
			draft.ProjectCode = constants.PermissionProjectCode
			draft.Phase = constants.PermissionPhase
			draft.Discipline = constants.PermissionDiscipline
			if draft.Date == "" {
				draft.Date = today()
			}
			f.data = draft
		} else if err != localstore.ErrNoDraft {
			logger.Warn("Could not restore permissions draft", "error", err)
		}
	}

	return f
}

func emptyPermissionForm(employeeID int) models.FormData {
	return models.FormData{
		Date:        today(),
		EmployeeID:  employeeID,
		ProjectCode: constants.PermissionProjectCode,
		Phase:       constants.PermissionPhase,
		Discipline:  constants.PermissionDiscipline,
		Activity:    string(constants.PermissionPaid),
		Hours:       constants.DefaultPermissionHrs,
	}
}

// Data returns the current form state.
func (f *PermissionForm) Data() models.FormData {
	return f.data
}

// EditingID returns the id of the request being edited, or "" in create mode.
func (f *PermissionForm) EditingID() string {
	return f.editingID
}

// Editing reports whether the form is in edit mode.
func (f *PermissionForm) Editing() bool {
	return f.editingID != ""
}

// SetDate sets the permission date.
func (f *PermissionForm) SetDate(date string) {
	f.data.Date = date
	f.mirrorDraft()
}

// SetType sets the permission type.
func (f *PermissionForm) SetType(t constants.PermissionType) {
	f.data.Activity = string(t)
	f.mirrorDraft()
}

// SetHours sets the raw hours string.
func (f *PermissionForm) SetHours(hours string) {
	f.data.Hours = hours
	f.mirrorDraft()
}

// SetNote sets the justification note.
func (f *PermissionForm) SetNote(note string) {
	f.data.Note = note
	f.mirrorDraft()
}

func (f *PermissionForm) mirrorDraft() {
	if f.store == nil {
		return
	}
	if err := f.store.SaveDraft(f.employeeID, constants.FormPermissions, f.data); err != nil {
		logger.Warn("Could not persist permissions draft", "error", err)
	}
}

// Validate returns a single aggregate error naming everything missing, or nil.
func (f *PermissionForm) Validate() error {
	var missing []string
	if f.data.Date == "" {
		missing = append(missing, "date")
	}
	if f.data.Activity == "" {
		missing = append(missing, "permission type")
	}
	if v, err := NormalizeHours(f.data.Hours); err != nil || v <= 0 {
		missing = append(missing, "hours (> 0)")
	}
	if len(strings.TrimSpace(f.data.Note)) < constants.MinNoteLength {
		missing = append(missing, fmt.Sprintf("justification (min %d characters)", constants.MinNoteLength))
	}
	if len(missing) > 0 {
		return fmt.Errorf("please complete all required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Submit validates and sends the request: POST for a new request, PUT for the
// one being edited. On success the form resets and leaves edit mode.
func (f *PermissionForm) Submit(ctx context.Context) (models.PermissionEntry, error) {
	if err := f.Validate(); err != nil {
		return models.PermissionEntry{}, err
	}

	hours, err := NormalizeHours(f.data.Hours)
	if err != nil {
		return models.PermissionEntry{}, err
	}

	var entry models.PermissionEntry
	if f.editingID == "" {
		entry, err = f.api.CreatePermission(ctx, api.PermissionCreate{
			Date:        f.data.Date,
			EmployeeID:  f.employeeID,
			ProjectCode: constants.PermissionProjectCode,
			Phase:       constants.PermissionPhase,
			Discipline:  constants.PermissionDiscipline,
			Activity:    f.data.Activity,
			Hours:       hours,
			Note:        f.data.Note,
		})
	} else {
		entry, err = f.api.UpdatePermission(ctx, f.editingID, api.PermissionUpdate{
			ProjectCode: constants.PermissionProjectCode,
			Phase:       constants.PermissionPhase,
			Discipline:  constants.PermissionDiscipline,
			Activity:    f.data.Activity,
			Hours:       hours,
			Note:        f.data.Note,
		})
	}
	if err != nil {
		return models.PermissionEntry{}, err
	}

	f.Reset()
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return entry, nil
}

// Reset restores the default request and leaves edit mode.
func (f *PermissionForm) Reset() {
	f.data = emptyPermissionForm(f.employeeID)
	f.editingID = ""
	f.mirrorDraft()
}

// LoadForEdit copies an existing request into the form and enters edit mode.
func (f *PermissionForm) LoadForEdit(e models.PermissionEntry) {
	f.data = models.FormData{
		Date:        e.Date,
		EmployeeID:  f.employeeID,
		ProjectCode: constants.PermissionProjectCode,
		Phase:       constants.PermissionPhase,
		Discipline:  constants.PermissionDiscipline,
		Activity:    e.Activity,
		Hours:       DisplayHours(e.Hours),
		Note:        e.Note,
	}
	f.editingID = e.ID
	f.mirrorDraft()
}
