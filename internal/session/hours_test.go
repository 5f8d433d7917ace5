package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// fakeHourAPI records the last create/update call.
type fakeHourAPI struct {
	created   *api.HourCreate
	updated   *api.HourUpdate
	updatedID string
	err       error
}

func (f *fakeHourAPI) CreateHour(_ context.Context, in api.HourCreate) (models.HourEntry, error) {
	if f.err != nil {
		return models.HourEntry{}, f.err
	}
	f.created = &in
	return models.HourEntry{
		ID: "new-id", Date: in.Date, EmployeeID: in.EmployeeID,
		ProjectCode: in.ProjectCode, Phase: in.Phase,
		Discipline: in.Discipline, Activity: in.Activity,
		Hours: in.Hours, Note: in.Note,
	}, nil
}

func (f *fakeHourAPI) UpdateHour(_ context.Context, id string, in api.HourUpdate) (models.HourEntry, error) {
	if f.err != nil {
		return models.HourEntry{}, f.err
	}
	f.updated = &in
	f.updatedID = id
	return models.HourEntry{ID: id, Hours: in.Hours}, nil
}

func newTestStore(t *testing.T) localstore.Provider {
	t.Helper()
	store := localstore.NewJSONStore(filepath.Join(t.TempDir(), "horas.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load test store: %v", err)
	}
	return store
}

func fullPath() models.TaxonomyPath {
	return models.TaxonomyPath{
		ProjectCode: "P-100",
		Phase:       "DESIGN",
		Discipline:  "CIVIL",
		Activity:    "DRAWINGS",
	}
}

func TestNormalizeHours(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1,5", 1.5, false},
		{"3,25", 3.25, false},
		{"2.5", 2.5, false},
		{"8", 8, false},
		{" 4,0 ", 4, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1,5x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeHours(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeHours(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeHours(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1,5"},
		{3.25, "3,25"},
		{8, "8"},
		{0.5, "0,5"},
	}

	for _, tt := range tests {
		if got := DisplayHours(tt.in); got != tt.want {
			t.Errorf("DisplayHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormSubmitCreate(t *testing.T) {
	fake := &fakeHourAPI{}
	f := NewForm(fake, newTestStore(t), 7)

	f.SetDate("2026-03-02")
	f.SetPath(fullPath())
	f.SetHours("1,5")
	f.SetNote("morning work")

	entry, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() returned unexpected error: %v", err)
	}

	if fake.created == nil {
		t.Fatal("CreateHour was not called")
	}
	if fake.created.Hours != 1.5 {
		t.Errorf("created.Hours = %v, want 1.5 (comma normalized)", fake.created.Hours)
	}
	if fake.created.Date != "2026-03-02" {
		t.Errorf("created.Date = %q, want the chosen date", fake.created.Date)
	}
	if fake.created.EmployeeID != 7 {
		t.Errorf("created.EmployeeID = %d, want 7", fake.created.EmployeeID)
	}
	if entry.ID != "new-id" {
		t.Errorf("entry.ID = %q, want new-id", entry.ID)
	}

	// Form resets to the pristine default after success.
	data := f.Data()
	if data.ProjectCode != "" || data.Hours != "" || data.Note != "" {
		t.Errorf("form not reset after submit: %+v", data)
	}
	if data.Date != time.Now().Format(constants.DateFormat) {
		t.Errorf("reset date = %q, want today", data.Date)
	}
}

func TestFormSubmitUpdate(t *testing.T) {
	fake := &fakeHourAPI{}
	f := NewForm(fake, newTestStore(t), 7)

	f.LoadForEdit(models.DailyEntry{
		ID: "h1", Date: "2026-03-02", EmployeeID: 7,
		ProjectCode: "P-100", Phase: "DESIGN", Discipline: "CIVIL", Activity: "DRAWINGS",
		Hours: 3.25, Note: "old",
	})

	if f.Data().Hours != "3,25" {
		t.Errorf("edit form hours = %q, want comma form 3,25", f.Data().Hours)
	}
	if !f.Editing() {
		t.Fatal("Editing() = false after LoadForEdit")
	}

	f.SetNote("updated")
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() returned unexpected error: %v", err)
	}

	if fake.created != nil {
		t.Error("CreateHour was called for an edit")
	}
	if fake.updated == nil {
		t.Fatal("UpdateHour was not called")
	}
	if fake.updatedID != "h1" {
		t.Errorf("updated id = %q, want h1", fake.updatedID)
	}
	if fake.updated.Hours != 3.25 {
		t.Errorf("updated.Hours = %v, want 3.25", fake.updated.Hours)
	}
	if f.Editing() {
		t.Error("form still in edit mode after successful update")
	}
}

func TestFormValidate(t *testing.T) {
	f := NewForm(&fakeHourAPI{}, nil, 7)

	if err := f.Validate(); err == nil {
		t.Error("Validate() on empty form returned nil")
	}

	f.SetPath(fullPath())
	f.SetHours("0")
	if err := f.Validate(); err == nil {
		t.Error("Validate() with zero hours returned nil")
	}

	f.SetHours("2")
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() on complete form returned %v", err)
	}
}

func TestFormFailedSubmitKeepsState(t *testing.T) {
	fake := &fakeHourAPI{err: errors.New("server down")}
	f := NewForm(fake, newTestStore(t), 7)

	f.SetPath(fullPath())
	f.SetHours("2")
	f.SetNote("keep me")

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("Submit() returned nil error for failing API")
	}

	data := f.Data()
	if data.ProjectCode != "P-100" || data.Hours != "2" || data.Note != "keep me" {
		t.Errorf("form state lost after failed submit: %+v", data)
	}
}

func TestDraftMirroring(t *testing.T) {
	store := newTestStore(t)

	f := NewForm(&fakeHourAPI{}, store, 7)
	f.SetPath(fullPath())
	f.SetHours("1,5")
	f.SetNote("draft note")

	// A new form over the same store restores the draft.
	f2 := NewForm(&fakeHourAPI{}, store, 7)
	data := f2.Data()
	if data.ProjectCode != "P-100" || data.Hours != "1,5" || data.Note != "draft note" {
		t.Errorf("draft not restored: %+v", data)
	}

	// Drafts are per employee.
	f3 := NewForm(&fakeHourAPI{}, store, 8)
	if f3.Data().ProjectCode != "" {
		t.Errorf("employee 8 restored employee 7's draft: %+v", f3.Data())
	}

	// Reset mirrors the empty state back to the draft.
	f2.Reset()
	f4 := NewForm(&fakeHourAPI{}, store, 7)
	if f4.Data().ProjectCode != "" || f4.Data().Hours != "" {
		t.Errorf("draft not cleared by Reset: %+v", f4.Data())
	}
}

func TestDraftRestorePinsEmployee(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveDraft(7, constants.FormHours, models.FormData{
		EmployeeID:  99, // tampered or stale
		ProjectCode: "P-100",
	}); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}

	f := NewForm(&fakeHourAPI{}, store, 7)
	if f.Data().EmployeeID != 7 {
		t.Errorf("restored draft employee = %d, want re-pinned to 7", f.Data().EmployeeID)
	}
}
