package views

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// fakeDailyAPI serves a mutable entry set keyed by id.
type fakeDailyAPI struct {
	entries   map[string]models.DailyEntry
	nextID    int
	deleteErr error
	fetches   int
}

func newFakeDailyAPI(entries ...models.DailyEntry) *fakeDailyAPI {
	f := &fakeDailyAPI{entries: make(map[string]models.DailyEntry), nextID: 100}
	for _, e := range entries {
		f.entries[e.ID] = e
	}
	return f
}

func (f *fakeDailyAPI) DailyActivities(_ context.Context, date string, employeeID int) ([]models.DailyEntry, error) {
	f.fetches++
	var out []models.DailyEntry
	for _, e := range f.entries {
		if e.Date == date && e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDailyAPI) DeleteHour(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeDailyAPI) CreateHour(_ context.Context, in api.HourCreate) (models.HourEntry, error) {
	f.nextID++
	id := "id-" + string(rune('a'+f.nextID%26))
	f.entries[id] = models.DailyEntry{
		ID: id, Date: in.Date, EmployeeID: in.EmployeeID,
		ProjectCode: in.ProjectCode, Phase: in.Phase,
		Discipline: in.Discipline, Activity: in.Activity,
		Hours: in.Hours, Note: in.Note,
	}
	return models.HourEntry{ID: id, Date: in.Date, Hours: in.Hours}, nil
}

func testEntry(id string, hours float64) models.DailyEntry {
	return models.DailyEntry{
		ID: id, Date: "2026-03-02", EmployeeID: 7,
		ProjectCode: "P-100", Phase: "DESIGN", Discipline: "CIVIL", Activity: "DRAWINGS",
		Hours: hours,
	}
}

func TestDailyRefreshAndTotal(t *testing.T) {
	fake := newFakeDailyAPI(testEntry("h1", 2), testEntry("h2", 1.5))
	d := NewDaily(fake, 7, "2026-03-02")

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() returned unexpected error: %v", err)
	}
	if len(d.Entries()) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(d.Entries()))
	}
	if d.Total() != 3.5 {
		t.Errorf("Total() = %v, want 3.5", d.Total())
	}
}

func TestDailyDelete(t *testing.T) {
	t.Run("delete refetches", func(t *testing.T) {
		fake := newFakeDailyAPI(testEntry("h1", 2), testEntry("h2", 1.5))
		d := NewDaily(fake, 7, "2026-03-02")
		if err := d.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}

		if err := d.Delete(context.Background(), "h1"); err != nil {
			t.Fatalf("Delete() returned unexpected error: %v", err)
		}
		if len(d.Entries()) != 1 || d.Entries()[0].ID != "h2" {
			t.Errorf("entries after delete = %+v, want only h2", d.Entries())
		}
		if !d.CanUndo() {
			t.Error("CanUndo() = false after delete, want true")
		}
	})

	t.Run("failed delete keeps the list", func(t *testing.T) {
		fake := newFakeDailyAPI(testEntry("h1", 2))
		fake.deleteErr = errors.New("denied")
		d := NewDaily(fake, 7, "2026-03-02")
		if err := d.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}

		if err := d.Delete(context.Background(), "h1"); err == nil {
			t.Fatal("Delete() returned nil error")
		}
		if len(d.Entries()) != 1 {
			t.Errorf("entries changed after failed delete: %+v", d.Entries())
		}
		if d.CanUndo() {
			t.Error("CanUndo() = true after failed delete")
		}
	})
}

func TestDailyUndo(t *testing.T) {
	fake := newFakeDailyAPI(testEntry("h1", 2))
	d := NewDaily(fake, 7, "2026-03-02")
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if err := d.Delete(context.Background(), "h1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	entry, err := d.Undo(context.Background())
	if err != nil {
		t.Fatalf("Undo() returned unexpected error: %v", err)
	}
	if entry.ID == "h1" {
		t.Error("Undo() reused the deleted id; the server assigns a fresh one")
	}
	if len(d.Entries()) != 1 {
		t.Errorf("entries after undo = %+v, want the recreated entry", d.Entries())
	}
	if entry.Hours != 2 {
		t.Errorf("recreated hours = %v, want the captured value 2", entry.Hours)
	}
	if d.CanUndo() {
		t.Error("CanUndo() = true after undo, want false")
	}

	if _, err := d.Undo(context.Background()); err == nil {
		t.Error("second Undo() returned nil error, want nothing-to-undo")
	}
}
