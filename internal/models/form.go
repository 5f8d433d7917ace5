package models

import "github.com/google/uuid"

// FormData is the whole in-progress entry as the user typed it. Hours is kept
// as the raw string (comma or dot decimal separator) until submit; EmployeeID
// is pinned to the logged-in employee. FormData is what gets persisted as a
// draft on every change.
type FormData struct {
	Date        string `json:"date"` // YYYY-MM-DD
	EmployeeID  int    `json:"employee_id"`
	ProjectCode string `json:"project_code"`
	Phase       string `json:"phase"`
	Discipline  string `json:"discipline"`
	Activity    string `json:"activity"`
	Hours       string `json:"hours"`
	Note        string `json:"note"`
}

// Path returns the form's taxonomy path.
func (f FormData) Path() TaxonomyPath {
	return TaxonomyPath{
		ProjectCode: f.ProjectCode,
		Phase:       f.Phase,
		Discipline:  f.Discipline,
		Activity:    f.Activity,
	}
}

// SetPath copies a taxonomy path into the form.
func (f *FormData) SetPath(p TaxonomyPath) {
	f.ProjectCode = p.ProjectCode
	f.Phase = p.Phase
	f.Discipline = p.Discipline
	f.Activity = p.Activity
}

// Favorite is a saved taxonomy path shortcut. Favorites exist client-side
// only, keyed per employee; the server has no representation of them.
type Favorite struct {
	ID          string `json:"id"`
	ProjectCode string `json:"project_code"`
	Phase       string `json:"phase"`
	Discipline  string `json:"discipline"`
	Activity    string `json:"activity"`
	CreatedAt   string `json:"created_at,omitempty"` // RFC3339
}

// NewFavorite builds a favorite from a taxonomy path with a fresh ID.
func NewFavorite(p TaxonomyPath) Favorite {
	return Favorite{
		ID:          uuid.New().String(),
		ProjectCode: p.ProjectCode,
		Phase:       p.Phase,
		Discipline:  p.Discipline,
		Activity:    p.Activity,
	}
}

// Path returns the favorite's taxonomy path.
func (f Favorite) Path() TaxonomyPath {
	return TaxonomyPath{
		ProjectCode: f.ProjectCode,
		Phase:       f.Phase,
		Discipline:  f.Discipline,
		Activity:    f.Activity,
	}
}
