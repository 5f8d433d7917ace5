package models

// HourEntry is a reported-hours record as the server returns it. An empty ID
// denotes an entry that has not been created on the server yet.
type HourEntry struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date"` // YYYY-MM-DD
	EmployeeID  int     `json:"employee_id"`
	ProjectCode string  `json:"project_code"`
	Phase       string  `json:"phase"`
	Discipline  string  `json:"discipline"`
	Activity    string  `json:"activity"`
	Hours       float64 `json:"hours"`
	Note        string  `json:"note,omitempty"`
}

// Path returns the entry's taxonomy path.
func (e HourEntry) Path() TaxonomyPath {
	return TaxonomyPath{
		ProjectCode: e.ProjectCode,
		Phase:       e.Phase,
		Discipline:  e.Discipline,
		Activity:    e.Activity,
	}
}

// DailyEntry is one row of the daily list. It is an HourEntry enriched with
// the resolved project name (the daily-activities endpoint joins it in).
type DailyEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	EmployeeID  int     `json:"employee_id"`
	ProjectCode string  `json:"project_code"`
	ProjectName string  `json:"project_name"`
	Phase       string  `json:"phase"`
	Discipline  string  `json:"discipline"`
	Activity    string  `json:"activity"`
	Hours       float64 `json:"hours"`
	Note        string  `json:"note,omitempty"`
}

// Path returns the entry's taxonomy path.
func (e DailyEntry) Path() TaxonomyPath {
	return TaxonomyPath{
		ProjectCode: e.ProjectCode,
		Phase:       e.Phase,
		Discipline:  e.Discipline,
		Activity:    e.Activity,
	}
}
