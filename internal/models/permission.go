package models

// PermissionEntry is a leave-permission request. It shares the reported-hours
// shape with a reserved internal taxonomy; the activity field carries the
// permission type. Status and Response are written by the reviewer and are
// read-only from this client's perspective.
type PermissionEntry struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date"` // YYYY-MM-DD
	EmployeeID  int     `json:"employee_id"`
	ProjectCode string  `json:"project_code"`
	Phase       string  `json:"phase"`
	Discipline  string  `json:"discipline"`
	Activity    string  `json:"activity"`
	Hours       float64 `json:"hours"`
	Note        string  `json:"note,omitempty"`
	Status      string  `json:"status,omitempty"`
	Response    string  `json:"response,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}
