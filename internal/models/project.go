package models

// Project is a catalog project.
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Employee is a catalog employee.
type Employee struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// AuthenticatedUser is the logged-in employee, held in memory only for the
// session and destroyed on logout.
type AuthenticatedUser struct {
	ID   int
	Name string
}
