package models

// GroupedHour is one row of the grouped-by-employee monthly report: summed
// hours for one employee on one day. EmployeeID is a string on the wire.
type GroupedHour struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	EmployeeID string  `json:"employee_id"`
	ShortName  string  `json:"short_name"`
	Hours      float64 `json:"hours"`
}

// MonthlyMatrix is the employee × day grid of summed hours for one month.
// Days are indexed 1..DaysInMonth.
type MonthlyMatrix struct {
	Year        int
	Month       int
	DaysInMonth int
	Rows        []MatrixRow
}

// MatrixRow is one employee's row of the monthly matrix.
type MatrixRow struct {
	EmployeeID string
	ShortName  string
	Days       []float64 // length DaysInMonth, index 0 = day 1
	Total      float64
}
