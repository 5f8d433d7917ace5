package views

import (
	"sort"
	"strconv"
	"time"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// MonthNav is the month-navigation state of the report views. Navigation is
// clamped so the view can never advance past today's month.
type MonthNav struct {
	Year  int
	Month int // 1-12
}

// CurrentMonth returns the navigation state for today's month.
func CurrentMonth() MonthNav {
	now := time.Now()
	return MonthNav{Year: now.Year(), Month: int(now.Month())}
}

// Prev returns the previous month.
func (n MonthNav) Prev() MonthNav {
	t := time.Date(n.Year, time.Month(n.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthNav{Year: t.Year(), Month: int(t.Month())}
}

// Next returns the following month, clamped to the current month.
func (n MonthNav) Next() MonthNav {
	if n.IsCurrent() {
		return n
	}
	t := time.Date(n.Year, time.Month(n.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	next := MonthNav{Year: t.Year(), Month: int(t.Month())}
	cur := CurrentMonth()
	if next.After(cur) {
		return cur
	}
	return next
}

// IsCurrent reports whether this is today's month.
func (n MonthNav) IsCurrent() bool {
	cur := CurrentMonth()
	return n.Year == cur.Year && n.Month == cur.Month
}

// After reports whether n is strictly after other.
func (n MonthNav) After(other MonthNav) bool {
	if n.Year != other.Year {
		return n.Year > other.Year
	}
	return n.Month > other.Month
}

// DaysInMonth returns the number of days of the month.
func (n MonthNav) DaysInMonth() int {
	return time.Date(n.Year, time.Month(n.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMatrix assembles the employee × day grid from per-day grouped rows.
// Rows outside the month and rows with unparseable dates are skipped; rows of
// one employee on one day are summed. Employees sort by short name.
func BuildMatrix(nav MonthNav, rows []models.GroupedHour) models.MonthlyMatrix {
	days := nav.DaysInMonth()
	byEmployee := make(map[string]*models.MatrixRow)

	for _, r := range rows {
		t, err := time.Parse(constants.DateFormat, r.Date)
		if err != nil {
			continue
		}
		if t.Year() != nav.Year || int(t.Month()) != nav.Month {
			continue
		}

		row, ok := byEmployee[r.EmployeeID]
		if !ok {
			row = &models.MatrixRow{
				EmployeeID: r.EmployeeID,
				ShortName:  r.ShortName,
				Days:       make([]float64, days),
			}
			byEmployee[r.EmployeeID] = row
		}
		row.Days[t.Day()-1] += r.Hours
		row.Total += r.Hours
	}

	matrix := models.MonthlyMatrix{
		Year:        nav.Year,
		Month:       nav.Month,
		DaysInMonth: days,
	}
	for _, row := range byEmployee {
		matrix.Rows = append(matrix.Rows, *row)
	}
	sort.Slice(matrix.Rows, func(i, j int) bool {
		a, b := matrix.Rows[i], matrix.Rows[j]
		if a.ShortName != b.ShortName {
			return a.ShortName < b.ShortName
		}
		// Stable fallback for duplicate short names; ids are numeric strings.
		ai, _ := strconv.Atoi(a.EmployeeID)
		bi, _ := strconv.Atoi(b.EmployeeID)
		return ai < bi
	})
	return matrix
}
