package reports

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/views"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// monthFlags is the shared year/month pair of the report commands. Both
// default to the current month and may not point past it.
type monthFlags struct {
	Year  int `short:"y" help:"Report year. Defaults to the current year."`
	Month int `short:"m" help:"Report month (1-12). Defaults to the current month."`
}

func (f *monthFlags) Validate() error {
	if f.Month < 0 || f.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if (f.Year == 0) != (f.Month == 0) {
		return fmt.Errorf("year and month must be given together")
	}
	return nil
}

// nav resolves the flags to a month, clamped to the current month.
func (f *monthFlags) nav() (views.MonthNav, error) {
	cur := views.CurrentMonth()
	if f.Year == 0 {
		return cur, nil
	}
	n := views.MonthNav{Year: f.Year, Month: f.Month}
	if n.After(cur) {
		return n, fmt.Errorf("%d-%02d is in the future", f.Year, f.Month)
	}
	return n, nil
}

func monthTitle(n views.MonthNav) string {
	return time.Date(n.Year, time.Month(n.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
