package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
	"github.com/ib-ingenieria/horas-cli/internal/views"
)

var (
	monthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	headStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	Nav      views.MonthNav
	Matrix   *models.MonthlyMatrix
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		Nav:      views.CurrentMonth(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Matrix == nil {
		return "Loading report..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetMatrix(nav views.MonthNav, rows []models.GroupedHour) {
	m.Nav = nav
	matrix := views.BuildMatrix(nav, rows)
	m.Matrix = &matrix
	m.Render()
}

func (m *Model) Render() {
	if m.Matrix == nil {
		m.viewport.SetContent("No report loaded.")
		return
	}

	var b strings.Builder

	title := time.Date(m.Nav.Year, time.Month(m.Nav.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	b.WriteString(monthStyle.Render(title) + "\n\n")

	if len(m.Matrix.Rows) == 0 {
		b.WriteString("No hours recorded this month.")
		m.viewport.SetContent(b.String())
		return
	}

	var head strings.Builder
	head.WriteString(fmt.Sprintf("%-12s", ""))
	for day := 1; day <= m.Matrix.DaysInMonth; day++ {
		head.WriteString(fmt.Sprintf("%4d", day))
	}
	head.WriteString("   Total")
	b.WriteString(headStyle.Render(head.String()) + "\n")

	for _, row := range m.Matrix.Rows {
		b.WriteString(fmt.Sprintf("%-12s", clip(row.ShortName, 12)))
		for _, h := range row.Days {
			if h == 0 {
				b.WriteString(emptyStyle.Render("   ."))
				continue
			}
			b.WriteString(fmt.Sprintf("%4s", cell(h)))
		}
		b.WriteString(totalStyle.Render(fmt.Sprintf("  %6s", session.DisplayHours(row.Total))))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// cell keeps the day columns at most 4 wide.
func cell(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d", int(h))
	}
	return strings.TrimPrefix(fmt.Sprintf("%.1f", h), "0")
}
