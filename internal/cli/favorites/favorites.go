package favorites

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func renderPath(p models.TaxonomyPath) string {
	return fmt.Sprintf("%s > %s > %s > %s", p.ProjectCode, p.Phase, p.Discipline, p.Activity)
}
