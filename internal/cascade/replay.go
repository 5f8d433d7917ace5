package cascade

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// StaleError reports that a replayed path no longer matches the current
// catalogs: the server's option list for Level does not contain Value. The
// selection made so far (everything above Level) is kept.
type StaleError struct {
	Level models.Level
	Value string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("catalog no longer contains %s %q", e.Level.String(), e.Value)
}

// Replay re-runs the cascade synchronously for a complete path, as needed
// when applying a favorite or loading a record for edit: each level's options
// are fetched fresh and the expected value is verified to still be present
// before descending. Replay stops early with a *StaleError when a value has
// disappeared from the catalog, leaving the selector at the deepest level
// that still validated.
func (s *Selector) Replay(ctx context.Context, p models.TaxonomyPath) error {
	s.Reset()
	if p.ProjectCode == "" {
		return nil
	}
	s.path.Set(models.LevelProject, p.ProjectCode)

	stages, err := s.fetcher.Stages(ctx, p.ProjectCode)
	if err != nil {
		return fmt.Errorf("loading phase options: %w", err)
	}
	s.options[models.LevelPhase] = stages
	if p.Phase == "" {
		return nil
	}
	if !contains(stages, p.Phase) {
		return &StaleError{Level: models.LevelPhase, Value: p.Phase}
	}
	s.path.Set(models.LevelPhase, p.Phase)

	disciplines, err := s.fetcher.Disciplines(ctx, p.ProjectCode, p.Phase)
	if err != nil {
		return fmt.Errorf("loading discipline options: %w", err)
	}
	s.options[models.LevelDiscipline] = disciplines
	if p.Discipline == "" {
		return nil
	}
	if !contains(disciplines, p.Discipline) {
		return &StaleError{Level: models.LevelDiscipline, Value: p.Discipline}
	}
	s.path.Set(models.LevelDiscipline, p.Discipline)

	activities, err := s.fetcher.Activities(ctx, p.ProjectCode, p.Phase, p.Discipline)
	if err != nil {
		return fmt.Errorf("loading activity options: %w", err)
	}
	s.options[models.LevelActivity] = activities
	if p.Activity == "" {
		return nil
	}
	if !contains(activities, p.Activity) {
		return &StaleError{Level: models.LevelActivity, Value: p.Activity}
	}
	s.path.Set(models.LevelActivity, p.Activity)

	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
