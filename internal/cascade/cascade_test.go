package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// fakeFetcher serves a fixed catalog tree and counts calls.
type fakeFetcher struct {
	stages      map[string][]string
	disciplines map[string][]string
	activities  map[string][]string
	err         error
	calls       int
}

func (f *fakeFetcher) Stages(_ context.Context, project string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stages[project], nil
}

func (f *fakeFetcher) Disciplines(_ context.Context, project, stage string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.disciplines[project+"/"+stage], nil
}

func (f *fakeFetcher) Activities(_ context.Context, project, stage, discipline string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.activities[project+"/"+stage+"/"+discipline], nil
}

func newTestFetcher() *fakeFetcher {
	return &fakeFetcher{
		stages: map[string][]string{
			"P-100": {"DESIGN", "BUILD"},
		},
		disciplines: map[string][]string{
			"P-100/DESIGN": {"CIVIL", "ELECTRICAL"},
		},
		activities: map[string][]string{
			"P-100/DESIGN/CIVIL": {"DRAWINGS", "REVIEW"},
		},
	}
}

func TestSelectCascade(t *testing.T) {
	t.Run("selecting a project stages a phase fetch", func(t *testing.T) {
		s := New(newTestFetcher())

		fetch := s.Select(models.LevelProject, "P-100")
		if fetch == nil {
			t.Fatal("Select() returned nil fetch, want a staged phase fetch")
		}
		if fetch.Level != models.LevelPhase {
			t.Errorf("fetch.Level = %v, want LevelPhase", fetch.Level)
		}
		if !s.Loading(models.LevelPhase) {
			t.Error("Loading(LevelPhase) = false, want true while fetch outstanding")
		}

		res := fetch.Run(context.Background())
		if err := s.Apply(res); err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}
		got := s.Options(models.LevelPhase)
		if len(got) != 2 || got[0] != "DESIGN" {
			t.Errorf("Options(LevelPhase) = %v, want [DESIGN BUILD]", got)
		}
	})

	t.Run("selecting terminal level stages nothing", func(t *testing.T) {
		s := New(newTestFetcher())
		if fetch := s.Select(models.LevelActivity, "DRAWINGS"); fetch != nil {
			t.Errorf("Select(LevelActivity) returned fetch for level %v, want nil", fetch.Level)
		}
	})

	t.Run("clearing a value stages nothing", func(t *testing.T) {
		s := New(newTestFetcher())
		if fetch := s.Select(models.LevelProject, ""); fetch != nil {
			t.Error("Select with empty value returned a fetch, want nil")
		}
	})
}

func TestSelectInvalidatesDescendants(t *testing.T) {
	s := New(newTestFetcher())

	// Walk the full path down to the activity.
	for _, step := range []struct {
		level models.Level
		value string
	}{
		{models.LevelProject, "P-100"},
		{models.LevelPhase, "DESIGN"},
		{models.LevelDiscipline, "CIVIL"},
	} {
		fetch := s.Select(step.level, step.value)
		if fetch == nil {
			t.Fatalf("Select(%v, %q) returned nil fetch", step.level, step.value)
		}
		if err := s.Apply(fetch.Run(context.Background())); err != nil {
			t.Fatalf("Apply() failed at %v: %v", step.level, err)
		}
	}
	s.Select(models.LevelActivity, "DRAWINGS")

	// Re-selecting the phase must clear discipline and activity.
	s.Select(models.LevelPhase, "BUILD")

	p := s.Path()
	if p.Discipline != "" || p.Activity != "" {
		t.Errorf("descendant values not cleared: discipline=%q activity=%q", p.Discipline, p.Activity)
	}
	if opts := s.Options(models.LevelDiscipline); opts != nil {
		t.Errorf("Options(LevelDiscipline) = %v after re-selection, want nil", opts)
	}
	if opts := s.Options(models.LevelActivity); opts != nil {
		t.Errorf("Options(LevelActivity) = %v after re-selection, want nil", opts)
	}
}

func TestApplyDiscardsStaleResult(t *testing.T) {
	s := New(newTestFetcher())

	// First selection's fetch is run but held back.
	stale := s.Select(models.LevelProject, "P-100")
	staleRes := stale.Run(context.Background())

	// A newer selection for the same level bumps the sequence.
	fresh := s.Select(models.LevelProject, "P-100")
	freshRes := fresh.Run(context.Background())
	freshRes.Options = []string{"ONLY"}

	if err := s.Apply(freshRes); err != nil {
		t.Fatalf("Apply(fresh) returned unexpected error: %v", err)
	}
	if err := s.Apply(staleRes); err != nil {
		t.Fatalf("Apply(stale) returned unexpected error: %v", err)
	}

	got := s.Options(models.LevelPhase)
	if len(got) != 1 || got[0] != "ONLY" {
		t.Errorf("stale result overwrote fresh options: got %v, want [ONLY]", got)
	}
}

func TestApplyFetchError(t *testing.T) {
	f := newTestFetcher()
	s := New(f)

	fetch := s.Select(models.LevelProject, "P-100")
	f.err = errors.New("boom")

	err := s.Apply(fetch.Run(context.Background()))
	if err == nil {
		t.Fatal("Apply() returned nil error for a failed fetch")
	}
	if s.Loading(models.LevelPhase) {
		t.Error("Loading(LevelPhase) = true after failed fetch, want false")
	}
	if opts := s.Options(models.LevelPhase); len(opts) != 0 {
		t.Errorf("Options(LevelPhase) = %v after failed fetch, want empty", opts)
	}
}

func TestReset(t *testing.T) {
	s := New(newTestFetcher())
	fetch := s.Select(models.LevelProject, "P-100")
	if err := s.Apply(fetch.Run(context.Background())); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	s.Reset()

	if p := s.Path(); p.ProjectCode != "" {
		t.Errorf("Path().ProjectCode = %q after Reset, want empty", p.ProjectCode)
	}
	if opts := s.Options(models.LevelPhase); opts != nil {
		t.Errorf("Options(LevelPhase) = %v after Reset, want nil", opts)
	}
}

func TestReplay(t *testing.T) {
	fullPath := models.TaxonomyPath{
		ProjectCode: "P-100",
		Phase:       "DESIGN",
		Discipline:  "CIVIL",
		Activity:    "DRAWINGS",
	}

	t.Run("valid path replays fully", func(t *testing.T) {
		s := New(newTestFetcher())
		if err := s.Replay(context.Background(), fullPath); err != nil {
			t.Fatalf("Replay() returned unexpected error: %v", err)
		}
		if got := s.Path(); got != fullPath {
			t.Errorf("Path() = %+v, want %+v", got, fullPath)
		}
		if opts := s.Options(models.LevelActivity); len(opts) != 2 {
			t.Errorf("Options(LevelActivity) = %v, want two options", opts)
		}
	})

	t.Run("vanished value stops at deepest valid level", func(t *testing.T) {
		f := newTestFetcher()
		f.disciplines["P-100/DESIGN"] = []string{"ELECTRICAL"} // CIVIL removed

		s := New(f)
		err := s.Replay(context.Background(), fullPath)

		var stale *StaleError
		if !errors.As(err, &stale) {
			t.Fatalf("Replay() error = %v, want *StaleError", err)
		}
		if stale.Level != models.LevelDiscipline || stale.Value != "CIVIL" {
			t.Errorf("StaleError = %+v, want discipline CIVIL", stale)
		}

		p := s.Path()
		if p.ProjectCode != "P-100" || p.Phase != "DESIGN" {
			t.Errorf("valid prefix not kept: %+v", p)
		}
		if p.Discipline != "" || p.Activity != "" {
			t.Errorf("stale suffix not cleared: %+v", p)
		}
		if opts := s.Options(models.LevelDiscipline); len(opts) != 1 {
			t.Errorf("Options(LevelDiscipline) = %v, want the fresh list", opts)
		}
	})

	t.Run("partial path replays to its depth", func(t *testing.T) {
		s := New(newTestFetcher())
		partial := models.TaxonomyPath{ProjectCode: "P-100", Phase: "DESIGN"}
		if err := s.Replay(context.Background(), partial); err != nil {
			t.Fatalf("Replay() returned unexpected error: %v", err)
		}
		if opts := s.Options(models.LevelDiscipline); len(opts) != 2 {
			t.Errorf("Options(LevelDiscipline) = %v, want two options", opts)
		}
	})
}
