package cascade

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// Fetcher supplies catalog options for the dependent levels. *api.Client
// satisfies it.
type Fetcher interface {
	Stages(ctx context.Context, projectCode string) ([]string, error)
	Disciplines(ctx context.Context, projectCode, stage string) ([]string, error)
	Activities(ctx context.Context, projectCode, stage, discipline string) ([]string, error)
}

// Selector is the dependent-select state machine driving the hours and
// permissions forms. Selecting a value at any level clears every level
// strictly below it together with its option list, and stages a fetch of the
// next level's options.
//
// Fetches are asynchronous: Select returns a *Fetch describing the work, the
// caller runs it (in the TUI, inside a tea.Cmd) and feeds the Result back
// through Apply. Every fetch carries a per-level sequence number; a result
// whose sequence is no longer current is discarded, so a late response for an
// abandoned ancestor selection can never overwrite newer options.
type Selector struct {
	fetcher Fetcher
	path    models.TaxonomyPath
	options map[models.Level][]string
	loading map[models.Level]bool
	seq     map[models.Level]uint64
}

// New creates an empty selector.
func New(f Fetcher) *Selector {
	return &Selector{
		fetcher: f,
		options: make(map[models.Level][]string),
		loading: make(map[models.Level]bool),
		seq:     make(map[models.Level]uint64),
	}
}

// Path returns the current taxonomy path.
func (s *Selector) Path() models.TaxonomyPath {
	return s.path
}

// Options returns the current option list for a level.
func (s *Selector) Options(l models.Level) []string {
	return s.options[l]
}

// Loading reports whether a fetch for the level is outstanding.
func (s *Selector) Loading(l models.Level) bool {
	return s.loading[l]
}

// Fetch is a staged catalog fetch for one level.
type Fetch struct {
	Level models.Level
	Seq   uint64
	run   func(ctx context.Context) ([]string, error)
}

// Result is the outcome of a Fetch, to be handed to Apply.
type Result struct {
	Level   models.Level
	Seq     uint64
	Options []string
	Err     error
}

// Run executes the fetch. It never panics on failure; the error travels in
// the Result.
func (f *Fetch) Run(ctx context.Context) Result {
	opts, err := f.run(ctx)
	return Result{Level: f.Level, Seq: f.Seq, Options: opts, Err: err}
}

// Select sets the value at the given level, clears all descendant levels and
// their option lists, and returns the staged fetch for the next level. It
// returns nil when nothing needs fetching: the value is empty, or the level
// is terminal.
func (s *Selector) Select(level models.Level, value string) *Fetch {
	s.path.Set(level, value)

	// Descendant option lists are stale no matter what was selected.
	for l := level + 1; l <= models.LevelActivity; l++ {
		delete(s.options, l)
		s.loading[l] = false
		// Invalidate any in-flight fetch for the cleared level.
		s.seq[l]++
	}

	if value == "" || level == models.LevelActivity {
		return nil
	}

	next := level + 1
	s.loading[next] = true
	s.seq[next]++
	seq := s.seq[next]

	p := s.path
	var run func(ctx context.Context) ([]string, error)
	switch next {
	case models.LevelPhase:
		run = func(ctx context.Context) ([]string, error) {
			return s.fetcher.Stages(ctx, p.ProjectCode)
		}
	case models.LevelDiscipline:
		run = func(ctx context.Context) ([]string, error) {
			return s.fetcher.Disciplines(ctx, p.ProjectCode, p.Phase)
		}
	case models.LevelActivity:
		run = func(ctx context.Context) ([]string, error) {
			return s.fetcher.Activities(ctx, p.ProjectCode, p.Phase, p.Discipline)
		}
	}

	return &Fetch{Level: next, Seq: seq, run: run}
}

// Apply folds a fetch result into the selector. Stale results are discarded
// silently. A fetch error leaves the option list empty and is returned once
// so the caller can notify the user; the selector itself never retries and
// never blocks the form.
func (s *Selector) Apply(r Result) error {
	if r.Seq != s.seq[r.Level] {
		logger.Debug("Discarding stale catalog response", "level", r.Level.String(), "seq", r.Seq)
		return nil
	}

	s.loading[r.Level] = false
	if r.Err != nil {
		delete(s.options, r.Level)
		return fmt.Errorf("loading %s options: %w", r.Level.String(), r.Err)
	}

	s.options[r.Level] = r.Options
	return nil
}

// Reset clears the whole selection and all option lists.
func (s *Selector) Reset() {
	s.path = models.TaxonomyPath{}
	for l := models.LevelProject; l <= models.LevelActivity; l++ {
		delete(s.options, l)
		s.loading[l] = false
		s.seq[l]++
	}
}
