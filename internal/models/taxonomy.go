package models

// Level identifies one field of a taxonomy path. Levels are ordered: changing
// a level invalidates every level strictly below it.
type Level int

const (
	LevelProject Level = iota
	LevelPhase
	LevelDiscipline
	LevelActivity
)

func (l Level) String() string {
	switch l {
	case LevelProject:
		return "project"
	case LevelPhase:
		return "phase"
	case LevelDiscipline:
		return "discipline"
	case LevelActivity:
		return "activity"
	default:
		return "unknown"
	}
}

// TaxonomyPath is the project/phase/discipline/activity chain that classifies
// an hour or permission entry. Each field is a key into a server-controlled
// catalog; a field is non-empty only if its parent is non-empty.
type TaxonomyPath struct {
	ProjectCode string `json:"project_code"`
	Phase       string `json:"phase"`
	Discipline  string `json:"discipline"`
	Activity    string `json:"activity"`
}

// Get returns the value at the given level.
func (p TaxonomyPath) Get(l Level) string {
	switch l {
	case LevelProject:
		return p.ProjectCode
	case LevelPhase:
		return p.Phase
	case LevelDiscipline:
		return p.Discipline
	case LevelActivity:
		return p.Activity
	}
	return ""
}

// Set sets the value at the given level and clears every level below it.
func (p *TaxonomyPath) Set(l Level, v string) {
	switch l {
	case LevelProject:
		p.ProjectCode = v
		p.Phase = ""
		p.Discipline = ""
		p.Activity = ""
	case LevelPhase:
		p.Phase = v
		p.Discipline = ""
		p.Activity = ""
	case LevelDiscipline:
		p.Discipline = v
		p.Activity = ""
	case LevelActivity:
		p.Activity = v
	}
}

// Complete reports whether all four levels are selected.
func (p TaxonomyPath) Complete() bool {
	return p.ProjectCode != "" && p.Phase != "" && p.Discipline != "" && p.Activity != ""
}
