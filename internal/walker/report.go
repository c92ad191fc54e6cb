package walker

import "github.com/mj1618/window-walker/internal/model"

// Stage names the step at which a window failed.
type Stage string

const (
	StageVisit   Stage = "visit"
	StageInject  Stage = "inject"
	StageRestore Stage = "restore"
)

// Report summarizes a walk.
type Report struct {
	DryRun        bool          `yaml:"dry_run"                  json:"dry_run"`
	Filtered      bool          `yaml:"filtered"                 json:"filtered"`
	Enumerated    int           `yaml:"enumerated"               json:"enumerated"`
	Matched       int           `yaml:"matched"                  json:"matched"`
	Visits        []Visit       `yaml:"visits"                   json:"visits"`
	Failures      []Failure     `yaml:"failures"                 json:"failures"`
	RestoreTarget *model.Window `yaml:"restore_target,omitempty" json:"restore_target,omitempty"`
	Restored      bool          `yaml:"restored"                 json:"restored"`
}

// Visit records a window the walk switched to (or previewed).
type Visit struct {
	Window   model.Window `yaml:"window"             json:"window"`
	DryRun   bool         `yaml:"dry_run,omitempty"  json:"dry_run,omitempty"`
	Injected bool         `yaml:"injected,omitempty" json:"injected,omitempty"`
}

// Failure records a window the walk skipped because of an error.
type Failure struct {
	Window model.Window `yaml:"window" json:"window"`
	Stage  Stage        `yaml:"stage"  json:"stage"`
	Error  string       `yaml:"error"  json:"error"`
	Err    error        `yaml:"-"      json:"-"`
}

// VisitedTitles returns the titles of visited windows in order.
func (r *Report) VisitedTitles() []string {
	titles := make([]string, len(r.Visits))
	for i, v := range r.Visits {
		titles[i] = v.Window.Title
	}
	return titles
}
