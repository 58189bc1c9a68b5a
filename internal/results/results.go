package results

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/crucible-lang/compiletest/internal/config"
)

// Status is the recorded outcome of one test.
type Status string

const (
	StatusOk      Status = "ok"
	StatusFailed  Status = "failed"
	StatusIgnored Status = "ignored"
)

// ValidStatus reports whether s is one of the recorded statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOk, StatusFailed, StatusIgnored:
		return true
	}
	return false
}

// Run identifies one harness invocation and the configuration axes that
// shaped it. The axes are denormalized strings so the log stays readable
// without this module's types.
type Run struct {
	ID          string    `json:"id" yaml:"id"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	Mode        string    `json:"mode" yaml:"mode"`
	CompareMode string    `json:"compare_mode,omitempty" yaml:"compare_mode,omitempty"`
	Target      string    `json:"target" yaml:"target"`
	Host        string    `json:"host" yaml:"host"`
	StageID     string    `json:"stage_id,omitempty" yaml:"stage_id,omitempty"`
}

// NewRun builds a run record for the given configuration with a fresh ID.
// IDs are UUIDv7, so sorting by ID also sorts by start time.
func NewRun(cfg *config.Config) Run {
	return Run{
		ID:          uuid.Must(uuid.NewV7()).String(),
		StartedAt:   time.Now().UTC(),
		Mode:        cfg.Mode.String(),
		CompareMode: cfg.CompareMode.String(),
		Target:      cfg.Target,
		Host:        cfg.Host,
		StageID:     cfg.StageID,
	}
}

// Outcome is the result of executing one test (or one revision of one
// test) within a run.
type Outcome struct {
	RunID    string        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Test     string        `json:"test" yaml:"test"`
	Revision string        `json:"revision,omitempty" yaml:"revision,omitempty"`
	Status   Status        `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	RunID   string `json:"run_id"`
	Passed  int    `json:"passed"`
	Failed  int    `json:"failed"`
	Ignored int    `json:"ignored"`
	Total   int    `json:"total"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed; %d failed; %d ignored (%d total)",
		s.Passed, s.Failed, s.Ignored, s.Total)
}

// canonicalName normalizes a test name to NFC so log keys are stable
// across platforms that decompose file names differently.
func canonicalName(name string) string {
	return norm.NFC.String(name)
}
