package domain

import (
	"fmt"
	"time"
)

// Report is the outcome of a single workflow run. The engine always
// returns one: failures are captured here rather than raised, so the
// engine boundary is the single recovery point.
type Report struct {
	Project    string    `json:"project"`
	Amount     float64   `json:"amount,omitempty"`
	Receipt    *Receipt  `json:"receipt,omitempty"`
	FinishedAt time.Time `json:"finished_at"`

	// FailedStage and Err are set only when the run aborted.
	FailedStage Stage `json:"failed_stage,omitempty"`
	Err         error `json:"-"`
}

// Ok reports whether the run completed successfully.
func (r *Report) Ok() bool { return r.Err == nil }

// Diagnostic returns the single-line failure report for a failed run, or
// an empty string for a successful one.
func (r *Report) Diagnostic() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("Error during execution: %v", r.Err)
}
