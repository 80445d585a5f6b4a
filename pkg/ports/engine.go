package ports

import (
	"context"

	"gigflow/pkg/domain"
)

// WorkflowRunner is the engine as seen by driving adapters (HTTP, CLI).
// Execute runs one project workflow to completion or failure and always
// returns a report; it never panics or raises.
type WorkflowRunner interface {
	Execute(ctx context.Context, project *domain.Project) *domain.Report
}
