package ports

import (
	"context"

	"skillsummary/models"
)

// SummaryStore defines the interface for persisting aggregated summary rows.
type SummaryStore interface {
	// AppendSummaries appends the rows to the summary table. Append only:
	// no upsert and no dedup against prior runs, so re-running the job for
	// an overlapping window produces duplicate rows.
	AppendSummaries(ctx context.Context, rows []models.UserSummary) error
}
