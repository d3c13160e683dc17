package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"skillsummary/internal/errors"
	"skillsummary/models"
	"skillsummary/ports"
)

// SummaryRepositoryImpl implements SummaryStore for PostgreSQL
type SummaryRepositoryImpl struct {
	db    *sqlx.DB
	table string
}

// NewSummaryRepository creates a new PostgreSQL summary store writing to the
// given table. The table is owned by the upstream schema; this adapter only
// appends rows matching its column layout.
func NewSummaryRepository(db *sqlx.DB, table string) ports.SummaryStore {
	return &SummaryRepositoryImpl{db: db, table: table}
}

// AppendSummaries inserts the rows. Plain append: duplicate rows across runs
// are possible and accepted.
func (r *SummaryRepositoryImpl) AppendSummaries(ctx context.Context, rows []models.UserSummary) error {
	if len(rows) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, critical_thinking, emotional_awareness, creative_thinking,
			communication, problem_solving, created_date, updated_date)
		VALUES (:user_id, :critical_thinking, :emotional_awareness, :creative_thinking,
			:communication, :problem_solving, :created_date, :updated_date)
	`, r.table)

	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return errors.SummaryWrite(err, fmt.Sprintf("failed to append %d summary rows", len(rows)))
	}
	return nil
}
