package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skillsummary/internal/errors"
	"skillsummary/models"
	"skillsummary/ports"
)

// listActiveSessionsQuery joins scenarios to their video-call sessions,
// skipping soft-deleted sessions and scenarios without a user. All historical
// active sessions are candidates every run.
const listActiveSessionsQuery = `
	SELECT us.user_id AS user_id, vc.id AS video_call_session_id
	FROM user_scenario us
	INNER JOIN video_call_session vc ON us.id = vc.user_scenario_id
	WHERE vc.deleted_at IS NULL AND us.user_id IS NOT NULL
`

// SessionRepositoryImpl implements SessionSource for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session source
func NewSessionRepository(db *sqlx.DB) ports.SessionSource {
	return &SessionRepositoryImpl{db: db}
}

// ListActiveSessions returns one row per active session with a known user
func (r *SessionRepositoryImpl) ListActiveSessions(ctx context.Context) ([]models.UserSession, error) {
	var rows []models.UserSession
	if err := r.db.SelectContext(ctx, &rows, listActiveSessionsQuery); err != nil {
		return nil, errors.DataAccess(err, "failed to read user/session pairs")
	}
	return rows, nil
}
