package ports

import (
	"context"

	"skillsummary/models"
)

// SessionSource defines the interface for reading the active user/session
// population from the relational store.
type SessionSource interface {
	// ListActiveSessions returns one row per non-deleted video-call session
	// whose scenario has a known user. No date filtering happens here; the
	// score window is applied downstream, per session. A read failure is
	// fatal for the run.
	ListActiveSessions(ctx context.Context) ([]models.UserSession, error)
}
