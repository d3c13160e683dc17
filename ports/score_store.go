package ports

import (
	"context"

	"skillsummary/domain/scoring"
)

// ScoreStore defines the interface for windowed score lookups against the
// key-value store.
type ScoreStore interface {
	// QueryScores returns all raw score records for the session whose
	// end_time falls within the window, ordered newest-first. The ordering
	// is part of the contract even though the mean reduction ignores it.
	// A lookup failure is fatal for the run.
	QueryScores(ctx context.Context, sessionID int64, window scoring.Window) ([]scoring.Record, error)
}
