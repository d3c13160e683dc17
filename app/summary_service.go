package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillsummary/domain/scoring"
	"skillsummary/internal"
	"skillsummary/internal/config"
	"skillsummary/internal/errors"
	"skillsummary/models"
	"skillsummary/ports"
)

// DailySummaryService runs the aggregation pipeline once per invocation:
// list active sessions, fetch each session's windowed skill means, aggregate
// per user, append the summary rows.
type DailySummaryService struct {
	sessions    ports.SessionSource
	scores      ports.ScoreStore
	summaries   ports.SummaryStore
	writePolicy config.WritePolicy
	logger      *internal.Logger
	now         func() time.Time
}

// NewDailySummaryService creates the summary pipeline service
func NewDailySummaryService(
	sessions ports.SessionSource,
	scores ports.ScoreStore,
	summaries ports.SummaryStore,
	writePolicy config.WritePolicy,
	logger *internal.Logger,
) *DailySummaryService {
	return &DailySummaryService{
		sessions:    sessions,
		scores:      scores,
		summaries:   summaries,
		writePolicy: writePolicy,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one summarization pass. Sessions are processed sequentially;
// the first source or score-store error aborts the whole run and nothing
// computed so far is persisted. A write failure is handled per the configured
// write policy.
func (s *DailySummaryService) Run(ctx context.Context) error {
	runID := uuid.New()
	window := scoring.NewWindow(s.now())
	s.logger.Info("run %s: summarizing scores in [%s, %s)", runID, window.LowerBound(), window.UpperBound())

	sessions, err := s.sessions.ListActiveSessions(ctx)
	if err != nil {
		return errors.Wrap(err, "listing active sessions failed")
	}
	s.logger.Debug("run %s: %d active sessions", runID, len(sessions))

	rows := make([]scoring.SessionScores, 0, len(sessions))
	for _, session := range sessions {
		records, err := s.scores.QueryScores(ctx, session.VideoCallSessionID, window)
		if err != nil {
			s.logger.Error("run %s: score query failed for session %d: %v", runID, session.VideoCallSessionID, err)
			return err
		}
		means, err := scoring.ExtractSkillMeans(records)
		if err != nil {
			return errors.Wrapf(err, "extracting scores for session %d failed", session.VideoCallSessionID)
		}
		rows = append(rows, scoring.SessionScores{
			UserID:    session.UserID,
			SessionID: session.VideoCallSessionID,
			Skills:    means,
		})
	}

	users := scoring.AggregateByUser(rows)
	if len(users) == 0 {
		s.logger.Info("run %s: No record found", runID)
		return nil
	}

	summaries := toSummaryRows(users, window.UpperBound())
	if err := s.summaries.AppendSummaries(ctx, summaries); err != nil {
		s.logger.Error("run %s: error inserting summary rows: %v", runID, err)
		if s.writePolicy == config.WriteStrict {
			return err
		}
		return nil
	}

	s.logger.Info("run %s: inserted %d summary rows", runID, len(summaries))
	return nil
}

// toSummaryRows maps aggregated skill means onto the summary table's row
// shape, stamping every row with the run's hour-truncated start.
func toSummaryRows(users []scoring.UserSkillMeans, stamp string) []models.UserSummary {
	rows := make([]models.UserSummary, len(users))
	for i, user := range users {
		rows[i] = models.UserSummary{
			UserID:             user.UserID,
			CriticalThinking:   user.Skills[scoring.CriticalThinking],
			EmotionalAwareness: user.Skills[scoring.EmotionalAwareness],
			CreativeThinking:   user.Skills[scoring.CreativeThinking],
			Communication:      user.Skills[scoring.Communication],
			ProblemSolving:     user.Skills[scoring.ProblemSolving],
			CreatedDate:        stamp,
			UpdatedDate:        stamp,
		}
	}
	return rows
}
