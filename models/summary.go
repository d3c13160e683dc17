package models

// UserSession is one (user, session) pair from the relational join: an
// active, non-deleted video-call session with a known owning user.
type UserSession struct {
	UserID             int64 `json:"user_id" db:"user_id"`
	VideoCallSessionID int64 `json:"video_call_session_id" db:"video_call_session_id"`
}

// UserSummary is one appended summary row: a user's per-skill averages for
// the run, stamped with the run's hour-truncated start. The field order
// mirrors the remote summary table's column order.
type UserSummary struct {
	UserID             int64   `json:"user_id" db:"user_id"`
	CriticalThinking   float64 `json:"critical_thinking" db:"critical_thinking"`
	EmotionalAwareness float64 `json:"emotional_awareness" db:"emotional_awareness"`
	CreativeThinking   float64 `json:"creative_thinking" db:"creative_thinking"`
	Communication      float64 `json:"communication" db:"communication"`
	ProblemSolving     float64 `json:"problem_solving" db:"problem_solving"`
	CreatedDate        string  `json:"created_date" db:"created_date"`
	UpdatedDate        string  `json:"updated_date" db:"updated_date"`
}
