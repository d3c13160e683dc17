package scoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SessionScores is one session's row after the fetch-and-merge step: the
// originating identifiers plus whatever skill means the window produced.
// Skills may be empty when the window held no records for the session.
type SessionScores struct {
	UserID    int64
	SessionID int64
	Skills    map[Skill]float64
}

// Complete reports whether the row carries a value for every schema skill.
// Only complete rows participate in the cross-session aggregation.
func (s SessionScores) Complete() bool {
	for _, skill := range skillSchema {
		if _, ok := s.Skills[skill]; !ok {
			return false
		}
	}
	return true
}

// UserSkillMeans is one user's per-skill average across their complete
// sessions for the run.
type UserSkillMeans struct {
	UserID int64
	Skills map[Skill]float64
}

// AggregateByUser drops sessions with incomplete skill data, groups the
// survivors by user, and averages each skill across a user's sessions.
// Output is ordered by user id. An empty result is a normal outcome, not an
// error: it means no session in the run had all five skills scored.
func AggregateByUser(rows []SessionScores) []UserSkillMeans {
	groups := make(map[int64][]SessionScores)
	for _, row := range rows {
		if !row.Complete() {
			continue
		}
		groups[row.UserID] = append(groups[row.UserID], row)
	}

	out := make([]UserSkillMeans, 0, len(groups))
	for userID, sessions := range groups {
		means := make(map[Skill]float64, len(skillSchema))
		for _, skill := range skillSchema {
			values := make([]float64, len(sessions))
			for i, session := range sessions {
				values[i] = session.Skills[skill]
			}
			means[skill] = round2(stat.Mean(values, nil))
		}
		out = append(out, UserSkillMeans{UserID: userID, Skills: means})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
