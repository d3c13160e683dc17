package scoring

import (
	"time"
)

// stampLayout matches the timestamp encoding used by both the score store's
// end_time range key and the summary table's date columns.
const stampLayout = "2006-01-02T15:04:05"

// Window is the rolling score-selection range for one run: [Yesterday, Today).
type Window struct {
	Today     time.Time
	Yesterday time.Time
}

// NewWindow derives the run window from the run's start instant. Both bounds
// come from the same hour-truncated UTC anchor, 24 hours apart.
func NewWindow(now time.Time) Window {
	today := now.UTC().Truncate(time.Hour)
	return Window{
		Today:     today,
		Yesterday: today.Add(-24 * time.Hour),
	}
}

// UpperBound is Today encoded for the store query and the summary stamps.
func (w Window) UpperBound() string {
	return w.Today.Format(stampLayout)
}

// LowerBound is Yesterday encoded for the store query.
func (w Window) LowerBound() string {
	return w.Yesterday.Format(stampLayout)
}
