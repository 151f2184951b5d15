package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	summaryLayout = "2006-01-02 15:04"
)

// SessionRecord is the immutable summary of one completed quiz run.
// MissedWords holds word values, not keys: the record must survive later
// changes to the dictionary.
type SessionRecord struct {
	Timestamp          time.Time `json:"timestamp"`
	DurationSeconds    int       `json:"duration_seconds"`
	TagFilter          string    `json:"tag_filter,omitempty"`
	SuccessRatePercent int       `json:"success_rate_percent"`
	RoundCount         int       `json:"round_count"`
	Revert             bool      `json:"revert"`
	MissedWords        []string  `json:"missed_words,omitempty"`
}

// Date returns the day component used to partition the session log.
func (r *SessionRecord) Date() string {
	return r.Timestamp.Format(dateLayout)
}

// Summary renders the record as the single stat line persisted to the
// session log and echoed at the end of a run. The line is greppable by
// date and the missed list stays machine-recoverable.
func (r *SessionRecord) Summary() string {
	return fmt.Sprintf(
		"date [%s], duration [%dm %dsec], tag [%s], success_rate [%d%%], sample [%d words], revert [%t], missed [%s]",
		r.Timestamp.Format(summaryLayout),
		r.DurationSeconds/60,
		r.DurationSeconds%60,
		r.TagFilter,
		r.SuccessRatePercent,
		r.RoundCount,
		r.Revert,
		strings.Join(r.MissedWords, ", "),
	)
}
