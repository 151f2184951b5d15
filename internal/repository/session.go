package repository

import (
	"context"
	"time"

	"github.com/wortkiste/wortkiste/internal/entity"
)

// SessionLog defines access to the append-only, date-partitioned record of
// past quiz runs.
type SessionLog interface {
	Append(ctx context.Context, record *entity.SessionRecord) error
	// MissedOn returns the ordered union of missed words across all
	// sessions whose date component equals the given day, duplicates
	// preserved. A day without sessions yields an empty sequence.
	MissedOn(ctx context.Context, day time.Time) ([]string, error)
}
