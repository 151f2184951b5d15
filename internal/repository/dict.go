package repository

import (
	"context"

	"github.com/wortkiste/wortkiste/internal/entity"
)

// AppendOutcome reports what happened to one candidate entry during an
// append. A skipped duplicate is an expected outcome, not an error.
type AppendOutcome struct {
	Entry *entity.Entry
	Added bool
}

// DictionaryStore defines data access for the persisted dictionary. The
// store is append-only: entries are never rewritten, reordered or deleted.
type DictionaryStore interface {
	All(ctx context.Context) ([]*entity.Entry, error)
	ByTag(ctx context.Context, tag string) ([]*entity.Entry, error)
	// Append durably writes the entries whose keys are not present yet,
	// merging the call-time tags into each written entry, and reports a
	// per-entry outcome in input order.
	Append(ctx context.Context, entries []*entity.Entry, tags []string) ([]AppendOutcome, error)
}
