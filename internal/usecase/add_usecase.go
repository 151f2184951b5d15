package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/wortkiste/wortkiste/internal/entity"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// AddUsecase defines business logic for building the dictionary.
type AddUsecase interface {
	// AddWord looks the word up online, normalizes the result into entries
	// and appends them to the store. An unknown word or unreachable
	// service yields no outcomes and no error; only a broken store fails.
	AddWord(ctx context.Context, word string, tags []string, filter entity.WordType) ([]repository.AppendOutcome, error)
}

type addUsecase struct {
	lookup repository.Lookup
	store  repository.DictionaryStore
	logger *logrus.Logger
}

func NewAddUsecase(lookup repository.Lookup, store repository.DictionaryStore, logger *logrus.Logger) AddUsecase {
	return &addUsecase{lookup: lookup, store: store, logger: logger}
}

func (u *addUsecase) AddWord(ctx context.Context, word string, tags []string, filter entity.WordType) ([]repository.AppendOutcome, error) {
	groupings, err := u.lookup.Lookup(ctx, entity.NormalizeWord(word))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		u.logger.WithError(err).Warnf("lookup failed for %q", word)
		return nil, nil
	}

	entries := u.normalize(word, groupings, filter)
	if len(entries) == 0 {
		return nil, nil
	}
	return u.store.Append(ctx, entries, tags)
}

// normalize turns raw lookup groupings into canonical entries, one per
// recognized part-of-speech sense. Malformed or proper-noun groupings are
// skipped without aborting the rest.
func (u *addUsecase) normalize(queried string, groupings []repository.LookupGrouping, filter entity.WordType) []*entity.Entry {
	var entries []*entity.Entry
	seen := make(map[string]struct{})

	for _, grouping := range groupings {
		if grouping.Lemma == "" || grouping.Marker == "" {
			u.logger.Infof("no word or type found for %q, skipping grouping", queried)
			continue
		}
		wordType, ok := entity.ResolveMarker(grouping.Marker)
		if !ok {
			u.logger.Debugf("skipping grouping %q with marker %q", grouping.Lemma, grouping.Marker)
			continue
		}
		if filter != "" && wordType != filter {
			continue
		}
		if len(grouping.SourceExamples) != len(grouping.TargetExamples) {
			u.logger.Infof("mismatched example pairs for %q, skipping grouping", grouping.Lemma)
			continue
		}

		key := entity.EntryKey(grouping.Lemma, wordType)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, &entity.Entry{
			Key:            key,
			Type:           wordType,
			Word:           entity.NormalizeWord(grouping.Lemma),
			Translations:   grouping.Translations,
			SourceExamples: grouping.SourceExamples,
			TargetExamples: grouping.TargetExamples,
		})
	}
	return entries
}
