package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/wortkiste/wortkiste/internal/entity"
	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// entryRecord is the on-disk shape of one dictionary entry. Field order is
// the order keys appear in each written block, so the file stays diffable.
type entryRecord struct {
	Type        string   `yaml:"type"`
	Word        string   `yaml:"word"`
	Translation []string `yaml:"translation"`
	EgDe        []string `yaml:"eg_de"`
	EgEn        []string `yaml:"eg_en"`
	Tag         []string `yaml:"tag"`
	Context     string   `yaml:"context,omitempty"`
	Extra       string   `yaml:"extra,omitempty"`
}

// dictionaryStore persists entries as standalone YAML blocks appended to a
// single file. The whole file parses as one mapping from entry key to
// record, so manual edits and concatenation stay safe.
type dictionaryStore struct {
	path   string
	logger *logrus.Logger
}

// NewDictionaryStore creates a file-backed dictionary store.
func NewDictionaryStore(cfg *config.Config, logger *logrus.Logger) repository.DictionaryStore {
	return &dictionaryStore{path: cfg.Storage.DictionaryPath, logger: logger}
}

func (s *dictionaryStore) All(ctx context.Context) ([]*entity.Entry, error) {
	entries, _, err := s.load()
	return entries, err
}

func (s *dictionaryStore) ByTag(ctx context.Context, tag string) ([]*entity.Entry, error) {
	entries, _, err := s.load()
	if err != nil {
		return nil, err
	}
	return lo.Filter(entries, func(e *entity.Entry, _ int) bool {
		return lo.Contains(e.Tags, tag)
	}), nil
}

func (s *dictionaryStore) Append(ctx context.Context, entries []*entity.Entry, tags []string) (outcomes []repository.AppendOutcome, err error) {
	_, existing, err := s.load()
	if err != nil {
		return nil, err
	}

	// Opened lazily so an append of nothing but duplicates touches nothing.
	var file *os.File
	defer func() {
		if file == nil {
			return
		}
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, candidate := range entries {
		if _, dup := existing[candidate.Key]; dup {
			outcomes = append(outcomes, repository.AppendOutcome{Entry: candidate})
			continue
		}
		merged := *candidate
		merged.Tags = mergeTags(candidate.Tags, tags)

		if file == nil {
			file, err = os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open dictionary %s: %w", s.path, err)
			}
		}
		block, merr := yaml.Marshal(map[string]entryRecord{merged.Key: entryToRecord(&merged)})
		if merr != nil {
			return nil, fmt.Errorf("encode entry %s: %w", merged.Key, merr)
		}
		if _, werr := file.Write(block); werr != nil {
			return nil, fmt.Errorf("append entry %s: %w", merged.Key, werr)
		}
		existing[merged.Key] = struct{}{}
		outcomes = append(outcomes, repository.AppendOutcome{Entry: &merged, Added: true})
	}
	return outcomes, nil
}

// load reads the whole file into memory, preserving append order. A
// missing file is an empty dictionary.
func (s *dictionaryStore) load() ([]*entity.Entry, map[string]struct{}, error) {
	keys := make(map[string]struct{})

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, keys, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read dictionary %s: %w", s.path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", entity.ErrCorruptStore, s.path, err)
	}
	if len(doc.Content) == 0 {
		return nil, keys, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("%w: %s: not a key/entry mapping", entity.ErrCorruptStore, s.path)
	}

	entries := make([]*entity.Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		var rec entryRecord
		if err := mapping.Content[i+1].Decode(&rec); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: entry %s: %v", entity.ErrCorruptStore, s.path, key, err)
		}
		entry := recordToEntry(key, rec)
		if err := entry.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: entry %s: %v", entity.ErrCorruptStore, s.path, key, err)
		}
		entries = append(entries, entry)
		keys[key] = struct{}{}
	}
	return entries, keys, nil
}

func entryToRecord(e *entity.Entry) entryRecord {
	return entryRecord{
		Type:        string(e.Type),
		Word:        e.Word,
		Translation: e.Translations,
		EgDe:        e.SourceExamples,
		EgEn:        e.TargetExamples,
		Tag:         e.Tags,
		Context:     e.Context,
		Extra:       e.Extra,
	}
}

func recordToEntry(key string, rec entryRecord) *entity.Entry {
	return &entity.Entry{
		Key:            key,
		Type:           entity.WordType(rec.Type),
		Word:           rec.Word,
		Translations:   rec.Translation,
		SourceExamples: rec.EgDe,
		TargetExamples: rec.EgEn,
		Tags:           rec.Tag,
		Context:        rec.Context,
		Extra:          rec.Extra,
	}
}

func mergeTags(existing, added []string) []string {
	merged := lo.Uniq(append(append([]string{}, existing...), added...))
	return lo.Filter(merged, func(tag string, _ int) bool { return tag != "" })
}
