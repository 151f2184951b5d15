package entity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordType is the closed set of grammatical markers an entry can carry.
// The three noun types double as the article the noun is learned with.
type WordType string

const (
	WordTypeDer         WordType = "der"
	WordTypeDie         WordType = "die"
	WordTypeDas         WordType = "das"
	WordTypeAdverb      WordType = "adv"
	WordTypeVerb        WordType = "verb"
	WordTypeAdjective   WordType = "adj"
	WordTypePreposition WordType = "prep"
	WordTypeConjunction WordType = "conj"
)

// ParseWordType converts an arbitrary string into a WordType value.
func ParseWordType(s string) (WordType, bool) {
	t := WordType(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// Valid reports whether the value belongs to the closed set.
func (t WordType) Valid() bool {
	switch t {
	case WordTypeDer, WordTypeDie, WordTypeDas, WordTypeAdverb, WordTypeVerb,
		WordTypeAdjective, WordTypePreposition, WordTypeConjunction:
		return true
	default:
		return false
	}
}

// IsNoun reports whether the type is one of the three noun-gender markers.
func (t WordType) IsNoun() bool {
	return t == WordTypeDer || t == WordTypeDie || t == WordTypeDas
}

// DisplayLabel collapses the noun-gender markers to a single label for
// prompts that must not give the gender away.
func (t WordType) DisplayLabel() string {
	if t.IsNoun() {
		return "noun"
	}
	return string(t)
}

// ResolveMarker maps a word-type caption from the online dictionary onto
// the closed WordType set. ok is false for proper nouns and captions the
// model does not cover. "adverb" must be tested before "verb" because the
// latter is a substring of the former.
func ResolveMarker(marker string) (WordType, bool) {
	switch {
	case strings.Contains(marker, "proper"):
		return "", false
	case strings.Contains(marker, "neuter"):
		return WordTypeDas, true
	case strings.Contains(marker, "plural"), strings.Contains(marker, "feminine"):
		return WordTypeDie, true
	case strings.Contains(marker, "masculine"):
		return WordTypeDer, true
	case strings.Contains(marker, "adverb"):
		return WordTypeAdverb, true
	case strings.Contains(marker, "verb"):
		return WordTypeVerb, true
	case strings.Contains(marker, "adjective"):
		return WordTypeAdjective, true
	case strings.Contains(marker, "preposition"):
		return WordTypePreposition, true
	case strings.Contains(marker, "conjunction"):
		return WordTypeConjunction, true
	default:
		return "", false
	}
}

// Entry is one word sense: a foreign-language lemma with its grammatical
// type, translations, example pairs and user tags. Entries are created
// once and never mutated.
type Entry struct {
	Key            string   `json:"key"`
	Type           WordType `json:"type"`
	Word           string   `json:"word"`
	Translations   []string `json:"translations"`
	SourceExamples []string `json:"source_examples,omitempty"`
	TargetExamples []string `json:"target_examples,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Context        string   `json:"context,omitempty"`
	Extra          string   `json:"extra,omitempty"`
}

// NormalizeWord trims and canonicalizes a word to Unicode NFC so that
// hashing and answer comparison are stable across input methods.
func NormalizeWord(word string) string {
	return norm.NFC.String(strings.TrimSpace(word))
}

// EntryKey derives the stable identity of an entry from its normalized
// word and grammatical type. Two entries share a key exactly when they are
// the same word sense.
func EntryKey(word string, t WordType) string {
	sum := md5.Sum([]byte(NormalizeWord(word) + ";" + string(t)))
	return hex.EncodeToString(sum[:])
}

// Validate checks the structural invariants of an entry, currently that
// the example sequences stay pairwise aligned.
func (e *Entry) Validate() error {
	if len(e.SourceExamples) != len(e.TargetExamples) {
		return ErrMismatchedExamples
	}
	return nil
}
