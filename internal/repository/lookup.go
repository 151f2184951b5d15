package repository

import "context"

// LookupGrouping is one part-of-speech sense block as returned by the
// online dictionary, before normalization into an Entry. Lemma or Marker
// may be empty when the upstream markup lacks them.
type LookupGrouping struct {
	Lemma          string
	Marker         string
	Translations   []string
	SourceExamples []string
	TargetExamples []string
}

// Lookup queries the online bilingual dictionary for a word. An empty
// result means the word is unknown upstream; implementations recover
// transport failures into an empty result rather than surfacing them.
type Lookup interface {
	Lookup(ctx context.Context, word string) ([]LookupGrouping, error)
}
