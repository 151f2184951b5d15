package usecase

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/wortkiste/wortkiste/internal/entity"
)

// articlePattern is the shape a revert-mode noun answer must have before it
// can be scored: article, whitespace, word.
var articlePattern = regexp.MustCompile(`^(der|die|das)\s+\S+`)

// AcceptableNounAnswer reports whether a revert-mode noun answer carries a
// leading article. It checks shape only; a wrong gender is scored as an
// incorrect round, not re-requested.
func AcceptableNounAnswer(answer string) bool {
	return articlePattern.MatchString(answer)
}

// Engine holds the working set of one quiz session, draws entries without
// replacement and scores answers in one of the two quiz directions. It is
// session-scoped and not safe for concurrent use.
type Engine struct {
	working []*entity.Entry
	revert  bool
	rng     *rand.Rand
}

// NewEngine copies the eligible entries into an owned working set.
func NewEngine(entries []*entity.Entry, revert bool, rng *rand.Rand) *Engine {
	working := make([]*entity.Entry, len(entries))
	copy(working, entries)
	return &Engine{working: working, revert: revert, rng: rng}
}

// Remaining is the number of entries not yet drawn.
func (e *Engine) Remaining() int { return len(e.working) }

// Draw removes and returns a uniformly random entry from the working set.
// Once the set is empty every call returns ErrExhausted.
func (e *Engine) Draw() (*entity.Entry, error) {
	if len(e.working) == 0 {
		return nil, entity.ErrExhausted
	}
	i := e.rng.IntN(len(e.working))
	drawn := e.working[i]
	e.working[i] = e.working[len(e.working)-1]
	e.working = e.working[:len(e.working)-1]
	return drawn, nil
}

// Prompt renders the question side of a round: the word and its type in
// forward mode, the translations and a coarsened type label in revert mode.
func (e *Engine) Prompt(entry *entity.Entry) string {
	var context string
	if entry.Context != "" {
		context = fmt.Sprintf(" (context: %s)", entry.Context)
	}
	if e.revert {
		return fmt.Sprintf("%s (%s)%s", strings.Join(entry.Translations, ", "), entry.Type.DisplayLabel(), context)
	}
	return fmt.Sprintf("%s (%s)%s", entry.Word, entry.Type, context)
}

// NeedsArticle reports whether answers for this entry must be re-requested
// until AcceptableNounAnswer holds.
func (e *Engine) NeedsArticle(entry *entity.Entry) bool {
	return e.revert && entry.Type.IsNoun()
}

// Score decides a round. Forward mode accepts any exact member of the
// translation list; revert mode compares the NFC-normalized answer against
// the word, article-prefixed for nouns.
func (e *Engine) Score(entry *entity.Entry, answer string) bool {
	if !e.revert {
		return lo.Contains(entry.Translations, answer)
	}
	return entity.NormalizeWord(answer) == entity.NormalizeWord(e.expected(entry))
}

// Solution is what the user should have answered, shown after scoring.
func (e *Engine) Solution(entry *entity.Entry) string {
	if e.revert {
		return fmt.Sprintf("%s (%s)", entry.Word, entry.Type)
	}
	return strings.Join(entry.Translations, ", ")
}

// SpokenForm is the text handed to the speech collaborator. Nouns are read
// with their article so the gender sticks when heard.
func (e *Engine) SpokenForm(entry *entity.Entry) string {
	if entry.Type.IsNoun() {
		return string(entry.Type) + " " + entry.Word
	}
	return entry.Word
}

// Example picks one example pair at random when the entry has any. The
// pair is illustrative only and never scored.
func (e *Engine) Example(entry *entity.Entry) (source, target string, ok bool) {
	if len(entry.SourceExamples) == 0 {
		return "", "", false
	}
	i := e.rng.IntN(len(entry.SourceExamples))
	return entry.SourceExamples[i], entry.TargetExamples[i], true
}

func (e *Engine) expected(entry *entity.Entry) string {
	if entry.Type.IsNoun() {
		return string(entry.Type) + " " + entry.Word
	}
	return entry.Word
}
