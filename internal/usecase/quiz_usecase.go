package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/wortkiste/wortkiste/internal/entity"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// Prompter obtains free-text answers from the user.
type Prompter interface {
	Query() (string, error)
	// QueryUntil re-requests input, printing retry before each new attempt,
	// until accept holds. There is no bound on retries.
	QueryUntil(accept func(string) bool, retry string) (string, error)
}

// Presenter renders the round-by-round transcript of a session.
type Presenter interface {
	Start(total int)
	ShowPrompt(text string)
	ShowCorrect(text string)
	ShowWrong(text string)
	ShowExtra(text string)
	ShowExample(source, target string)
	EndRound()
	Finish(record *entity.SessionRecord)
}

// Speaker pronounces text. Implementations must never block a round or
// surface playback failures.
type Speaker interface {
	Say(text string)
}

// SessionOptions configures one quiz run.
type SessionOptions struct {
	Rounds     int
	Tag        string
	MissedOnly bool
	Revert     bool

	// Now and Rand exist for deterministic tests; nil means wall clock and
	// a time-seeded source.
	Now  func() time.Time
	Rand *rand.Rand
}

// QuizUsecase defines business logic for quiz sessions.
type QuizUsecase interface {
	Run(ctx context.Context, opts SessionOptions, prompter Prompter, presenter Presenter, speaker Speaker) (*entity.SessionRecord, error)
}

type quizUsecase struct {
	store    repository.DictionaryStore
	sessions repository.SessionLog
	logger   *logrus.Logger
}

func NewQuizUsecase(store repository.DictionaryStore, sessions repository.SessionLog, logger *logrus.Logger) QuizUsecase {
	return &quizUsecase{store: store, sessions: sessions, logger: logger}
}

// Run plays up to opts.Rounds rounds, stopping early when the working set
// is exhausted, and appends exactly one session record on completion.
func (u *quizUsecase) Run(ctx context.Context, opts SessionOptions, prompter Prompter, presenter Presenter, speaker Speaker) (*entity.SessionRecord, error) {
	if opts.Rounds <= 0 {
		return nil, entity.ErrInvalidRoundCount
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	entries, err := u.workingSet(ctx, opts, now)
	if err != nil {
		return nil, err
	}
	engine := NewEngine(entries, opts.Revert, rng)
	presenter.Start(engine.Remaining())

	start := now()
	var (
		played  int
		correct int
		missed  []string
	)
	for played < opts.Rounds {
		entry, err := engine.Draw()
		if errors.Is(err, entity.ErrExhausted) {
			break
		}

		presenter.ShowPrompt(engine.Prompt(entry))
		if !opts.Revert {
			speaker.Say(engine.SpokenForm(entry))
		}

		var answer string
		if engine.NeedsArticle(entry) {
			answer, err = prompter.QueryUntil(AcceptableNounAnswer, "start with article for nouns:")
		} else {
			answer, err = prompter.Query()
		}
		if err != nil {
			return nil, fmt.Errorf("read answer: %w", err)
		}
		if opts.Revert {
			speaker.Say(engine.SpokenForm(entry))
		}

		played++
		if engine.Score(entry, answer) {
			correct++
			presenter.ShowCorrect(fmt.Sprintf("nice: %s", engine.Solution(entry)))
		} else {
			missed = append(missed, entry.Word)
			presenter.ShowWrong(fmt.Sprintf("wrong guess: %s", engine.Solution(entry)))
		}
		if entry.Extra != "" {
			presenter.ShowExtra(entry.Extra)
		}
		if source, target, ok := engine.Example(entry); ok {
			presenter.ShowExample(source, target)
		}
		presenter.EndRound()
	}

	rate := 0
	if played > 0 {
		rate = int(math.Round(float64(correct) * 100 / float64(played)))
	}
	record := &entity.SessionRecord{
		Timestamp:          start,
		DurationSeconds:    int(now().Sub(start).Seconds()),
		TagFilter:          opts.Tag,
		SuccessRatePercent: rate,
		RoundCount:         played,
		Revert:             opts.Revert,
		MissedWords:        missed,
	}
	if err := u.sessions.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append session record: %w", err)
	}
	presenter.Finish(record)
	return record, nil
}

// workingSet applies the tag filter, then the missed-today filter. Missed
// matching is by word value; two entries sharing a word text with
// different types are indistinguishable here and both re-enter.
func (u *quizUsecase) workingSet(ctx context.Context, opts SessionOptions, now func() time.Time) ([]*entity.Entry, error) {
	var (
		entries []*entity.Entry
		err     error
	)
	if opts.Tag != "" {
		entries, err = u.store.ByTag(ctx, opts.Tag)
	} else {
		entries, err = u.store.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	if opts.MissedOnly {
		missedToday, err := u.sessions.MissedOn(ctx, now())
		if err != nil {
			return nil, err
		}
		before := len(entries)
		entries = lo.Filter(entries, func(e *entity.Entry, _ int) bool {
			return lo.Contains(missedToday, e.Word)
		})
		u.logger.Debugf("missed-today filter kept %d of %d entries", len(entries), before)
	}
	return entries, nil
}
