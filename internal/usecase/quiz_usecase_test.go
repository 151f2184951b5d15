package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wortkiste/wortkiste/internal/entity"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// scripted collaborators for driving sessions without a terminal

type scriptedPrompter struct {
	answers []string
	retries int
}

func (p *scriptedPrompter) Query() (string, error) {
	if len(p.answers) == 0 {
		return "", errors.New("no scripted answer left")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) QueryUntil(accept func(string) bool, retry string) (string, error) {
	for {
		answer, err := p.Query()
		if err != nil {
			return "", err
		}
		if accept(answer) {
			return answer, nil
		}
		p.retries++
	}
}

type recordingPresenter struct {
	total    int
	prompts  []string
	correct  []string
	wrong    []string
	finished *entity.SessionRecord
}

func (p *recordingPresenter) Start(total int)                { p.total = total }
func (p *recordingPresenter) ShowPrompt(text string)         { p.prompts = append(p.prompts, text) }
func (p *recordingPresenter) ShowCorrect(text string)        { p.correct = append(p.correct, text) }
func (p *recordingPresenter) ShowWrong(text string)          { p.wrong = append(p.wrong, text) }
func (p *recordingPresenter) ShowExtra(string)               {}
func (p *recordingPresenter) ShowExample(string, string)     {}
func (p *recordingPresenter) EndRound()                      {}
func (p *recordingPresenter) Finish(r *entity.SessionRecord) { p.finished = r }

type recordingSpeaker struct {
	said []string
}

func (s *recordingSpeaker) Say(text string) { s.said = append(s.said, text) }

type stubStore struct {
	entries []*entity.Entry
	byTag   map[string][]*entity.Entry
}

func (s *stubStore) All(ctx context.Context) ([]*entity.Entry, error) { return s.entries, nil }

func (s *stubStore) ByTag(ctx context.Context, tag string) ([]*entity.Entry, error) {
	return s.byTag[tag], nil
}

func (s *stubStore) Append(ctx context.Context, entries []*entity.Entry, tags []string) ([]repository.AppendOutcome, error) {
	return nil, errors.New("not implemented")
}

type stubSessionLog struct {
	missedToday []string
	appended    []*entity.SessionRecord
}

func (l *stubSessionLog) Append(ctx context.Context, record *entity.SessionRecord) error {
	l.appended = append(l.appended, record)
	return nil
}

func (l *stubSessionLog) MissedOn(ctx context.Context, day time.Time) ([]string, error) {
	return l.missedToday, nil
}

func fixedNow() func() time.Time {
	now := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func runSession(t *testing.T, store *stubStore, log *stubSessionLog, opts SessionOptions, answers ...string) (*entity.SessionRecord, *recordingPresenter, *scriptedPrompter, *recordingSpeaker) {
	t.Helper()
	if opts.Now == nil {
		opts.Now = fixedNow()
	}
	if opts.Rand == nil {
		opts.Rand = testRand()
	}
	prompter := &scriptedPrompter{answers: answers}
	presenter := &recordingPresenter{}
	speaker := &recordingSpeaker{}

	record, err := NewQuizUsecase(store, log, quietLogger()).Run(context.Background(), opts, prompter, presenter, speaker)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return record, presenter, prompter, speaker
}

func TestRunPlaysRequestedRounds(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{
		entryFixture("Hund", entity.WordTypeDer, "x"),
		entryFixture("Haus", entity.WordTypeDas, "x"),
		entryFixture("laufen", entity.WordTypeVerb, "x"),
	}}
	log := &stubSessionLog{}

	record, presenter, _, _ := runSession(t, store, log, SessionOptions{Rounds: 2}, "x", "x")

	if presenter.total != 3 {
		t.Fatalf("working set size = %d", presenter.total)
	}
	if record.RoundCount != 2 {
		t.Fatalf("played %d rounds, want 2", record.RoundCount)
	}
	if record.SuccessRatePercent != 100 {
		t.Fatalf("success rate = %d", record.SuccessRatePercent)
	}
	if len(record.MissedWords) != 0 {
		t.Fatalf("missed = %#v", record.MissedWords)
	}
	if len(presenter.prompts) != 2 || presenter.prompts[0] == presenter.prompts[1] {
		t.Fatalf("entries repeated within one session: %#v", presenter.prompts)
	}
	if len(log.appended) != 1 {
		t.Fatalf("expected exactly one session record, got %d", len(log.appended))
	}
	if presenter.finished != record {
		t.Fatal("final summary not presented")
	}
}

func TestRunStopsOnExhaustion(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{entryFixture("Hund", entity.WordTypeDer, "dog")}}
	log := &stubSessionLog{}

	record, _, _, _ := runSession(t, store, log, SessionOptions{Rounds: 5}, "dog")

	if record.RoundCount != 1 {
		t.Fatalf("played %d rounds, want 1", record.RoundCount)
	}
	if record.SuccessRatePercent != 100 {
		t.Fatalf("success rate = %d", record.SuccessRatePercent)
	}
}

func TestRunEmptyWorkingSet(t *testing.T) {
	store := &stubStore{}
	log := &stubSessionLog{}

	record, presenter, _, _ := runSession(t, store, log, SessionOptions{Rounds: 3})

	if presenter.total != 0 || record.RoundCount != 0 {
		t.Fatalf("expected an immediately exhausted session, got %#v", record)
	}
	if record.SuccessRatePercent != 0 {
		t.Fatalf("zero rounds must report 0%%, got %d", record.SuccessRatePercent)
	}
	if len(log.appended) != 1 {
		t.Fatal("empty session must still append its record")
	}
}

func TestRunRecordsMissedWordsByValue(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{entryFixture("Haus", entity.WordTypeDas, "house")}}
	log := &stubSessionLog{}

	record, presenter, _, _ := runSession(t, store, log, SessionOptions{Rounds: 1}, "home")

	if record.SuccessRatePercent != 0 {
		t.Fatalf("success rate = %d", record.SuccessRatePercent)
	}
	if len(record.MissedWords) != 1 || record.MissedWords[0] != "Haus" {
		t.Fatalf("missed = %#v", record.MissedWords)
	}
	if len(presenter.wrong) != 1 || presenter.wrong[0] != "wrong guess: house" {
		t.Fatalf("wrong transcript = %#v", presenter.wrong)
	}
}

func TestRunRoundsSuccessRate(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{
		entryFixture("a", entity.WordTypeVerb, "x"),
		entryFixture("b", entity.WordTypeVerb, "x"),
		entryFixture("c", entity.WordTypeVerb, "x"),
	}}
	log := &stubSessionLog{}

	record, _, _, _ := runSession(t, store, log, SessionOptions{Rounds: 3}, "x", "no", "no")

	// round(1 * 100 / 3) = 33
	if record.SuccessRatePercent != 33 {
		t.Fatalf("success rate = %d, want 33", record.SuccessRatePercent)
	}
}

func TestRunTagFilter(t *testing.T) {
	tagged := entryFixture("Hund", entity.WordTypeDer, "dog")
	store := &stubStore{
		entries: []*entity.Entry{tagged, entryFixture("Haus", entity.WordTypeDas, "house")},
		byTag:   map[string][]*entity.Entry{"animals": {tagged}},
	}
	log := &stubSessionLog{}

	record, presenter, _, _ := runSession(t, store, log, SessionOptions{Rounds: 5, Tag: "animals"}, "dog")

	if presenter.total != 1 || record.RoundCount != 1 {
		t.Fatalf("tag filter not applied: total=%d rounds=%d", presenter.total, record.RoundCount)
	}
	if record.TagFilter != "animals" {
		t.Fatalf("tag filter not recorded: %q", record.TagFilter)
	}
}

func TestRunMissedTodayFilter(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{
		entryFixture("Hund", entity.WordTypeDer, "dog"),
		entryFixture("Haus", entity.WordTypeDas, "house"),
	}}
	log := &stubSessionLog{missedToday: []string{"Haus"}}

	record, presenter, _, _ := runSession(t, store, log, SessionOptions{Rounds: 5, MissedOnly: true}, "house")

	if presenter.total != 1 {
		t.Fatalf("missed filter kept %d entries", presenter.total)
	}
	if record.RoundCount != 1 || len(record.MissedWords) != 0 {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestRunRevertNounArticleRetry(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{entryFixture("Hund", entity.WordTypeDer, "dog")}}
	log := &stubSessionLog{}

	record, _, prompter, _ := runSession(t, store, log,
		SessionOptions{Rounds: 1, Revert: true}, "Hund", "der Hund")

	if prompter.retries != 1 {
		t.Fatalf("article-less answer not re-requested, retries = %d", prompter.retries)
	}
	// the re-request is not a scored round
	if record.RoundCount != 1 || record.SuccessRatePercent != 100 {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestRunRevertWrongGenderScoredNotRetried(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{entryFixture("Hund", entity.WordTypeDer, "dog")}}
	log := &stubSessionLog{}

	record, _, prompter, _ := runSession(t, store, log,
		SessionOptions{Rounds: 1, Revert: true}, "die Hund")

	if prompter.retries != 0 {
		t.Fatalf("well-formed wrong answer re-requested %d times", prompter.retries)
	}
	if record.SuccessRatePercent != 0 || len(record.MissedWords) != 1 || record.MissedWords[0] != "Hund" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestRunSpeaksWithArticle(t *testing.T) {
	store := &stubStore{entries: []*entity.Entry{entryFixture("Hund", entity.WordTypeDer, "dog")}}
	log := &stubSessionLog{}

	_, _, _, speaker := runSession(t, store, log, SessionOptions{Rounds: 1}, "dog")

	if len(speaker.said) != 1 || speaker.said[0] != "der Hund" {
		t.Fatalf("spoken = %#v", speaker.said)
	}
}

func TestRunInvalidRoundCount(t *testing.T) {
	uc := NewQuizUsecase(&stubStore{}, &stubSessionLog{}, quietLogger())

	_, err := uc.Run(context.Background(), SessionOptions{Rounds: 0},
		&scriptedPrompter{}, &recordingPresenter{}, &recordingSpeaker{})
	if !errors.Is(err, entity.ErrInvalidRoundCount) {
		t.Fatalf("expected ErrInvalidRoundCount, got %v", err)
	}
}
