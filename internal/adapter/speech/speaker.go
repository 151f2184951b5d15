package speech

import (
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"
	"github.com/sirupsen/logrus"

	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
)

// Speaker pronounces text in the configured language. Playback runs in the
// background and failures are logged at debug level only: a broken audio
// setup must never affect a quiz round.
type Speaker struct {
	tts    htgotts.Speech
	muted  bool
	logger *logrus.Logger
}

// NewSpeaker creates a text-to-speech collaborator.
func NewSpeaker(cfg *config.Config, muted bool, logger *logrus.Logger) *Speaker {
	return &Speaker{
		tts: htgotts.Speech{
			Folder:   filepath.Join(os.TempDir(), "wortkiste-audio"),
			Language: cfg.Speech.Language,
			Handler:  &handlers.Native{},
		},
		muted:  muted,
		logger: logger,
	}
}

// Say speaks the text without waiting for playback to finish.
func (s *Speaker) Say(text string) {
	if s.muted || text == "" {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Debugf("speech playback panicked: %v", r)
			}
		}()
		if err := s.tts.Speak(text); err != nil {
			s.logger.WithError(err).Debug("speech playback failed")
		}
	}()
}
