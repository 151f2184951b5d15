package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wortkiste/wortkiste/internal/entity"
	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// statLinePattern matches one persisted session summary. Group 1 is the
// day, group 2 the comma-separated missed-word list.
var statLinePattern = regexp.MustCompile(`^date \[(\d{4}-\d{2}-\d{2}) \d{2}:\d{2}\], .*missed \[(.*)\]$`)

// sessionLog appends one summary line per quiz run to a flat file and
// answers the single query the log supports: words missed on a given day.
type sessionLog struct {
	path   string
	logger *logrus.Logger
}

// NewSessionLog creates a file-backed session log.
func NewSessionLog(cfg *config.Config, logger *logrus.Logger) repository.SessionLog {
	return &sessionLog{path: cfg.Storage.SessionLogPath, logger: logger}
}

func (l *sessionLog) Append(ctx context.Context, record *entity.SessionRecord) (err error) {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open session log %s: %w", l.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := fmt.Fprintln(file, record.Summary()); err != nil {
		return fmt.Errorf("append session record: %w", err)
	}
	return nil
}

func (l *sessionLog) MissedOn(ctx context.Context, day time.Time) ([]string, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open session log %s: %w", l.path, err)
	}
	defer file.Close()

	wanted := day.Format("2006-01-02")
	var missed []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := statLinePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %s: unrecognized line %q", entity.ErrCorruptSessionLog, l.path, line)
		}
		if m[1] != wanted || m[2] == "" {
			continue
		}
		for _, word := range strings.Split(m[2], ",") {
			missed = append(missed, strings.TrimSpace(word))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session log %s: %w", l.path, err)
	}
	return missed, nil
}
