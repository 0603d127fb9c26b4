// Package passlog records generated passwords in plain-text, append-only
// log files, one timestamped line per password.
package passlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimeLayout is the human-readable stamp written in front of every entry.
const TimeLayout = "Mon Jan 02 2006 15:04:05"

const separator = "  |  "

var ErrMalformedEntry = errors.New("malformed log entry")

// Logbook appends passwords to a single log file. The file is only ever
// opened in append mode; it is never truncated or rotated.
type Logbook struct {
	path string
	now  func() time.Time
}

func New(path string) *Logbook {
	return &Logbook{path: path, now: time.Now}
}

// NewWithClock returns a Logbook that stamps entries with the given clock.
func NewWithClock(path string, now func() time.Time) *Logbook {
	return &Logbook{path: path, now: now}
}

// Path returns the log file location.
func (l *Logbook) Path() string {
	return l.path
}

// Append writes one `<timestamp>  |  <password>` line, creating the parent
// directory if it does not exist yet.
func (l *Logbook) Append(password string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s%s%s\n", l.now().Format(TimeLayout), separator, password); err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}

	return nil
}

// ParseEntry splits a log line back into its timestamp and password.
func ParseEntry(line string) (time.Time, string, error) {
	stamp, password, ok := strings.Cut(line, separator)
	if !ok {
		return time.Time{}, "", ErrMalformedEntry
	}

	ts, err := time.Parse(TimeLayout, stamp)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parse entry timestamp: %w", err)
	}

	return ts, password, nil
}
