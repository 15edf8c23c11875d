// Package logging builds the gookit/slog logger shared by the CLI, the HTTP
// server and the post repository.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging surface used across the application.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLevel is used when the configured level is empty.
const DefaultLevel = "info"

// New creates a gookit/slog logger writing records at or above level to w.
// A nil writer means stderr, keeping stdout free for command output.
func New(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = DefaultLevel
	}

	h := handler.NewIOWriter(w, levelsFrom(level))
	switch strings.ToLower(format) {
	case FormatJSON:
		h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
			f.Fields = []string{
				slog.FieldKeyDatetime,
				slog.FieldKeyLevel,
				slog.FieldKeyMessage,
			}
			f.Aliases = slog.StringMap{
				slog.FieldKeyDatetime: "time",
				slog.FieldKeyLevel:    "level",
				slog.FieldKeyMessage:  "msg",
			}
			f.TimeFormat = "2006-01-02T15:04:05Z07:00"
		}))
	default:
		h.SetFormatter(slog.NewTextFormatter())
	}

	return slog.NewWithHandlers(h)
}

// levelsFrom returns every level at least as severe as the named one.
func levelsFrom(name string) slog.Levels {
	threshold := slog.LevelByName(name)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= threshold {
			levels = append(levels, lv)
		}
	}
	return levels
}

// ValidLevel reports whether name is a level the logger understands.
func ValidLevel(name string) bool {
	switch strings.ToLower(name) {
	case "", "trace", "debug", "info", "notice", "warn", "warning", "error", "fatal", "panic":
		return true
	}
	return false
}

// Discard is a Logger that drops everything.
type Discard struct{}

func (Discard) Debugf(string, ...any) {}
func (Discard) Infof(string, ...any)  {}
func (Discard) Warnf(string, ...any)  {}
func (Discard) Errorf(string, ...any) {}

// Recorder is a Logger that keeps formatted messages in memory, grouped by level.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is one recorded log line.
type Entry struct {
	Level   string
	Message string
}

func (r *Recorder) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Debugf(format string, args ...any) { r.record("debug", format, args...) }
func (r *Recorder) Infof(format string, args ...any)  { r.record("info", format, args...) }
func (r *Recorder) Warnf(format string, args ...any)  { r.record("warn", format, args...) }
func (r *Recorder) Errorf(format string, args ...any) { r.record("error", format, args...) }

// Entries returns a copy of the recorded lines.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Count returns how many lines were recorded at level.
func (r *Recorder) Count(level string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
