package logging

import (
	"log/slog"
	"strings"
	"sync"
)

const lineTimeFormat = "15:04:05"

// NewLineHandler returns a handler that renders each record as a single
// short text line and passes it to sink. It feeds the GUI log panel.
func NewLineHandler(sink func(line string), level slog.Leveler) slog.Handler {
	if sink == nil {
		return NoopHandler{}
	}
	return slog.NewTextHandler(&lineWriter{sink: sink}, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String(a.Key, a.Value.Time().Format(lineTimeFormat))
			case slog.SourceKey:
				return slog.Attr{}
			}
			return a
		},
	})
}

// lineWriter receives one complete record per Write from slog.TextHandler
type lineWriter struct {
	mu   sync.Mutex
	sink func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	w.mu.Lock()
	w.sink(line)
	w.mu.Unlock()
	return len(p), nil
}
