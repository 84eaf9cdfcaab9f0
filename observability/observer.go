// Package observability provides opt-in tracing for state action runs.
//
// Actions themselves never log. A caller who wants visibility into a run
// passes an Observer to purestate.RunObserved, which reports the start, the
// completion, or a panic of the run as Events.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is the severity of an event.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
	LevelWarning Level = 13
	LevelError   Level = 17
)

// String returns the severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel maps this level to the corresponding slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event.
type EventType string

const (
	EventRunStart    EventType = "run.start"
	EventRunComplete EventType = "run.complete"
	EventRunPanic    EventType = "run.panic"
)

// Event describes something that happened during a run. Data carries run
// metadata (run id, action name, duration), never the state or result values.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events. Implementations must not panic and must not
// affect the run they observe.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
