package purestate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pure-Company/purestate/observability"
)

const observeSource = "purestate"

// RunObserved runs m against initial and reports the run to obs.
//
// It emits run.start before the transition, then run.complete with the
// duration, or run.panic followed by re-raising the original panic value.
// Events carry a fresh run id and name, never the state or result. A nil obs
// behaves like observability.NoOpObserver.
func RunObserved[S, A any](ctx context.Context, obs observability.Observer, name string, m StateFunc[S, A], initial S) (S, A) {
	if obs == nil {
		obs = observability.NoOpObserver{}
	}

	runID := uuid.New().String()
	start := time.Now()

	obs.OnEvent(ctx, observability.Event{
		Type:      observability.EventRunStart,
		Level:     observability.LevelVerbose,
		Timestamp: start,
		Source:    observeSource,
		Data:      map[string]any{"run_id": runID, "action": name},
	})

	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			// runtime.Goexit, not a panic
			return
		}
		obs.OnEvent(ctx, observability.Event{
			Type:      observability.EventRunPanic,
			Level:     observability.LevelError,
			Timestamp: time.Now(),
			Source:    observeSource,
			Data: map[string]any{
				"run_id":   runID,
				"action":   name,
				"panic":    fmt.Sprint(r),
				"duration": time.Since(start),
			},
		})
		panic(r)
	}()

	final, result := m(initial)
	completed = true

	obs.OnEvent(ctx, observability.Event{
		Type:      observability.EventRunComplete,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    observeSource,
		Data: map[string]any{
			"run_id":   runID,
			"action":   name,
			"duration": time.Since(start),
		},
	})

	return final, result
}
