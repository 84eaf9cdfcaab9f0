package observability

import "context"

// NoOpObserver discards all events.
type NoOpObserver struct{}

// OnEvent discards the event.
func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
