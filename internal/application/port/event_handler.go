package port

import (
	"context"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// ActionEmitter queues updates for the UI layer of the session being served.
type ActionEmitter interface {
	Emit(action entity.Action)
}

// EventHandler is one entry of a session's dispatch table.
// Handlers run on the session's event loop, one event at a time; they must
// not block for long and should hand heavy work to their own goroutines.
type EventHandler interface {
	Handle(ctx context.Context, ev entity.Event, out ActionEmitter) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, ev entity.Event, out ActionEmitter) error

// Handle calls f(ctx, ev, out).
func (f EventHandlerFunc) Handle(ctx context.Context, ev entity.Event, out ActionEmitter) error {
	return f(ctx, ev, out)
}
