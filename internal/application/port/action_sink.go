package port

import (
	"context"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// ActionSink is the UI-layer callback receiving session updates.
// Apply is called from the session's event loop, never from the UI thread,
// so implementations must post the work onto their toolkit's main loop.
type ActionSink interface {
	Apply(ctx context.Context, action entity.Action)
}

// ActionSinkFunc adapts a function to the ActionSink interface.
type ActionSinkFunc func(ctx context.Context, action entity.Action)

// Apply calls f(ctx, action).
func (f ActionSinkFunc) Apply(ctx context.Context, action entity.Action) {
	f(ctx, action)
}
