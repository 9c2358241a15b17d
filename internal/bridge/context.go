package bridge

import (
	"context"

	"github.com/bnema/uibridge/internal/domain/entity"
)

type sessionIDKey struct{}

// SessionIDFromContext returns the id of the session whose loop is running
// the handler that received ctx.
func SessionIDFromContext(ctx context.Context) (entity.SessionID, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(entity.SessionID)
	return id, ok && id != ""
}

func contextWithSessionID(ctx context.Context, id entity.SessionID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

type loopKey struct{}

// withLoop marks ctx as belonging to the loop of s. Handlers and the action
// sink receive such a context.
func withLoop(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, loopKey{}, s)
}

func onLoop(ctx context.Context, s *Session) bool {
	owner, _ := ctx.Value(loopKey{}).(*Session)
	return owner == s
}
