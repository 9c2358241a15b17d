package bridge

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/domain/entity"
)

// Forwarder relays named UI events into one session.
//
// It holds a handle, not the session: once the session is released every
// SendEvent becomes a no-op. The bound to detached transition happens once
// and is never undone.
type Forwarder struct {
	arena   *arena
	handle  entity.Handle
	metrics port.BridgeMetrics
	logger  zerolog.Logger

	detached atomic.Bool
}

// SendEvent hands name to the bound session and returns without waiting
// for it to be handled. Empty names and sends to a detached forwarder are
// dropped silently.
func (f *Forwarder) SendEvent(name string) {
	if f == nil {
		return
	}
	if name == "" {
		f.metrics.EventDropped(port.DropEmptyName)
		f.logger.Debug().Msg("dropping event with empty name")
		return
	}
	if f.detached.Load() {
		f.drop(name)
		return
	}

	s := f.arena.lookup(f.handle)
	if s == nil || !s.accept(entity.EventName(name)) {
		f.detached.Store(true)
		f.drop(name)
	}
}

// State reports whether the forwarder still targets a live session.
func (f *Forwarder) State() entity.ForwarderState {
	if f == nil || f.detached.Load() {
		return entity.ForwarderDetached
	}
	if f.arena.lookup(f.handle) == nil {
		f.detached.Store(true)
		return entity.ForwarderDetached
	}
	return entity.ForwarderBound
}

// Handle returns the handle of the target session.
func (f *Forwarder) Handle() entity.Handle {
	return f.handle
}

func (f *Forwarder) drop(name string) {
	f.metrics.EventDropped(port.DropDetached)
	f.logger.Debug().Str("event", name).Msg("dropping event for detached session")
}
