package mainloop

import (
	"context"
	"sync/atomic"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// Relay is an action sink that replays session actions on the UI main loop.
// Structural actions are posted one by one, in order. set_state actions
// for the same view and key are coalesced so a burst costs one update, but
// only between structural actions: a set_state never moves ahead of a
// structural action the session emitted before it.
type Relay struct {
	post      func(func())
	apply     func(entity.Action)
	coalescer *Coalescer[stateKey]
	destroyed atomic.Bool
}

// NewRelay creates a relay. post schedules a function on the UI main loop;
// apply runs there for each action.
func NewRelay(post func(func()), apply func(entity.Action)) *Relay {
	if apply == nil {
		panic("mainloop.NewRelay: apply function cannot be nil")
	}
	return &Relay{
		post:      post,
		apply:     apply,
		coalescer: NewCoalescer[stateKey](post),
	}
}

// Apply implements port.ActionSink.
func (r *Relay) Apply(_ context.Context, action entity.Action) {
	if r.destroyed.Load() {
		return
	}
	if action.Kind == entity.ActionSetState {
		r.coalescer.Post(stateKey{view: action.View, key: action.Key}, func() { r.apply(action) })
		return
	}
	r.coalescer.Seal()
	r.post(func() {
		if r.destroyed.Load() {
			return
		}
		r.apply(action)
	})
}

// Destroy drops queued and future actions.
func (r *Relay) Destroy() {
	r.destroyed.Store(true)
	r.coalescer.Destroy()
}

// Coalesced reports how many set_state actions were superseded before the
// main loop applied them.
func (r *Relay) Coalesced() uint64 {
	return r.coalescer.Merged()
}

type stateKey struct {
	view entity.ViewID
	key  string
}
