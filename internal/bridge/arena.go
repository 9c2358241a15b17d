package bridge

import (
	"math"
	"sync"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// arena owns the live sessions of a factory. Forwarders address sessions
// through handles into it, so a released session is observed as missing
// instead of being kept alive by the UI layer.
type arena struct {
	mu    sync.RWMutex
	slots []arenaSlot
	free  []uint32
	live  int
}

type arenaSlot struct {
	generation uint32
	session    *Session
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) insert(s *Session) entity.Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot{})
	}

	slot := &a.slots[idx]
	slot.generation++
	slot.session = s
	a.live++

	return entity.Handle{Index: idx, Generation: slot.generation}
}

// lookup returns the session behind h, or nil once it has been released.
func (a *arena) lookup(h entity.Handle) *Session {
	if h.IsZero() {
		return nil
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	if int(h.Index) >= len(a.slots) {
		return nil
	}
	slot := a.slots[h.Index]
	if slot.generation != h.Generation {
		return nil
	}
	return slot.session
}

// release empties the slot behind h. It reports false when h was already
// released or never issued.
func (a *arena) release(h entity.Handle) bool {
	if h.IsZero() {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if int(h.Index) >= len(a.slots) {
		return false
	}
	slot := &a.slots[h.Index]
	if slot.generation != h.Generation || slot.session == nil {
		return false
	}

	slot.session = nil
	a.live--
	// A slot whose generation would wrap is retired so stale handles can
	// never match again.
	if slot.generation < math.MaxUint32 {
		a.free = append(a.free, h.Index)
	}
	return true
}

func (a *arena) len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

func (a *arena) sessions() []*Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*Session, 0, a.live)
	for i := range a.slots {
		if s := a.slots[i].session; s != nil {
			out = append(out, s)
		}
	}
	return out
}
