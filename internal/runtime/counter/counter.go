// Package counter is a small document-style runtime: every session owns a
// counter that UI events change and save.
package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
)

// Event names handled by the document.
const (
	EventIncrement = "counter.increment"
	EventDecrement = "counter.decrement"
	EventReset     = "counter.reset"
	EventSave      = "save.clicked"
	EventClose     = "window.close"
)

// State keys sent to the view.
const (
	KeyCount  = "count"
	KeyDirty  = "dirty"
	KeyStatus = "status"
)

// ErrNoSession is returned when a handler runs outside a session loop.
var ErrNoSession = errors.New("counter: no session in context")

// Snapshot is the state of one session's counter.
type Snapshot struct {
	Value int
	Dirty bool
	Saves int
}

// Document holds the counters of every session it serves.
type Document struct {
	mu     sync.Mutex
	states map[entity.SessionID]*Snapshot
}

// New creates an empty document.
func New() *Document {
	return &Document{states: make(map[entity.SessionID]*Snapshot)}
}

// Register binds the document's handlers to r.
func (d *Document) Register(r *bridge.Router) error {
	handlers := map[string]port.EventHandlerFunc{
		EventIncrement: d.step(1),
		EventDecrement: d.step(-1),
		EventReset:     d.reset,
		EventSave:      d.save,
		EventClose:     d.close,
	}
	for _, name := range []string{EventIncrement, EventDecrement, EventReset, EventSave, EventClose} {
		if err := r.RegisterFunc(name, handlers[name]); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// Snapshot returns the current state of a session's counter.
func (d *Document) Snapshot(id entity.SessionID) (Snapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.states[id]
	if !ok {
		return Snapshot{}, false
	}
	return *st, true
}

// Forget drops the state of a closed session.
func (d *Document) Forget(info entity.SessionInfo) {
	d.mu.Lock()
	delete(d.states, info.ID)
	d.mu.Unlock()
}

// update runs fn on the session's state and returns a copy of the result.
func (d *Document) update(ctx context.Context, fn func(*Snapshot)) (Snapshot, error) {
	id, ok := bridge.SessionIDFromContext(ctx)
	if !ok {
		return Snapshot{}, ErrNoSession
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.states[id]
	if !ok {
		st = &Snapshot{}
		d.states[id] = st
	}
	fn(st)
	return *st, nil
}

func (d *Document) step(delta int) port.EventHandlerFunc {
	return func(ctx context.Context, _ entity.Event, out port.ActionEmitter) error {
		st, err := d.update(ctx, func(s *Snapshot) {
			s.Value += delta
			s.Dirty = true
		})
		if err != nil {
			return err
		}
		emitCount(out, st)
		return nil
	}
}

func (d *Document) reset(ctx context.Context, _ entity.Event, out port.ActionEmitter) error {
	st, err := d.update(ctx, func(s *Snapshot) {
		s.Dirty = s.Dirty || s.Value != 0
		s.Value = 0
	})
	if err != nil {
		return err
	}
	emitCount(out, st)
	return nil
}

func (d *Document) save(ctx context.Context, _ entity.Event, out port.ActionEmitter) error {
	st, err := d.update(ctx, func(s *Snapshot) {
		if s.Dirty {
			s.Saves++
		}
		s.Dirty = false
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info().Int("value", st.Value).Int("saves", st.Saves).Msg("counter saved")
	out.Emit(entity.SetState(KeyDirty, strconv.FormatBool(st.Dirty)))
	out.Emit(entity.SetState(KeyStatus, fmt.Sprintf("saved %d (#%d)", st.Value, st.Saves)))
	return nil
}

func (d *Document) close(ctx context.Context, _ entity.Event, out port.ActionEmitter) error {
	st, err := d.update(ctx, func(*Snapshot) {})
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	if st.Dirty {
		log.Warn().Int("value", st.Value).Msg("window closed with unsaved changes")
		out.Emit(entity.SetState(KeyStatus, "closed with unsaved changes"))
		return nil
	}
	out.Emit(entity.SetState(KeyStatus, "closed"))
	return nil
}

func emitCount(out port.ActionEmitter, st Snapshot) {
	out.Emit(entity.SetState(KeyCount, strconv.Itoa(st.Value)))
	out.Emit(entity.SetState(KeyDirty, strconv.FormatBool(st.Dirty)))
}
