package bridge

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/domain/repository"
)

// Session is the runtime-side state backing one UI window.
//
// The UI layer keeps the *Session for the lifetime of its window and calls
// Close (or Release) when the window goes away. Everything else reaches the
// session through its Forwarder, which only holds a handle into the arena.
type Session struct {
	id          entity.SessionID
	handle      entity.Handle
	descriptors entity.Descriptors
	startedAt   time.Time

	arena   *arena
	router  *Router
	sink    port.ActionSink
	journal repository.JournalRepository
	metrics port.BridgeMetrics
	now     func() time.Time
	newID   func() string
	onClose []func(entity.SessionInfo)

	queue     *eventQueue
	forwarder *Forwarder

	logMu     sync.RWMutex
	log       []entity.Event
	logLimit  int
	delivered atomic.Uint64

	ctx         context.Context
	logger      zerolog.Logger
	releaseOnce sync.Once
	done        chan struct{}
}

// ID returns the session id.
func (s *Session) ID() entity.SessionID {
	return s.id
}

// Handle returns the arena handle of the session.
func (s *Session) Handle() entity.Handle {
	return s.handle
}

// Descriptors returns the class descriptors the session was created with.
func (s *Session) Descriptors() entity.Descriptors {
	return s.descriptors
}

// Forwarder returns the event forwarder bound to this session.
func (s *Session) Forwarder() *Forwarder {
	return s.forwarder
}

// Events returns a copy of the recorded event log in arrival order.
func (s *Session) Events() []entity.Event {
	s.logMu.RLock()
	defer s.logMu.RUnlock()

	out := make([]entity.Event, len(s.log))
	copy(out, s.log)
	return out
}

// Info returns a snapshot of the session for listings.
func (s *Session) Info() entity.SessionInfo {
	return entity.SessionInfo{
		ID:          s.id,
		Handle:      s.handle,
		Descriptors: s.descriptors,
		StartedAt:   s.startedAt,
		Delivered:   s.delivered.Load(),
		Pending:     s.queue.len(),
	}
}

// Done is closed once the session has been torn down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Flush waits until every event accepted before the call has been handled.
// Handlers run on the session loop and can never see their own barrier, so
// Flush called with a context the session handed to a handler or to the
// action sink fails with entity.ErrFlushOnLoop. A handler that flushes with
// some other context blocks until that context is done.
func (s *Session) Flush(ctx context.Context) error {
	if onLoop(ctx, s) {
		return entity.ErrFlushOnLoop
	}
	barrier, ok := s.queue.pushBarrier()
	if !ok {
		return s.Wait(ctx)
	}

	select {
	case <-barrier:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release starts teardown without waiting for it. Forwarders detach before
// Release returns; events already accepted are still handled.
// It is safe to call from any goroutine, including a UI callback that the
// session itself is waiting on.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		s.arena.release(s.handle)
		s.queue.close()
		s.logger.Debug().Msg("session released")
	})
}

// Wait blocks until teardown has completed or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the session and waits for teardown. Calling it again is a no-op.
func (s *Session) Close(ctx context.Context) error {
	s.Release()
	return s.Wait(ctx)
}

// accept queues an event. It returns false once the session stopped
// accepting events.
func (s *Session) accept(name entity.EventName) bool {
	ev, ok := s.queue.push(name, s.now())
	if !ok {
		return false
	}
	s.metrics.EventAccepted(string(name))
	s.logger.Trace().Uint64("seq", ev.Seq).Str("event", string(name)).Msg("event accepted")
	return true
}

// run is the session loop: the only goroutine that handles events, records
// the log and talks to the action sink.
func (s *Session) run() {
	defer close(s.done)

	for _, action := range entity.BootstrapActions(s.descriptors) {
		s.emit(action)
	}

	for {
		batch, closed := s.queue.take()
		if len(batch) == 0 {
			if closed {
				s.teardown()
				return
			}
			<-s.queue.wake
			continue
		}

		for _, cmd := range batch {
			if cmd.barrier != nil {
				close(cmd.barrier)
				continue
			}
			s.deliver(cmd.event)
		}
	}
}

func (s *Session) deliver(ev entity.Event) {
	s.record(ev)
	s.appendJournal(ev)

	handler, matched := s.router.resolve(ev.Name)
	if handler == nil {
		s.metrics.EventUnhandled(string(ev.Name))
		s.logger.Debug().Str("event", string(ev.Name)).Msg("no handler registered for event")
		return
	}
	if !matched {
		s.metrics.EventUnhandled(string(ev.Name))
	}

	start := time.Now()
	err := s.invoke(handler, ev)
	s.metrics.EventHandled(string(ev.Name), time.Since(start), err)
	if err != nil {
		s.logger.Warn().Err(err).Str("event", string(ev.Name)).Uint64("seq", ev.Seq).Msg("event handler returned error")
	}
}

func (s *Session) invoke(handler port.EventHandler, ev entity.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Str("event", string(ev.Name)).
				Str("stack", string(debug.Stack())).
				Msg("event handler panicked")
			err = fmt.Errorf("handler for %q panicked: %v", ev.Name, r)
		}
	}()
	return handler.Handle(s.ctx, ev, emitter{s})
}

func (s *Session) record(ev entity.Event) {
	s.logMu.Lock()
	if s.logLimit > 0 && len(s.log) >= s.logLimit {
		s.log = append(s.log[1:], ev)
	} else {
		s.log = append(s.log, ev)
	}
	s.logMu.Unlock()
	s.delivered.Add(1)
}

func (s *Session) appendJournal(ev entity.Event) {
	if s.journal == nil {
		return
	}
	rec := entity.NewJournalRecord(s.id, ev)
	rec.ID = s.newID()
	if err := s.journal.Append(s.ctx, rec); err != nil {
		s.logger.Warn().Err(err).Uint64("seq", ev.Seq).Msg("failed to journal event")
	}
}

func (s *Session) emit(action entity.Action) {
	if s.sink == nil {
		return
	}
	s.sink.Apply(s.ctx, action)
}

func (s *Session) teardown() {
	s.emit(entity.Action{Kind: entity.ActionCloseWindow, Window: entity.RootWindow})
	info := s.Info()
	for _, fn := range s.onClose {
		fn(info)
	}
	s.metrics.SessionClosed()
	s.logger.Info().
		Uint64("delivered", s.delivered.Load()).
		Dur("lifetime", s.now().Sub(s.startedAt)).
		Msg("session closed")
}

// emitter hands handler output to the session's sink on the session loop.
type emitter struct {
	s *Session
}

func (e emitter) Emit(action entity.Action) {
	e.s.emit(action)
}
