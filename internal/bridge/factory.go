// Package bridge connects UI-owned windows to runtime-owned sessions.
//
// A Factory builds one Session per window from three opaque class
// descriptors. The UI layer keeps the Session and drives it through its
// Forwarder, which turns each named UI event into an entry on the session's
// queue. Sessions drain their queue on their own goroutine, in order.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/domain/repository"
	"github.com/bnema/uibridge/internal/logging"
)

// DefaultEventLogLimit bounds the per-session event log.
const DefaultEventLogLimit = 1000

// Factory creates sessions and owns the arena they live in.
type Factory struct {
	arena    *arena
	router   *Router
	journal  repository.JournalRepository
	metrics  port.BridgeMetrics
	logLimit int
	now      func() time.Time
	newID    func() string
	onClose  []func(entity.SessionInfo)
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithRouter sets the dispatch table shared by the factory's sessions.
func WithRouter(r *Router) FactoryOption {
	return func(f *Factory) {
		if r != nil {
			f.router = r
		}
	}
}

// WithJournal persists every delivered event.
func WithJournal(j repository.JournalRepository) FactoryOption {
	return func(f *Factory) { f.journal = j }
}

// WithMetrics reports bridge activity.
func WithMetrics(m port.BridgeMetrics) FactoryOption {
	return func(f *Factory) {
		if m != nil {
			f.metrics = m
		}
	}
}

// WithEventLogLimit bounds the recorded event log of each session.
// Zero or less keeps every event.
func WithEventLogLimit(n int) FactoryOption {
	return func(f *Factory) { f.logLimit = n }
}

// WithClock overrides time.Now for event timestamps.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// WithOnClose registers fn to run on the session loop once a session has
// drained its queue, just before it reports done.
func WithOnClose(fn func(entity.SessionInfo)) FactoryOption {
	return func(f *Factory) {
		if fn != nil {
			f.onClose = append(f.onClose, fn)
		}
	}
}

// NewFactory creates a session factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		arena:    newArena(),
		router:   NewRouter(),
		metrics:  port.NopBridgeMetrics{},
		logLimit: DefaultEventLogLimit,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SessionOption configures a single session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	sink port.ActionSink
	id   entity.SessionID
}

// WithActionSink sets the UI-layer callback receiving session updates.
func WithActionSink(sink port.ActionSink) SessionOption {
	return func(o *sessionOptions) { o.sink = sink }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id entity.SessionID) SessionOption {
	return func(o *sessionOptions) { o.id = id }
}

// CreateSession builds a new session for one window.
//
// The descriptors are kept opaque and handed back to the UI layer in the
// bootstrap actions. Their mutual consistency is the caller's business, but
// a nil descriptor is a programming error and panics.
func (f *Factory) CreateSession(ctx context.Context, window, view, viewModel entity.ClassDescriptor, opts ...SessionOption) *Session {
	descriptors := entity.Descriptors{Window: window, View: view, ViewModel: viewModel}
	if err := descriptors.Validate(); err != nil {
		panic(fmt.Sprintf("bridge.CreateSession: %v", err))
	}

	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}

	startedAt := f.now()
	id := o.id
	if id == "" {
		id = entity.SessionID(logging.GenerateSessionIDAt(startedAt))
	}

	// The session outlives the caller's context; only its values are kept.
	sessionCtx := logging.WithSessionID(contextWithSessionID(context.WithoutCancel(ctx), id), string(id))
	logger := logging.FromContext(sessionCtx).With().Str("component", "session").Logger()

	s := &Session{
		id:          id,
		descriptors: descriptors,
		startedAt:   startedAt,
		arena:       f.arena,
		router:      f.router,
		sink:        o.sink,
		journal:     f.journal,
		metrics:     f.metrics,
		now:         f.now,
		newID:       f.newID,
		onClose:     f.onClose,
		queue:       newEventQueue(),
		logLimit:    f.logLimit,
		ctx:         logging.WithContext(sessionCtx, logger),
		logger:      logger,
		done:        make(chan struct{}),
	}
	s.ctx = withLoop(s.ctx, s)
	s.handle = f.arena.insert(s)
	s.forwarder = &Forwarder{
		arena:   f.arena,
		handle:  s.handle,
		metrics: f.metrics,
		logger:  logger.With().Str("component", "forwarder").Logger(),
	}

	f.metrics.SessionOpened()
	go s.run()

	logger.Info().
		Str("handle", s.handle.String()).
		Str("window", entity.DescriptorLabel(window)).
		Str("view", entity.DescriptorLabel(view)).
		Str("view_model", entity.DescriptorLabel(viewModel)).
		Msg("session created")

	return s
}

// Router returns the dispatch table shared by the factory's sessions.
func (f *Factory) Router() *Router {
	return f.router
}

// Lookup returns the live session behind h.
func (f *Factory) Lookup(h entity.Handle) (*Session, bool) {
	s := f.arena.lookup(h)
	return s, s != nil
}

// Len returns the number of live sessions.
func (f *Factory) Len() int {
	return f.arena.len()
}

// Sessions lists the live sessions.
func (f *Factory) Sessions() []entity.SessionInfo {
	live := f.arena.sessions()
	out := make([]entity.SessionInfo, 0, len(live))
	for _, s := range live {
		out = append(out, s.Info())
	}
	return out
}

// Shutdown closes every live session and waits for their teardown.
func (f *Factory) Shutdown(ctx context.Context) error {
	live := f.arena.sessions()
	for _, s := range live {
		s.Release()
	}

	var errs []error
	for _, s := range live {
		if err := s.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("session %s: %w", s.id, err))
		}
	}
	return errors.Join(errs...)
}
