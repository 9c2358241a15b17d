package bridge

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/domain/entity"
)

// Router is the dispatch table sessions use to route named events.
// One router is usually shared by every session of a factory.
type Router struct {
	mu       sync.RWMutex
	handlers map[entity.EventName]port.EventHandler
	fallback port.EventHandler
}

// NewRouter creates an empty dispatch table.
func NewRouter() *Router {
	return &Router{handlers: make(map[entity.EventName]port.EventHandler)}
}

// Register binds a handler to an event name.
func (r *Router) Register(name string, handler port.EventHandler) error {
	if name == "" {
		return entity.ErrEmptyEventName
	}
	if handler == nil {
		return errors.New("event handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := entity.EventName(name)
	if _, exists := r.handlers[key]; exists {
		return fmt.Errorf("%q: %w", name, entity.ErrHandlerExists)
	}
	r.handlers[key] = handler
	return nil
}

// RegisterFunc registers a plain function as a handler.
func (r *Router) RegisterFunc(name string, fn port.EventHandlerFunc) error {
	if fn == nil {
		return errors.New("event handler cannot be nil")
	}
	return r.Register(name, fn)
}

// Unregister removes the handler bound to name, if any.
func (r *Router) Unregister(name string) {
	r.mu.Lock()
	delete(r.handlers, entity.EventName(name))
	r.mu.Unlock()
}

// SetFallback sets the handler used for names with no registered handler.
// A nil fallback restores the default of ignoring unknown events.
func (r *Router) SetFallback(handler port.EventHandler) {
	r.mu.Lock()
	r.fallback = handler
	r.mu.Unlock()
}

// Names returns the registered event names, sorted.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// resolve returns the handler for name. matched is false when the fallback
// (or nothing) was picked.
func (r *Router) resolve(name entity.EventName) (handler port.EventHandler, matched bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.handlers[name]; ok {
		return h, true
	}
	return r.fallback, false
}
