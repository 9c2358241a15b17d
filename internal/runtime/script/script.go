// Package script runs event handlers written in JavaScript.
//
// A script registers handlers with on(name, fn); "*" catches every event
// without a handler of its own. Inside a handler, setState(key, value)
// updates the window and log(msg) writes to the session log. Handlers get
// an event object with name, seq, session and receivedAt (ms since epoch).
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
)

// Wildcard is the event name of the catch-all handler.
const Wildcard = "*"

// DefaultTimeout bounds a single handler call.
const DefaultTimeout = time.Second

var errOutsideHandler = errors.New("setState called outside an event handler")

// Runtime is a JavaScript VM holding a script's handlers. The VM is not
// safe for concurrent use, so handler calls are serialized.
type Runtime struct {
	mu       sync.Mutex
	vm       *sobek.Runtime
	name     string
	handlers map[string]sobek.Callable
	order    []string
	timeout  time.Duration

	// Set for the duration of a handler call.
	ctx context.Context
	out port.ActionEmitter
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout bounds each handler call. Zero or less disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) { r.timeout = d }
}

// Load reads and runs the script at path.
func Load(ctx context.Context, path string, opts ...Option) (*Runtime, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return New(ctx, filepath.Base(path), string(src), opts...)
}

// New runs src once so it can register its handlers.
func New(ctx context.Context, name, src string, opts ...Option) (*Runtime, error) {
	r := &Runtime{
		vm:       sobek.New(),
		name:     name,
		handlers: make(map[string]sobek.Callable),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.installGlobals(); err != nil {
		return nil, err
	}

	program, err := sobek.Compile(name, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	r.ctx = ctx
	_, err = r.vm.RunProgram(program)
	r.ctx = nil
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	logging.FromContext(ctx).Info().
		Str("script", name).
		Strs("events", r.order).
		Msg("script loaded")
	return r, nil
}

func (r *Runtime) installGlobals() error {
	globals := map[string]func(sobek.FunctionCall) sobek.Value{
		"on":       r.jsOn,
		"setState": r.jsSetState,
		"log":      r.jsLog,
	}
	for name, fn := range globals {
		if err := r.vm.Set(name, fn); err != nil {
			return fmt.Errorf("install %s: %w", name, err)
		}
	}
	return nil
}

func (r *Runtime) jsOn(call sobek.FunctionCall) sobek.Value {
	name := call.Argument(0).String()
	fn, ok := sobek.AssertFunction(call.Argument(1))
	if name == "" || sobek.IsUndefined(call.Argument(0)) || !ok {
		panic(r.vm.NewTypeError("on(name, fn): expected an event name and a function"))
	}
	if _, exists := r.handlers[name]; exists {
		panic(r.vm.NewTypeError(fmt.Sprintf("on: a handler for %q is already registered", name)))
	}
	r.handlers[name] = fn
	r.order = append(r.order, name)
	return sobek.Undefined()
}

func (r *Runtime) jsSetState(call sobek.FunctionCall) sobek.Value {
	if r.out == nil {
		panic(r.vm.NewGoError(errOutsideHandler))
	}
	key := call.Argument(0).String()
	if key == "" {
		panic(r.vm.NewTypeError("setState(key, value): key cannot be empty"))
	}
	r.out.Emit(entity.SetState(key, call.Argument(1).String()))
	return sobek.Undefined()
}

func (r *Runtime) jsLog(call sobek.FunctionCall) sobek.Value {
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logging.FromContext(ctx).Info().Str("script", r.name).Msg(call.Argument(0).String())
	return sobek.Undefined()
}

// Events returns the event names the script handles, in registration order.
func (r *Runtime) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Register binds the script's handlers to router. The "*" handler becomes
// the router fallback.
func (r *Runtime) Register(router *bridge.Router) error {
	for _, name := range r.Events() {
		if name == Wildcard {
			router.SetFallback(r.handler(name))
			continue
		}
		if err := router.Register(name, r.handler(name)); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

func (r *Runtime) handler(name string) port.EventHandlerFunc {
	return func(ctx context.Context, ev entity.Event, out port.ActionEmitter) error {
		return r.call(ctx, name, ev, out)
	}
}

func (r *Runtime) call(ctx context.Context, name string, ev entity.Event, out port.ActionEmitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn, ok := r.handlers[name]
	if !ok {
		return fmt.Errorf("script has no handler for %q", name)
	}

	r.ctx, r.out = ctx, out
	defer func() { r.ctx, r.out = nil, nil }()

	if r.timeout > 0 {
		timer := time.AfterFunc(r.timeout, func() {
			r.vm.Interrupt(fmt.Sprintf("handler for %q exceeded %s", ev.Name, r.timeout))
		})
		defer func() {
			timer.Stop()
			r.vm.ClearInterrupt()
		}()
	}

	if _, err := fn(sobek.Undefined(), r.eventValue(ctx, ev)); err != nil {
		return fmt.Errorf("%s: %q: %w", r.name, ev.Name, err)
	}
	return nil
}

func (r *Runtime) eventValue(ctx context.Context, ev entity.Event) sobek.Value {
	obj := r.vm.NewObject()
	session, _ := bridge.SessionIDFromContext(ctx)
	_ = obj.Set("name", string(ev.Name))
	_ = obj.Set("seq", int64(ev.Seq))
	_ = obj.Set("session", string(session))
	_ = obj.Set("receivedAt", ev.ReceivedAt.UnixMilli())
	return obj
}
