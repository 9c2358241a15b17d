// Package surface holds the toolkit-independent picture of a window driven
// by a session: the classes it was built from, its bindings and its state.
// Toolkit adapters apply session actions to a Surface on their main loop
// and render it however they like.
package surface

import (
	"sort"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// WindowClass describes the window to create.
type WindowClass struct {
	Title string
}

// ViewClass describes the root view.
type ViewClass struct {
	Name string
}

// ViewModelClass describes what the view exposes: the keys or buttons that
// turn into events.
type ViewModelClass struct {
	Bindings []Binding
}

// Binding maps a key (or button label) to the event it sends.
type Binding struct {
	Key   string
	Event string
}

// BindingsFromMap sorts a key->event map into bindings.
func BindingsFromMap(m map[string]string) []Binding {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, Binding{Key: k, Event: m[k]})
	}
	return out
}

// Entry is one state key and its value.
type Entry struct {
	Key   string
	Value string
}

// Surface is not safe for concurrent use; it belongs to the UI main loop.
type Surface struct {
	title    string
	view     string
	bindings []Binding
	created  bool
	attached bool
	open     bool
	closed   bool
	state    map[string]string
	order    []string
	subviews map[entity.ViewID]entity.ViewID // child -> parent
	applied  int
}

// New creates an empty surface.
func New() *Surface {
	return &Surface{
		state:    make(map[string]string),
		subviews: make(map[entity.ViewID]entity.ViewID),
	}
}

// Apply updates the surface for one session action. Unknown classes and
// actions for other views are ignored.
func (s *Surface) Apply(action entity.Action) {
	s.applied++

	switch action.Kind {
	case entity.ActionCreateWindow:
		s.created = true
		if c, ok := action.Class.(WindowClass); ok {
			s.title = c.Title
		}
	case entity.ActionCreateView:
		if c, ok := action.Class.(ViewClass); ok {
			s.view = c.Name
		}
		if m, ok := action.Model.(ViewModelClass); ok {
			s.bindings = append([]Binding(nil), m.Bindings...)
		}
	case entity.ActionSetRootView:
		s.attached = true
	case entity.ActionOpenWindow:
		s.open = true
	case entity.ActionSetState:
		if action.View != entity.RootView {
			return
		}
		if _, seen := s.state[action.Key]; !seen {
			s.order = append(s.order, action.Key)
		}
		s.state[action.Key] = action.Value
	case entity.ActionAddSubview:
		if action.View == entity.RootView {
			return
		}
		s.subviews[action.View] = action.Parent
	case entity.ActionRemoveFromSuperview:
		delete(s.subviews, action.View)
	case entity.ActionCloseWindow:
		s.open = false
		s.closed = true
	}
}

// Subviews returns attached child views in id order.
func (s *Surface) Subviews() []entity.ViewID {
	ids := make([]entity.ViewID, 0, len(s.subviews))
	for id := range s.subviews {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Parent returns the view a subview is attached to.
func (s *Surface) Parent(view entity.ViewID) (entity.ViewID, bool) {
	p, ok := s.subviews[view]
	return p, ok
}

// Title returns the window title.
func (s *Surface) Title() string { return s.title }

// ViewName returns the name of the root view.
func (s *Surface) ViewName() string { return s.view }

// Bindings returns the view model's bindings.
func (s *Surface) Bindings() []Binding { return s.bindings }

// Ready reports whether the window was created, given a root view and opened.
func (s *Surface) Ready() bool { return s.created && s.attached && s.open }

// Closed reports whether the session closed the window.
func (s *Surface) Closed() bool { return s.closed }

// Applied returns the number of actions applied so far.
func (s *Surface) Applied() int { return s.applied }

// Value returns the state value for key.
func (s *Surface) Value(key string) (string, bool) {
	v, ok := s.state[key]
	return v, ok
}

// State returns the state entries in first-set order.
func (s *Surface) State() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, Entry{Key: k, Value: s.state[k]})
	}
	return out
}

// EventFor returns the event bound to key.
func (s *Surface) EventFor(key string) (string, bool) {
	for _, b := range s.bindings {
		if b.Key == key {
			return b.Event, true
		}
	}
	return "", false
}
