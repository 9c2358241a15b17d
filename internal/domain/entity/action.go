package entity

// ActionKind enumerates the updates a session sends back to the UI layer.
type ActionKind string

const (
	ActionCreateWindow        ActionKind = "create_window"
	ActionOpenWindow          ActionKind = "open_window"
	ActionCreateView          ActionKind = "create_view"
	ActionSetRootView         ActionKind = "set_root_view"
	ActionAddSubview          ActionKind = "add_subview"
	ActionRemoveFromSuperview ActionKind = "remove_from_superview"
	ActionSetState            ActionKind = "set_state"
	ActionCloseWindow         ActionKind = "close_window"
)

// WindowID and ViewID are runtime-assigned ids scoped to one session.
type (
	WindowID uint32
	ViewID   uint32
)

// RootWindow and RootView are the ids the bootstrap actions use.
const (
	RootWindow WindowID = 1
	RootView   ViewID   = 1
)

// Action is one update for the UI layer. Which fields are meaningful depends
// on Kind:
//   - create_window: Window, Class
//   - create_view: View, Class (view class), Model (view model class)
//   - set_root_view, open_window, close_window: Window (and View for set_root_view)
//   - add_subview, remove_from_superview: View, Parent
//   - set_state: View, Key, Value
type Action struct {
	Kind   ActionKind
	Window WindowID
	View   ViewID
	Parent ViewID
	Class  ClassDescriptor
	Model  ClassDescriptor
	Key    string
	Value  string
}

// SetState builds a set_state action targeting the root view.
func SetState(key, value string) Action {
	return Action{Kind: ActionSetState, View: RootView, Key: key, Value: value}
}

// BootstrapActions returns the actions that bring a new window on screen:
// create the window and its content view, attach the view, then open it.
func BootstrapActions(d Descriptors) []Action {
	return []Action{
		{Kind: ActionCreateWindow, Window: RootWindow, Class: d.Window},
		{Kind: ActionCreateView, View: RootView, Class: d.View, Model: d.ViewModel},
		{Kind: ActionSetRootView, Window: RootWindow, View: RootView},
		{Kind: ActionOpenWindow, Window: RootWindow},
	}
}
