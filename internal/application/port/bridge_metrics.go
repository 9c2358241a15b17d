package port

import "time"

// Drop reasons reported by BridgeMetrics.EventDropped.
const (
	DropDetached  = "detached"
	DropEmptyName = "empty_name"
)

// BridgeMetrics receives counters from the session bridge.
type BridgeMetrics interface {
	SessionOpened()
	SessionClosed()
	EventAccepted(name string)
	EventDropped(reason string)
	EventHandled(name string, elapsed time.Duration, err error)
	EventUnhandled(name string)
}

// NopBridgeMetrics discards every observation.
type NopBridgeMetrics struct{}

func (NopBridgeMetrics) SessionOpened() {}
func (NopBridgeMetrics) SessionClosed() {}
func (NopBridgeMetrics) EventAccepted(string) {}
func (NopBridgeMetrics) EventDropped(string) {}
func (NopBridgeMetrics) EventHandled(string, time.Duration, error) {}
func (NopBridgeMetrics) EventUnhandled(string) {}
