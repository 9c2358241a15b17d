package entity

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies a runtime session.
// Generated ids are YYYYMMDD_HHMMSS_ followed by 20 hex chars and are unique
// within a process even when created in the same instant.
type SessionID string

// Short returns the last four characters of the id.
func (id SessionID) Short() string {
	s := string(id)
	if len(s) < 4 {
		return s
	}
	return s[len(s)-4:]
}

// Handle addresses a session slot in the runtime arena.
// A handle stays valid until the slot is released; the generation makes a
// released handle unusable even after the slot is reused.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h was never assigned. Generations start at 1.
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.Index, h.Generation)
}

// SessionInfo is a snapshot of a live session for listings.
type SessionInfo struct {
	ID          SessionID
	Handle      Handle
	Descriptors Descriptors
	StartedAt   time.Time
	Delivered   uint64
	Pending     int
}

// ForwarderState is the lifecycle state of an event forwarder.
type ForwarderState int

const (
	// ForwarderBound means the target session is alive and accepts events.
	ForwarderBound ForwarderState = iota
	// ForwarderDetached means the target session is gone; sends are no-ops.
	ForwarderDetached
)

func (s ForwarderState) String() string {
	switch s {
	case ForwarderBound:
		return "bound"
	case ForwarderDetached:
		return "detached"
	default:
		return fmt.Sprintf("ForwarderState(%d)", int(s))
	}
}
