package entity

import "time"

// EventName is a free-form label for a discrete UI interaction,
// e.g. "button.clicked.save". Its meaning belongs to the runtime.
type EventName string

// Event is a named event as accepted by a session.
type Event struct {
	// Seq is the arrival order within the session, starting at 1.
	Seq        uint64
	Name       EventName
	ReceivedAt time.Time
}

// JournalRecord is a delivered event persisted for later inspection.
type JournalRecord struct {
	ID         string
	SessionID  SessionID
	Seq        uint64
	Name       EventName
	ReceivedAt time.Time
}

// NewJournalRecord builds a journal record for ev. The caller assigns ID.
func NewJournalRecord(sessionID SessionID, ev Event) *JournalRecord {
	return &JournalRecord{
		SessionID:  sessionID,
		Seq:        ev.Seq,
		Name:       ev.Name,
		ReceivedAt: ev.ReceivedAt.UTC(),
	}
}
