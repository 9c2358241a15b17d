package logging

import (
	"encoding/hex"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_ followed by 20 hex chars of ULID entropy.
// Example: 20251217_205106_0f3c9a1be27d4c05a7b3
func GenerateSessionID() string {
	return GenerateSessionIDAt(time.Now())
}

// GenerateSessionIDAt is GenerateSessionID with an explicit timestamp.
// The entropy is monotonic within a millisecond, so ids generated by one
// process never repeat even when now does.
func GenerateSessionIDAt(now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(id.Entropy())
}

// ShortSessionID extracts the short ID (last 4 hex chars) from a full session ID.
// Example: "20251217_205106_0f3c9a1be27d4c05a7b3" -> "a7b3"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}
