package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnonymousUserID is recorded when an action happens without an
// authenticated identity (e.g. a failed login).
const AnonymousUserID = "anonymous"

// LogEntry is a best-effort audit record. Entries are append-only, carry a
// free-form detail map, and have no retention policy.
type LogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    string             `bson:"action" json:"action"`
	Details   map[string]any     `bson:"details,omitempty" json:"details,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	UserID    string             `bson:"userId" json:"userId"` // Hex id or "anonymous"
}
