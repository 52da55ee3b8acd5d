package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an announcement sent by an admin to a set of members.
// The read state is tracked per recipient in ReadBy and only ever grows.
type Notification struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title         string               `bson:"title" json:"title"`
	Message       string               `bson:"message" json:"message"`
	TargetUserIDs []primitive.ObjectID `bson:"targetUserIds" json:"targetUserIds"`
	SentBy        primitive.ObjectID   `bson:"sentBy" json:"sentBy"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	ReadBy        []primitive.ObjectID `bson:"readBy" json:"readBy"`
}

// IsReadBy reports whether the given user has read the notification.
func (n *Notification) IsReadBy(userID primitive.ObjectID) bool {
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// MarkReadBy adds the user to the read set. The set is monotonic: marking
// twice for the same user leaves it unchanged, and ids are never removed.
func (n *Notification) MarkReadBy(userID primitive.ObjectID) {
	if n.IsReadBy(userID) {
		return
	}
	n.ReadBy = append(n.ReadBy, userID)
}

// IsTargetedAt reports whether the notification was addressed to the user.
func (n *Notification) IsTargetedAt(userID primitive.ObjectID) bool {
	for _, id := range n.TargetUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
