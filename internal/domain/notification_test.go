package domain

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotificationReadSetIsMonotonic(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	n := &Notification{TargetUserIDs: []primitive.ObjectID{alice, bob}}

	if n.IsReadBy(alice) {
		t.Fatal("fresh notification must read as unread")
	}

	n.MarkReadBy(alice)
	if !n.IsReadBy(alice) {
		t.Fatal("alice should be in the read set after marking")
	}
	if n.IsReadBy(bob) {
		t.Fatal("bob never read the notification")
	}

	// Marking again must not grow the set.
	n.MarkReadBy(alice)
	if len(n.ReadBy) != 1 {
		t.Fatalf("read set grew on a repeated mark: %d entries", len(n.ReadBy))
	}

	n.MarkReadBy(bob)
	if len(n.ReadBy) != 2 {
		t.Fatalf("expected both readers in the set, got %d", len(n.ReadBy))
	}
}

func TestNotificationTargeting(t *testing.T) {
	target := primitive.NewObjectID()
	outsider := primitive.NewObjectID()
	n := &Notification{TargetUserIDs: []primitive.ObjectID{target}}

	if !n.IsTargetedAt(target) {
		t.Fatal("target should be addressed")
	}
	if n.IsTargetedAt(outsider) {
		t.Fatal("outsider should not be addressed")
	}
}
