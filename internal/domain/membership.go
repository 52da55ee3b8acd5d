package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership documents are provisioned outside this portal; the dashboard
// only counts the active ones. Nothing here creates or updates them.
type Membership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID primitive.ObjectID `bson:"memberId,omitempty" json:"memberId,omitempty"`
	Status   string             `bson:"status" json:"status"`
	EndDate  time.Time          `bson:"endDate" json:"endDate"`
}

// MembershipActive is the status value the overview counts against.
const MembershipActive = "active"
