package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillStatus enumerates the states a bill can be created with. No
// transition logic is enforced anywhere; "Pay Now" is a simulation stub.
type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

func (s BillStatus) IsValid() bool {
	return s == BillPending || s == BillPaid || s == BillOverdue
}

// IsPayable reports whether the member-facing payment stub should be
// offered for this status.
func (s BillStatus) IsPayable() bool {
	return s == BillPending || s == BillOverdue
}

// Bill represents a bill document raised by an admin against a member.
type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID    primitive.ObjectID `bson:"memberId" json:"memberId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description" json:"description"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
	Status      BillStatus         `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
}
