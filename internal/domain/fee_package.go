package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeePackage represents a membership pricing package. Packages are not
// linked to users or bills; admins reference them by hand when billing.
type FeePackage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Price        float64            `bson:"price" json:"price"`
	DurationDays int                `bson:"duration" json:"duration"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
