package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlan is a reusable workout template created by an admin. Members
// are linked to a plan through User.AssignedWorkoutPlanID, which is set by
// an out-of-band process.
type WorkoutPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   string             `bson:"exercises" json:"exercises"` // Free text, one exercise per line
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
}

// DietPlan is a reusable diet template, assigned the same way as workout
// plans via User.AssignedDietPlanID.
type DietPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Details   string             `bson:"details" json:"details"` // Free text: meals, macros, etc.
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
}
