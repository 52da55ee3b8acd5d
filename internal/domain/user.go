package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether the role is one the portal recognises.
// Anything else is treated the same as having no profile at all.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User represents a profile document in the users collection (either an
// Admin or a Member). The document id matches the id of the credential it
// belongs to; the credential itself lives in its own collection and is
// never touched when a profile is deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DOB       string             `bson:"dob,omitempty" json:"dob,omitempty"` // Stored as entered (YYYY-MM-DD)
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	// --- Member-specific ---
	// Set by out-of-band provisioning; this service only ever reads them.
	AssignedWorkoutPlanID *primitive.ObjectID `bson:"assignedWorkoutPlanId,omitempty" json:"assignedWorkoutPlanId,omitempty"`
	AssignedDietPlanID    *primitive.ObjectID `bson:"assignedDietPlanId,omitempty" json:"assignedDietPlanId,omitempty"`
	MembershipStatus      string              `bson:"membershipStatus,omitempty" json:"membershipStatus,omitempty"`
	MembershipEndDate     *time.Time          `bson:"membershipEndDate,omitempty" json:"membershipEndDate,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsMember() bool {
	return u.Role == RoleMember
}
