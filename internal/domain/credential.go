package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credential is the authentication identity backing a profile. It stands in
// for the external identity provider: sign-in verifies against it, and an
// admin deleting a member removes only the profile document, never the
// credential (deleting identities needs a privileged server-side process,
// which is outside this portal).
type Credential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
