package mongo

import (
	"context"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const membershipCollectionName = "memberships"

// mongoMembershipRepository implements repository.MembershipRepository.
// Memberships are provisioned outside this portal, so reads are all there is.
type mongoMembershipRepository struct {
	collection *mongo.Collection
}

// NewMongoMembershipRepository creates a new instance of mongoMembershipRepository.
func NewMongoMembershipRepository(db *mongo.Database) repository.MembershipRepository {
	return &mongoMembershipRepository{
		collection: db.Collection(membershipCollectionName),
	}
}

// CountActive counts memberships that are active and not yet expired.
func (r *mongoMembershipRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":  domain.MembershipActive,
		"endDate": bson.M{"$gt": now},
	}
	return r.collection.CountDocuments(ctx, filter)
}
