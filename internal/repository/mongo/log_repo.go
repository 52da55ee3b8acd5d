package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const logCollectionName = "logs"

// mongoLogRepository implements the repository.LogRepository interface.
// Entries are append-only with no retention policy.
type mongoLogRepository struct {
	collection *mongo.Collection
}

// NewMongoLogRepository creates a new instance of mongoLogRepository.
func NewMongoLogRepository(db *mongo.Database) repository.LogRepository {
	return &mongoLogRepository{
		collection: db.Collection(logCollectionName),
	}
}

// Create appends an audit entry. The timestamp is assigned here, on the
// server side, not by the caller.
func (r *mongoLogRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	if entry.Action == "" {
		return errors.New("log entry action is required")
	}

	entry.ID = primitive.NewObjectID()
	entry.Timestamp = time.Now().UTC()
	if entry.UserID == "" {
		entry.UserID = domain.AnonymousUserID
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// GetRecent retrieves the latest audit entries for the dashboard feed.
func (r *mongoLogRepository) GetRecent(ctx context.Context, limit int64) ([]domain.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.LogEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureLogIndexes creates necessary indexes for the logs collection.
func EnsureLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
