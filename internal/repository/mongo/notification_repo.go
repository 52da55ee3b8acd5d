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

const notificationCollectionName = "notifications"

// mongoNotificationRepository implements repository.NotificationRepository.
type mongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new instance of mongoNotificationRepository.
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{
		collection: db.Collection(notificationCollectionName),
	}
}

// Create inserts a new notification with an empty read set.
func (r *mongoNotificationRepository) Create(ctx context.Context, n *domain.Notification) (primitive.ObjectID, error) {
	if n.Title == "" {
		return primitive.NilObjectID, errors.New("notification title is required")
	}

	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	if n.TargetUserIDs == nil {
		n.TargetUserIDs = []primitive.ObjectID{}
	}
	if n.ReadBy == nil {
		n.ReadBy = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByTargetUserID retrieves notifications addressed to a user, newest first.
func (r *mongoNotificationRepository) GetByTargetUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	// Array-membership filter, mirroring an array-contains query.
	filter := bson.M{"targetUserIds": userID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []domain.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead adds the user to the notification's readBy set. $addToSet keeps
// the set free of duplicates, so marking twice is a harmless no-op. The
// filter also requires the user to be a target, so notifications addressed
// to somebody else surface as not found.
func (r *mongoNotificationRepository) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) error {
	filter := bson.M{"_id": notificationID, "targetUserIds": userID}
	update := bson.M{
		"$addToSet": bson.M{"readBy": userID},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	// ModifiedCount of 0 means the id was already in the set, which is fine.
	return nil
}

// EnsureNotificationIndexes creates necessary indexes for the notifications collection.
func EnsureNotificationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "targetUserIds", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
