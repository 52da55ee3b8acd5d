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

const billCollectionName = "bills"

// mongoBillRepository implements the repository.BillRepository interface using MongoDB.
type mongoBillRepository struct {
	collection *mongo.Collection
}

// NewMongoBillRepository creates a new instance of mongoBillRepository.
func NewMongoBillRepository(db *mongo.Database) repository.BillRepository {
	return &mongoBillRepository{
		collection: db.Collection(billCollectionName),
	}
}

// Create inserts a new bill.
func (r *mongoBillRepository) Create(ctx context.Context, bill *domain.Bill) (primitive.ObjectID, error) {
	if bill.MemberID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("bill member ID is required")
	}

	bill.ID = primitive.NewObjectID()
	bill.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, bill)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single bill.
func (r *mongoBillRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// GetByMemberID retrieves all bills for a member, newest first.
func (r *mongoBillRepository) GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error) {
	filter := bson.M{"memberId": memberID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bills []domain.Bill
	if err = cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// CountPendingDueBefore counts pending bills due on or before the cutoff,
// feeding the "upcoming payments" figure on the dashboard.
func (r *mongoBillRepository) CountPendingDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":  domain.BillPending,
		"dueDate": bson.M{"$lte": cutoff},
	}
	return r.collection.CountDocuments(ctx, filter)
}

// EnsureBillIndexes creates necessary indexes for the bills collection.
func EnsureBillIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "dueDate", Value: 1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
