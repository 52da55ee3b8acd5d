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

const feePackageCollectionName = "feePackages"

// mongoFeePackageRepository implements repository.FeePackageRepository.
type mongoFeePackageRepository struct {
	collection *mongo.Collection
}

// NewMongoFeePackageRepository creates a new instance of mongoFeePackageRepository.
func NewMongoFeePackageRepository(db *mongo.Database) repository.FeePackageRepository {
	return &mongoFeePackageRepository{
		collection: db.Collection(feePackageCollectionName),
	}
}

// Create inserts a new fee package.
func (r *mongoFeePackageRepository) Create(ctx context.Context, pkg *domain.FeePackage) (primitive.ObjectID, error) {
	if pkg.Name == "" {
		return primitive.NilObjectID, errors.New("fee package name is required")
	}

	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetAll retrieves every fee package ordered by name.
func (r *mongoFeePackageRepository) GetAll(ctx context.Context) ([]domain.FeePackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []domain.FeePackage
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// Delete removes a fee package outright.
func (r *mongoFeePackageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFeePackageIndexes creates necessary indexes for the feePackages collection.
func EnsureFeePackageIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
