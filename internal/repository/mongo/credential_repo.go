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

const credentialCollectionName = "credentials"

// mongoCredentialRepository implements repository.CredentialRepository.
// There is intentionally no Delete: profile deletion must never remove the
// authentication identity.
type mongoCredentialRepository struct {
	collection *mongo.Collection
}

// NewMongoCredentialRepository creates a new instance of mongoCredentialRepository.
func NewMongoCredentialRepository(db *mongo.Database) repository.CredentialRepository {
	return &mongoCredentialRepository{
		collection: db.Collection(credentialCollectionName),
	}
}

// Create inserts a new credential.
func (r *mongoCredentialRepository) Create(ctx context.Context, cred *domain.Credential) (primitive.ObjectID, error) {
	if cred.Email == "" || cred.PasswordHash == "" {
		return primitive.NilObjectID, errors.New("credential email and password hash are required")
	}

	cred.ID = primitive.NewObjectID()
	cred.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, cred)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves a credential by its email address.
func (r *mongoCredentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}

// GetByID retrieves a credential by its ObjectID.
func (r *mongoCredentialRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Credential, error) {
	var cred domain.Credential
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}

// EnsureCredentialIndexes creates necessary indexes for the credentials collection.
func EnsureCredentialIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
