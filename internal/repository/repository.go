package repository

import (
	"context"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CredentialRepository manages authentication identities. Credentials are
// created alongside profiles but deliberately have no Delete: removing an
// identity requires a privileged server-side process outside this portal.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Credential, error)
}

// UserRepository defines the interface for profile documents.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetMembers(ctx context.Context) ([]domain.User, error) // role=member, createdAt desc
	GetRecentMembers(ctx context.Context, limit int64) ([]domain.User, error)
	CountMembers(ctx context.Context) (int64, error)
	GetMemberIDs(ctx context.Context) ([]primitive.ObjectID, error)
	UpdateContact(ctx context.Context, id primitive.ObjectID, name, phone, dob, address string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MembershipRepository is read-only here: memberships are provisioned by an
// external process and only counted for the dashboard.
type MembershipRepository interface {
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// BillRepository defines the interface for bill documents.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bill, error)
	GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error) // createdAt desc
	CountPendingDueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// FeePackageRepository defines the interface for fee package documents.
type FeePackageRepository interface {
	Create(ctx context.Context, pkg *domain.FeePackage) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.FeePackage, error) // name asc
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NotificationRepository defines the interface for notification documents.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (primitive.ObjectID, error)
	GetByTargetUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) // createdAt desc
	// MarkRead adds userID to the readBy set of a notification targeted
	// at them. Adding an id that is already present is a no-op, keeping
	// the set monotonic; an untargeted notification reads as not found.
	MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) error
}

// WorkoutPlanRepository defines the interface for workout plan documents.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetAll(ctx context.Context) ([]domain.WorkoutPlan, error) // name asc
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DietPlanRepository defines the interface for diet plan documents.
type DietPlanRepository interface {
	Create(ctx context.Context, plan *domain.DietPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietPlan, error)
	GetAll(ctx context.Context) ([]domain.DietPlan, error) // name asc
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// LogRepository defines the interface for audit log entries.
type LogRepository interface {
	Create(ctx context.Context, entry *domain.LogEntry) error
	GetRecent(ctx context.Context, limit int64) ([]domain.LogEntry, error) // timestamp desc
}
