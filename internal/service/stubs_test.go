package service

import (
	"context"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stub repositories with overridable behavior per test. Unset getters
// report missing data; unset writers succeed.

type stubCredentialRepo struct {
	createFn     func(ctx context.Context, cred *domain.Credential) (primitive.ObjectID, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Credential, error)
	getByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.Credential, error)
}

func (s *stubCredentialRepo) Create(ctx context.Context, cred *domain.Credential) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, cred)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubCredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (s *stubCredentialRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Credential, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

type stubUserRepo struct {
	createFn           func(ctx context.Context, user *domain.User) error
	getByIDFn          func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	getMembersFn       func(ctx context.Context) ([]domain.User, error)
	getRecentMembersFn func(ctx context.Context, limit int64) ([]domain.User, error)
	countMembersFn     func(ctx context.Context) (int64, error)
	getMemberIDsFn     func(ctx context.Context) ([]primitive.ObjectID, error)
	updateContactFn    func(ctx context.Context, id primitive.ObjectID, name, phone, dob, address string) error
	deleteFn           func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) GetMembers(ctx context.Context) ([]domain.User, error) {
	if s.getMembersFn != nil {
		return s.getMembersFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) GetRecentMembers(ctx context.Context, limit int64) ([]domain.User, error) {
	if s.getRecentMembersFn != nil {
		return s.getRecentMembersFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubUserRepo) CountMembers(ctx context.Context) (int64, error) {
	if s.countMembersFn != nil {
		return s.countMembersFn(ctx)
	}
	return 0, nil
}

func (s *stubUserRepo) GetMemberIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	if s.getMemberIDsFn != nil {
		return s.getMemberIDsFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) UpdateContact(ctx context.Context, id primitive.ObjectID, name, phone, dob, address string) error {
	if s.updateContactFn != nil {
		return s.updateContactFn(ctx, id, name, phone, dob, address)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubMembershipRepo struct {
	countActiveFn func(ctx context.Context, now time.Time) (int64, error)
}

func (s *stubMembershipRepo) CountActive(ctx context.Context, now time.Time) (int64, error) {
	if s.countActiveFn != nil {
		return s.countActiveFn(ctx, now)
	}
	return 0, nil
}

type stubBillRepo struct {
	createFn                func(ctx context.Context, bill *domain.Bill) (primitive.ObjectID, error)
	getByIDFn               func(ctx context.Context, id primitive.ObjectID) (*domain.Bill, error)
	getByMemberIDFn         func(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error)
	countPendingDueBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (s *stubBillRepo) Create(ctx context.Context, bill *domain.Bill) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, bill)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubBillRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bill, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubBillRepo) GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error) {
	if s.getByMemberIDFn != nil {
		return s.getByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}

func (s *stubBillRepo) CountPendingDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.countPendingDueBeforeFn != nil {
		return s.countPendingDueBeforeFn(ctx, cutoff)
	}
	return 0, nil
}

type stubFeePackageRepo struct {
	createFn func(ctx context.Context, pkg *domain.FeePackage) (primitive.ObjectID, error)
	getAllFn func(ctx context.Context) ([]domain.FeePackage, error)
	deleteFn func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubFeePackageRepo) Create(ctx context.Context, pkg *domain.FeePackage) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, pkg)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubFeePackageRepo) GetAll(ctx context.Context) ([]domain.FeePackage, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubFeePackageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubNotificationRepo struct {
	createFn            func(ctx context.Context, n *domain.Notification) (primitive.ObjectID, error)
	getByTargetUserIDFn func(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error)
	markReadFn          func(ctx context.Context, notificationID, userID primitive.ObjectID) error
}

func (s *stubNotificationRepo) Create(ctx context.Context, n *domain.Notification) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, n)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubNotificationRepo) GetByTargetUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	if s.getByTargetUserIDFn != nil {
		return s.getByTargetUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, notificationID, userID)
	}
	return nil
}

type stubWorkoutPlanRepo struct {
	createFn  func(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	getByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	getAllFn  func(ctx context.Context) ([]domain.WorkoutPlan, error)
	deleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubWorkoutPlanRepo) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, plan)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubWorkoutPlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubWorkoutPlanRepo) GetAll(ctx context.Context) ([]domain.WorkoutPlan, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubWorkoutPlanRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubDietPlanRepo struct {
	createFn  func(ctx context.Context, plan *domain.DietPlan) (primitive.ObjectID, error)
	getByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.DietPlan, error)
	getAllFn  func(ctx context.Context) ([]domain.DietPlan, error)
	deleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubDietPlanRepo) Create(ctx context.Context, plan *domain.DietPlan) (primitive.ObjectID, error) {
	if s.createFn != nil {
		return s.createFn(ctx, plan)
	}
	return primitive.NewObjectID(), nil
}

func (s *stubDietPlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietPlan, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubDietPlanRepo) GetAll(ctx context.Context) ([]domain.DietPlan, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubDietPlanRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubLogRepo struct {
	createFn    func(ctx context.Context, entry *domain.LogEntry) error
	getRecentFn func(ctx context.Context, limit int64) ([]domain.LogEntry, error)
}

func (s *stubLogRepo) Create(ctx context.Context, entry *domain.LogEntry) error {
	if s.createFn != nil {
		return s.createFn(ctx, entry)
	}
	return nil
}

func (s *stubLogRepo) GetRecent(ctx context.Context, limit int64) ([]domain.LogEntry, error) {
	if s.getRecentFn != nil {
		return s.getRecentFn(ctx, limit)
	}
	return nil, nil
}
