package api

import (
	"context"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stub services with overridable behavior per test.

type stubAuthService struct {
	registerFn func(ctx context.Context, params service.RegisterParams) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, params service.RegisterParams) (*domain.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, params)
	}
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return "", nil, service.ErrAuthenticationFailed
}

func (s *stubAuthService) GetJWTSecret() string { return "stub-secret" }

type stubAdminService struct {
	getOverviewFn     func(ctx context.Context) (*service.DashboardOverview, error)
	addMemberFn       func(ctx context.Context, adminID primitive.ObjectID, params service.AddMemberParams) (*domain.User, error)
	listMembersFn     func(ctx context.Context) ([]domain.User, error)
	listFeePackagesFn func(ctx context.Context) ([]domain.FeePackage, error)
}

func (s *stubAdminService) GetOverview(ctx context.Context) (*service.DashboardOverview, error) {
	if s.getOverviewFn != nil {
		return s.getOverviewFn(ctx)
	}
	return &service.DashboardOverview{}, nil
}

func (s *stubAdminService) AddMember(ctx context.Context, adminID primitive.ObjectID, params service.AddMemberParams) (*domain.User, error) {
	if s.addMemberFn != nil {
		return s.addMemberFn(ctx, adminID, params)
	}
	return &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleMember}, nil
}

func (s *stubAdminService) ListMembers(ctx context.Context) ([]domain.User, error) {
	if s.listMembersFn != nil {
		return s.listMembersFn(ctx)
	}
	return nil, nil
}

func (s *stubAdminService) UpdateMember(ctx context.Context, adminID, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error) {
	return nil, service.ErrMemberNotFound
}

func (s *stubAdminService) DeleteMember(ctx context.Context, adminID, memberID primitive.ObjectID) error {
	return nil
}

func (s *stubAdminService) CreateBill(ctx context.Context, adminID primitive.ObjectID, params service.CreateBillParams) (*domain.Bill, error) {
	return nil, service.ErrMemberNotFound
}

func (s *stubAdminService) AddFeePackage(ctx context.Context, adminID primitive.ObjectID, name string, price float64, durationDays int, description string) (*domain.FeePackage, error) {
	return &domain.FeePackage{ID: primitive.NewObjectID(), Name: name, Price: price, DurationDays: durationDays}, nil
}

func (s *stubAdminService) ListFeePackages(ctx context.Context) ([]domain.FeePackage, error) {
	if s.listFeePackagesFn != nil {
		return s.listFeePackagesFn(ctx)
	}
	return nil, nil
}

func (s *stubAdminService) DeleteFeePackage(ctx context.Context, adminID, packageID primitive.ObjectID) error {
	return nil
}

func (s *stubAdminService) SendNotification(ctx context.Context, adminID primitive.ObjectID, title, message string) (*domain.Notification, error) {
	return &domain.Notification{ID: primitive.NewObjectID(), Title: title, Message: message}, nil
}

func (s *stubAdminService) AddWorkoutPlan(ctx context.Context, adminID primitive.ObjectID, name, description, exercises string) (*domain.WorkoutPlan, error) {
	return &domain.WorkoutPlan{ID: primitive.NewObjectID(), Name: name, Exercises: exercises}, nil
}

func (s *stubAdminService) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	return nil, nil
}

func (s *stubAdminService) DeleteWorkoutPlan(ctx context.Context, adminID, planID primitive.ObjectID) error {
	return nil
}

func (s *stubAdminService) AddDietPlan(ctx context.Context, adminID primitive.ObjectID, name, details string) (*domain.DietPlan, error) {
	return &domain.DietPlan{ID: primitive.NewObjectID(), Name: name, Details: details}, nil
}

func (s *stubAdminService) ListDietPlans(ctx context.Context) ([]domain.DietPlan, error) {
	return nil, nil
}

func (s *stubAdminService) DeleteDietPlan(ctx context.Context, adminID, planID primitive.ObjectID) error {
	return nil
}

type stubMemberService struct {
	getProfileFn        func(ctx context.Context, memberID primitive.ObjectID) (*domain.User, error)
	listBillsFn         func(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error)
	simulatePaymentFn   func(ctx context.Context, memberID, billID primitive.ObjectID) (*domain.Bill, error)
	listNotificationsFn func(ctx context.Context, memberID primitive.ObjectID) ([]domain.Notification, error)
	getWorkoutPlanFn    func(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutPlan, error)
	getDietPlanFn       func(ctx context.Context, memberID primitive.ObjectID) (*domain.DietPlan, error)
}

func (s *stubMemberService) GetProfile(ctx context.Context, memberID primitive.ObjectID) (*domain.User, error) {
	if s.getProfileFn != nil {
		return s.getProfileFn(ctx, memberID)
	}
	return nil, service.ErrProfileNotFound
}

func (s *stubMemberService) UpdateProfile(ctx context.Context, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error) {
	return nil, service.ErrProfileNotFound
}

func (s *stubMemberService) ListBills(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error) {
	if s.listBillsFn != nil {
		return s.listBillsFn(ctx, memberID)
	}
	return nil, nil
}

func (s *stubMemberService) SimulatePayment(ctx context.Context, memberID, billID primitive.ObjectID) (*domain.Bill, error) {
	if s.simulatePaymentFn != nil {
		return s.simulatePaymentFn(ctx, memberID, billID)
	}
	return nil, service.ErrBillNotFound
}

func (s *stubMemberService) ListNotifications(ctx context.Context, memberID primitive.ObjectID) ([]domain.Notification, error) {
	if s.listNotificationsFn != nil {
		return s.listNotificationsFn(ctx, memberID)
	}
	return nil, nil
}

func (s *stubMemberService) MarkNotificationRead(ctx context.Context, memberID, notificationID primitive.ObjectID) error {
	return nil
}

func (s *stubMemberService) GetAssignedWorkoutPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	if s.getWorkoutPlanFn != nil {
		return s.getWorkoutPlanFn(ctx, memberID)
	}
	return nil, service.ErrNoPlanAssigned
}

func (s *stubMemberService) GetAssignedDietPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.DietPlan, error) {
	if s.getDietPlanFn != nil {
		return s.getDietPlanFn(ctx, memberID)
	}
	return nil, service.ErrNoPlanAssigned
}
