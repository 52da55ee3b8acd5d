package service

import (
	"context"
	"errors"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound     = errors.New("profile not found, please contact admin")
	ErrNoPlanAssigned      = errors.New("no plan assigned yet")
	ErrAssignedPlanMissing = errors.New("assigned plan no longer exists")
	ErrBillNotFound        = errors.New("bill not found")
	ErrBillNotPayable      = errors.New("bill is not payable")
	ErrNotificationMissing = errors.New("notification not found")
)

// MemberService covers the member dashboard: own profile, own bills, own
// notifications, and the plans assigned out-of-band. Every query is scoped
// to the calling member's id.
type MemberService interface {
	GetProfile(ctx context.Context, memberID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error)

	ListBills(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error)
	SimulatePayment(ctx context.Context, memberID, billID primitive.ObjectID) (*domain.Bill, error)

	ListNotifications(ctx context.Context, memberID primitive.ObjectID) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, memberID, notificationID primitive.ObjectID) error

	GetAssignedWorkoutPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetAssignedDietPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.DietPlan, error)
}

// memberService implements the MemberService interface.
type memberService struct {
	userRepo    repository.UserRepository
	billRepo    repository.BillRepository
	notifRepo   repository.NotificationRepository
	workoutRepo repository.WorkoutPlanRepository
	dietRepo    repository.DietPlanRepository
	audit       AuditLogger
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(
	userRepo repository.UserRepository,
	billRepo repository.BillRepository,
	notifRepo repository.NotificationRepository,
	workoutRepo repository.WorkoutPlanRepository,
	dietRepo repository.DietPlanRepository,
	audit AuditLogger,
) MemberService {
	return &memberService{
		userRepo:    userRepo,
		billRepo:    billRepo,
		notifRepo:   notifRepo,
		workoutRepo: workoutRepo,
		dietRepo:    dietRepo,
		audit:       audit,
	}
}

// GetProfile fetches the member's own profile, including the read-only
// membership fields set by external provisioning.
func (s *memberService) GetProfile(ctx context.Context, memberID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record("Member profile not found", nil, memberID.Hex())
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	s.audit.Record("Member profile viewed", nil, memberID.Hex())
	return user, nil
}

// UpdateProfile writes the editable contact fields and nothing else.
func (s *memberService) UpdateProfile(ctx context.Context, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	if err := s.userRepo.UpdateContact(ctx, memberID, name, phone, dob, address); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		s.audit.Record("Failed to update member profile", map[string]any{"error": err.Error()}, memberID.Hex())
		return nil, err
	}

	s.audit.Record("Member profile updated", nil, memberID.Hex())
	return s.userRepo.GetByID(ctx, memberID)
}

// ListBills returns the member's bills, newest first.
func (s *memberService) ListBills(ctx context.Context, memberID primitive.ObjectID) ([]domain.Bill, error) {
	bills, err := s.billRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		s.audit.Record("Failed to load member bills", map[string]any{"error": err.Error()}, memberID.Hex())
		return nil, err
	}

	s.audit.Record("Member bills viewed", nil, memberID.Hex())
	return bills, nil
}

// SimulatePayment is the "Pay Now" stub. It verifies the bill belongs to
// the caller and is in a payable state, then acknowledges without touching
// anything: gateway integration is explicitly out of scope.
func (s *memberService) SimulatePayment(ctx context.Context, memberID, billID primitive.ObjectID) (*domain.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	if bill.MemberID != memberID {
		return nil, ErrBillNotFound // Do not leak other members' bills
	}
	if !bill.Status.IsPayable() {
		return nil, ErrBillNotPayable
	}

	s.audit.Record("Payment simulated", map[string]any{"billId": billID.Hex()}, memberID.Hex())
	return bill, nil
}

// ListNotifications returns notifications addressed to the member, newest
// first. Read state per entry is derived from ReadBy by the caller.
func (s *memberService) ListNotifications(ctx context.Context, memberID primitive.ObjectID) ([]domain.Notification, error) {
	notifications, err := s.notifRepo.GetByTargetUserID(ctx, memberID)
	if err != nil {
		s.audit.Record("Failed to load member notifications", map[string]any{"error": err.Error()}, memberID.Hex())
		return nil, err
	}

	s.audit.Record("Member notifications viewed", nil, memberID.Hex())
	return notifications, nil
}

// MarkNotificationRead adds the member to the notification's read set.
// The set only ever grows; marking an already-read notification changes
// nothing. Notifications not addressed to the member read as missing.
func (s *memberService) MarkNotificationRead(ctx context.Context, memberID, notificationID primitive.ObjectID) error {
	if err := s.notifRepo.MarkRead(ctx, notificationID, memberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationMissing
		}
		return err
	}

	s.audit.Record("Notification marked as read", map[string]any{"notificationId": notificationID.Hex()}, memberID.Hex())
	return nil
}

// GetAssignedWorkoutPlan resolves the member's assigned plan. An unset
// assignment short-circuits before any plan query is issued; a dangling
// assignment (plan deleted since) is reported distinctly.
func (s *memberService) GetAssignedWorkoutPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	user, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if user.AssignedWorkoutPlanID == nil {
		s.audit.Record("No workout plan assigned to member", nil, memberID.Hex())
		return nil, ErrNoPlanAssigned
	}

	plan, err := s.workoutRepo.GetByID(ctx, *user.AssignedWorkoutPlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record("Member workout plan not found", map[string]any{"planId": user.AssignedWorkoutPlanID.Hex()}, memberID.Hex())
			return nil, ErrAssignedPlanMissing
		}
		return nil, err
	}

	s.audit.Record("Member workout plan viewed", map[string]any{"planId": plan.ID.Hex()}, memberID.Hex())
	return plan, nil
}

// GetAssignedDietPlan mirrors GetAssignedWorkoutPlan for diet plans.
func (s *memberService) GetAssignedDietPlan(ctx context.Context, memberID primitive.ObjectID) (*domain.DietPlan, error) {
	user, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if user.AssignedDietPlanID == nil {
		s.audit.Record("No diet plan assigned to member", nil, memberID.Hex())
		return nil, ErrNoPlanAssigned
	}

	plan, err := s.dietRepo.GetByID(ctx, *user.AssignedDietPlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record("Member diet plan not found", map[string]any{"planId": user.AssignedDietPlanID.Hex()}, memberID.Hex())
			return nil, ErrAssignedPlanMissing
		}
		return nil, err
	}

	s.audit.Record("Member diet plan viewed", map[string]any{"planId": plan.ID.Hex()}, memberID.Hex())
	return plan, nil
}
