package service

import (
	"context"
	"errors"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrNotAMember       = errors.New("target user is not a member")
	ErrValidationFailed = errors.New("validation failed")
)

// Overview query tuning: the dashboard shows the five newest members and
// log entries, and bills falling due within the next thirty days.
const (
	overviewRecentLimit   = 5
	upcomingPaymentWindow = 30 * 24 * time.Hour
)

// DashboardOverview aggregates the admin landing view's figures.
type DashboardOverview struct {
	TotalMembers      int64
	ActiveMemberships int64
	UpcomingPayments  int64
	RecentMembers     []domain.User
	RecentLogs        []domain.LogEntry
}

// AddMemberParams carries the add-member form fields.
type AddMemberParams struct {
	Name     string
	Email    string
	Password string // Temporary password chosen by the admin
	Phone    string
	DOB      string
	Address  string
}

// CreateBillParams carries the create-bill form fields.
type CreateBillParams struct {
	MemberID    primitive.ObjectID
	Amount      float64
	Description string
	DueDate     time.Time
	Status      domain.BillStatus
}

// AdminService covers every admin dashboard screen: overview, member CRUD,
// billing, fee packages, notifications, and the plan libraries.
type AdminService interface {
	GetOverview(ctx context.Context) (*DashboardOverview, error)

	AddMember(ctx context.Context, adminID primitive.ObjectID, params AddMemberParams) (*domain.User, error)
	ListMembers(ctx context.Context) ([]domain.User, error)
	UpdateMember(ctx context.Context, adminID, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error)
	DeleteMember(ctx context.Context, adminID, memberID primitive.ObjectID) error

	CreateBill(ctx context.Context, adminID primitive.ObjectID, params CreateBillParams) (*domain.Bill, error)

	AddFeePackage(ctx context.Context, adminID primitive.ObjectID, name string, price float64, durationDays int, description string) (*domain.FeePackage, error)
	ListFeePackages(ctx context.Context) ([]domain.FeePackage, error)
	DeleteFeePackage(ctx context.Context, adminID, packageID primitive.ObjectID) error

	SendNotification(ctx context.Context, adminID primitive.ObjectID, title, message string) (*domain.Notification, error)

	AddWorkoutPlan(ctx context.Context, adminID primitive.ObjectID, name, description, exercises string) (*domain.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, adminID, planID primitive.ObjectID) error

	AddDietPlan(ctx context.Context, adminID primitive.ObjectID, name, details string) (*domain.DietPlan, error)
	ListDietPlans(ctx context.Context) ([]domain.DietPlan, error)
	DeleteDietPlan(ctx context.Context, adminID, planID primitive.ObjectID) error
}

// adminService implements the AdminService interface.
type adminService struct {
	authService    AuthService
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	billRepo       repository.BillRepository
	feePackageRepo repository.FeePackageRepository
	notifRepo      repository.NotificationRepository
	workoutRepo    repository.WorkoutPlanRepository
	dietRepo       repository.DietPlanRepository
	logRepo        repository.LogRepository
	audit          AuditLogger
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	authService AuthService,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	billRepo repository.BillRepository,
	feePackageRepo repository.FeePackageRepository,
	notifRepo repository.NotificationRepository,
	workoutRepo repository.WorkoutPlanRepository,
	dietRepo repository.DietPlanRepository,
	logRepo repository.LogRepository,
	audit AuditLogger,
) AdminService {
	return &adminService{
		authService:    authService,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		billRepo:       billRepo,
		feePackageRepo: feePackageRepo,
		notifRepo:      notifRepo,
		workoutRepo:    workoutRepo,
		dietRepo:       dietRepo,
		logRepo:        logRepo,
		audit:          audit,
	}
}

// GetOverview gathers the dashboard figures. Each query stands alone; the
// first failure aborts the whole view, matching the all-or-nothing render.
func (s *adminService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	now := time.Now().UTC()

	totalMembers, err := s.userRepo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	activeMemberships, err := s.membershipRepo.CountActive(ctx, now)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.billRepo.CountPendingDueBefore(ctx, now.Add(upcomingPaymentWindow))
	if err != nil {
		return nil, err
	}

	recentMembers, err := s.userRepo.GetRecentMembers(ctx, overviewRecentLimit)
	if err != nil {
		return nil, err
	}

	recentLogs, err := s.logRepo.GetRecent(ctx, overviewRecentLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		TotalMembers:      totalMembers,
		ActiveMemberships: activeMemberships,
		UpcomingPayments:  upcoming,
		RecentMembers:     recentMembers,
		RecentLogs:        recentLogs,
	}, nil
}

// AddMember creates the member's credential and profile through the auth
// service, the same path the admin bootstrap registration takes.
func (s *adminService) AddMember(ctx context.Context, adminID primitive.ObjectID, params AddMemberParams) (*domain.User, error) {
	user, err := s.authService.Register(ctx, RegisterParams{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
		Role:     domain.RoleMember,
		Phone:    params.Phone,
		DOB:      params.DOB,
		Address:  params.Address,
	})
	if err != nil {
		s.audit.Record("Add member failed", map[string]any{"email": params.Email, "error": err.Error()}, adminID.Hex())
		return nil, err
	}

	s.audit.Record("Member added", map[string]any{"memberId": user.ID.Hex(), "email": params.Email, "name": params.Name}, adminID.Hex())
	return user, nil
}

// ListMembers returns every member profile, newest first.
func (s *adminService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetMembers(ctx)
}

// UpdateMember updates a member's contact fields. Email stays immutable and
// the externally provisioned fields are never written.
func (s *adminService) UpdateMember(ctx context.Context, adminID, memberID primitive.ObjectID, name, phone, dob, address string) (*domain.User, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateContact(ctx, member.ID, name, phone, dob, address); err != nil {
		s.audit.Record("Update member failed", map[string]any{"memberId": memberID.Hex(), "error": err.Error()}, adminID.Hex())
		return nil, err
	}

	s.audit.Record("Member updated", map[string]any{"memberId": memberID.Hex(), "name": name}, adminID.Hex())
	return s.userRepo.GetByID(ctx, memberID)
}

// DeleteMember removes the member's profile document only. The credential
// stays behind: deleting the authentication identity needs a privileged
// server-side process this portal does not have.
func (s *adminService) DeleteMember(ctx context.Context, adminID, memberID primitive.ObjectID) error {
	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, member.ID); err != nil {
		s.audit.Record("Delete member failed", map[string]any{"memberId": memberID.Hex(), "error": err.Error()}, adminID.Hex())
		return err
	}

	s.audit.Record("Member data deleted", map[string]any{"memberId": memberID.Hex(), "email": member.Email}, adminID.Hex())
	return nil
}

// getMember fetches a profile and checks it really is a member; admin
// profiles are not reachable through the member management screens.
func (s *adminService) getMember(ctx context.Context, memberID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if !user.IsMember() {
		return nil, ErrNotAMember
	}
	return user, nil
}

// CreateBill raises a bill against an existing member. No transition logic
// exists: the status is whatever the admin picked on the form.
func (s *adminService) CreateBill(ctx context.Context, adminID primitive.ObjectID, params CreateBillParams) (*domain.Bill, error) {
	if params.Amount < 0 || params.Description == "" || !params.Status.IsValid() {
		return nil, ErrValidationFailed
	}

	if _, err := s.getMember(ctx, params.MemberID); err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		MemberID:    params.MemberID,
		Amount:      params.Amount,
		Description: params.Description,
		DueDate:     params.DueDate,
		Status:      params.Status,
		CreatedBy:   adminID,
	}
	billID, err := s.billRepo.Create(ctx, bill)
	if err != nil {
		s.audit.Record("Bill creation failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}
	bill.ID = billID

	s.audit.Record("Bill created", map[string]any{"memberId": params.MemberID.Hex(), "amount": params.Amount}, adminID.Hex())
	return bill, nil
}

// AddFeePackage creates a fee package.
func (s *adminService) AddFeePackage(ctx context.Context, adminID primitive.ObjectID, name string, price float64, durationDays int, description string) (*domain.FeePackage, error) {
	if name == "" || price < 0 || durationDays < 1 {
		return nil, ErrValidationFailed
	}

	pkg := &domain.FeePackage{
		Name:         name,
		Price:        price,
		DurationDays: durationDays,
		Description:  description,
	}
	pkgID, err := s.feePackageRepo.Create(ctx, pkg)
	if err != nil {
		s.audit.Record("Add fee package failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}
	pkg.ID = pkgID

	s.audit.Record("Fee package added", map[string]any{"name": name, "price": price}, adminID.Hex())
	return pkg, nil
}

// ListFeePackages returns every fee package ordered by name.
func (s *adminService) ListFeePackages(ctx context.Context) ([]domain.FeePackage, error) {
	return s.feePackageRepo.GetAll(ctx)
}

// DeleteFeePackage removes a fee package outright.
func (s *adminService) DeleteFeePackage(ctx context.Context, adminID, packageID primitive.ObjectID) error {
	if err := s.feePackageRepo.Delete(ctx, packageID); err != nil {
		return err
	}
	s.audit.Record("Fee package deleted", map[string]any{"packageId": packageID.Hex()}, adminID.Hex())
	return nil
}

// SendNotification resolves the "all members" target at send time and
// stores the notification with an empty read set. A gym with no members
// still gets the document written, just with no recipients.
func (s *adminService) SendNotification(ctx context.Context, adminID primitive.ObjectID, title, message string) (*domain.Notification, error) {
	if title == "" || message == "" {
		return nil, ErrValidationFailed
	}

	targetIDs, err := s.userRepo.GetMemberIDs(ctx)
	if err != nil {
		s.audit.Record("Send notification failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}

	n := &domain.Notification{
		Title:         title,
		Message:       message,
		TargetUserIDs: targetIDs,
		SentBy:        adminID,
		ReadBy:        []primitive.ObjectID{},
	}
	notifID, err := s.notifRepo.Create(ctx, n)
	if err != nil {
		s.audit.Record("Send notification failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}
	n.ID = notifID

	s.audit.Record("Notification sent", map[string]any{"title": title, "recipients": len(targetIDs)}, adminID.Hex())
	return n, nil
}

// AddWorkoutPlan creates a workout plan template.
func (s *adminService) AddWorkoutPlan(ctx context.Context, adminID primitive.ObjectID, name, description, exercises string) (*domain.WorkoutPlan, error) {
	if name == "" || exercises == "" {
		return nil, ErrValidationFailed
	}

	plan := &domain.WorkoutPlan{
		Name:        name,
		Description: description,
		Exercises:   exercises,
		CreatedBy:   adminID,
	}
	planID, err := s.workoutRepo.Create(ctx, plan)
	if err != nil {
		s.audit.Record("Add workout plan failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}
	plan.ID = planID

	s.audit.Record("Workout plan added", map[string]any{"name": name}, adminID.Hex())
	return plan, nil
}

// ListWorkoutPlans returns every workout plan ordered by name.
func (s *adminService) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	return s.workoutRepo.GetAll(ctx)
}

// DeleteWorkoutPlan removes a workout plan outright.
func (s *adminService) DeleteWorkoutPlan(ctx context.Context, adminID, planID primitive.ObjectID) error {
	if err := s.workoutRepo.Delete(ctx, planID); err != nil {
		return err
	}
	s.audit.Record("Workout plan deleted", map[string]any{"planId": planID.Hex()}, adminID.Hex())
	return nil
}

// AddDietPlan creates a diet plan template.
func (s *adminService) AddDietPlan(ctx context.Context, adminID primitive.ObjectID, name, details string) (*domain.DietPlan, error) {
	if name == "" || details == "" {
		return nil, ErrValidationFailed
	}

	plan := &domain.DietPlan{
		Name:      name,
		Details:   details,
		CreatedBy: adminID,
	}
	planID, err := s.dietRepo.Create(ctx, plan)
	if err != nil {
		s.audit.Record("Add diet plan failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}
	plan.ID = planID

	s.audit.Record("Diet plan added", map[string]any{"name": name}, adminID.Hex())
	return plan, nil
}

// ListDietPlans returns every diet plan ordered by name.
func (s *adminService) ListDietPlans(ctx context.Context) ([]domain.DietPlan, error) {
	return s.dietRepo.GetAll(ctx)
}

// DeleteDietPlan removes a diet plan outright.
func (s *adminService) DeleteDietPlan(ctx context.Context, adminID, planID primitive.ObjectID) error {
	if err := s.dietRepo.Delete(ctx, planID); err != nil {
		return err
	}
	s.audit.Record("Diet plan deleted", map[string]any{"planId": planID.Hex()}, adminID.Hex())
	return nil
}
