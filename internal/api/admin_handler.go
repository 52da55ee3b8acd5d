package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler holds the admin service dependency.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// --- DTOs ---

// OverviewResponse is the admin dashboard's landing view.
type OverviewResponse struct {
	TotalMembers      int64              `json:"totalMembers"`
	ActiveMemberships int64              `json:"activeMemberships"`
	UpcomingPayments  int64              `json:"upcomingPayments"`
	RecentMembers     []UserResponse     `json:"recentMembers"`
	RecentLogs        []LogEntryResponse `json:"recentLogs"`
}

// LogEntryResponse is an audit entry as shown on the dashboard feed.
type LogEntryResponse struct {
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"userId"`
}

type AddMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"` // Temporary password
	Phone    string `json:"phone"`
	DOB      string `json:"dob"`
	Address  string `json:"address"`
}

// UpdateMemberRequest deliberately has no email field: the email input on
// the update form is disabled.
type UpdateMemberRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	DOB     string `json:"dob"`
	Address string `json:"address"`
}

type CreateBillRequest struct {
	MemberID    string  `json:"memberId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Description string  `json:"description" binding:"required"`
	DueDate     string  `json:"dueDate" binding:"required"` // YYYY-MM-DD
	Status      string  `json:"status" binding:"required,oneof=pending paid overdue"`
}

type BillResponse struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Payable     bool      `json:"payable"`
}

type AddFeePackageRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Duration    int     `json:"duration" binding:"required,min=1"` // Days
	Description string  `json:"description"`
}

type FeePackageResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SendNotificationRequest targets all members; per-member targeting is a
// future refinement, as in the send form's single "All Members" option.
type SendNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Target  string `json:"target" binding:"omitempty,oneof=all"`
}

type NotificationResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Recipients int       `json:"recipients"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AddWorkoutPlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Exercises   string `json:"exercises" binding:"required"`
}

type WorkoutPlanResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Exercises   string    `json:"exercises"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddDietPlanRequest struct {
	Name    string `json:"name" binding:"required"`
	Details string `json:"details" binding:"required"`
}

type DietPlanResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Mappers ---

func MapLogEntryToResponse(e *domain.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		Action:    e.Action,
		Details:   e.Details,
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
	}
}

func MapBillToResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID.Hex(),
		MemberID:    b.MemberID.Hex(),
		Amount:      b.Amount,
		Description: b.Description,
		DueDate:     b.DueDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		Payable:     b.Status.IsPayable(),
	}
}

func MapFeePackageToResponse(p *domain.FeePackage) FeePackageResponse {
	return FeePackageResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Price:       p.Price,
		Duration:    p.DurationDays,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func MapWorkoutPlanToResponse(p *domain.WorkoutPlan) WorkoutPlanResponse {
	return WorkoutPlanResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Exercises:   p.Exercises,
		CreatedAt:   p.CreatedAt,
	}
}

func MapDietPlanToResponse(p *domain.DietPlan) DietPlanResponse {
	return DietPlanResponse{
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Details:   p.Details,
		CreatedAt: p.CreatedAt,
	}
}

// --- Handler Methods ---

// GetOverview renders the dashboard overview figures.
func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.adminService.GetOverview(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading dashboard data: %v", err))
		return
	}

	resp := OverviewResponse{
		TotalMembers:      overview.TotalMembers,
		ActiveMemberships: overview.ActiveMemberships,
		UpcomingPayments:  overview.UpcomingPayments,
		RecentMembers:     MapUsersToResponse(overview.RecentMembers),
		RecentLogs:        make([]LogEntryResponse, len(overview.RecentLogs)),
	}
	for i, e := range overview.RecentLogs {
		resp.RecentLogs[i] = MapLogEntryToResponse(&e)
	}

	c.JSON(http.StatusOK, resp)
}

// AddMember creates a member account (credential plus profile).
func (h *AdminHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	user, err := h.adminService.AddMember(c.Request.Context(), adminID, service.AddMemberParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		DOB:      req.DOB,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error adding member: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListMembers returns every member, newest first. Zero members is an
// explicit empty array, not null.
func (h *AdminHandler) ListMembers(c *gin.Context) {
	members, err := h.adminService.ListMembers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading members: %v", err))
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(members))
}

// UpdateMember updates a member's contact fields.
func (h *AdminHandler) UpdateMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format.")
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	user, err := h.adminService.UpdateMember(c.Request.Context(), adminID, memberID, req.Name, req.Phone, req.DOB, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrNotAMember):
			abortWithError(c, http.StatusNotFound, service.ErrMemberNotFound.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error updating member: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteMember removes a member's profile document. The credential behind
// it is left in place (identity deletion is a server-side process outside
// this portal), so the response spells the limitation out.
func (h *AdminHandler) DeleteMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format.")
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	if err := h.adminService.DeleteMember(c.Request.Context(), adminID, memberID); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrNotAMember):
			abortWithError(c, http.StatusNotFound, service.ErrMemberNotFound.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error deleting member: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member data deleted successfully. (Note: authentication identity requires server-side deletion.)",
	})
}

// CreateBill raises a bill against a member.
func (h *AdminHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format.")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid due date, expected YYYY-MM-DD.")
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	bill, err := h.adminService.CreateBill(c.Request.Context(), adminID, service.CreateBillParams{
		MemberID:    memberID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      domain.BillStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrNotAMember):
			abortWithError(c, http.StatusNotFound, service.ErrMemberNotFound.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error creating bill: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, MapBillToResponse(bill))
}

// AddFeePackage creates a fee package.
func (h *AdminHandler) AddFeePackage(c *gin.Context) {
	var req AddFeePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	pkg, err := h.adminService.AddFeePackage(c.Request.Context(), adminID, req.Name, req.Price, req.Duration, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error adding fee package: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, MapFeePackageToResponse(pkg))
}

// ListFeePackages returns every fee package ordered by name.
func (h *AdminHandler) ListFeePackages(c *gin.Context) {
	packages, err := h.adminService.ListFeePackages(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading packages: %v", err))
		return
	}

	responses := make([]FeePackageResponse, len(packages))
	for i, p := range packages {
		responses[i] = MapFeePackageToResponse(&p)
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteFeePackage removes a fee package.
func (h *AdminHandler) DeleteFeePackage(c *gin.Context) {
	packageID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid package ID format.")
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	if err := h.adminService.DeleteFeePackage(c.Request.Context(), adminID, packageID); err != nil {
		if isNotFound(err) {
			abortWithError(c, http.StatusNotFound, "Fee package not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error deleting fee package: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fee package deleted."})
}

// SendNotification sends an announcement to all members.
func (h *AdminHandler) SendNotification(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	n, err := h.adminService.SendNotification(c.Request.Context(), adminID, req.Title, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error sending notification: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, NotificationResponse{
		ID:         n.ID.Hex(),
		Title:      n.Title,
		Message:    n.Message,
		Recipients: len(n.TargetUserIDs),
		CreatedAt:  n.CreatedAt,
	})
}

// AddWorkoutPlan creates a workout plan template.
func (h *AdminHandler) AddWorkoutPlan(c *gin.Context) {
	var req AddWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	plan, err := h.adminService.AddWorkoutPlan(c.Request.Context(), adminID, req.Name, req.Description, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error adding workout plan: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutPlanToResponse(plan))
}

// ListWorkoutPlans returns every workout plan ordered by name.
func (h *AdminHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.adminService.ListWorkoutPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading workout plans: %v", err))
		return
	}

	responses := make([]WorkoutPlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = MapWorkoutPlanToResponse(&p)
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteWorkoutPlan removes a workout plan.
func (h *AdminHandler) DeleteWorkoutPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	if err := h.adminService.DeleteWorkoutPlan(c.Request.Context(), adminID, planID); err != nil {
		if isNotFound(err) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error deleting workout plan: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted."})
}

// AddDietPlan creates a diet plan template.
func (h *AdminHandler) AddDietPlan(c *gin.Context) {
	var req AddDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	plan, err := h.adminService.AddDietPlan(c.Request.Context(), adminID, req.Name, req.Details)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error adding diet plan: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, MapDietPlanToResponse(plan))
}

// ListDietPlans returns every diet plan ordered by name.
func (h *AdminHandler) ListDietPlans(c *gin.Context) {
	plans, err := h.adminService.ListDietPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading diet plans: %v", err))
		return
	}

	responses := make([]DietPlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = MapDietPlanToResponse(&p)
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteDietPlan removes a diet plan.
func (h *AdminHandler) DeleteDietPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	if err := h.adminService.DeleteDietPlan(c.Request.Context(), adminID, planID); err != nil {
		if isNotFound(err) {
			abortWithError(c, http.StatusNotFound, "Diet plan not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error deleting diet plan: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diet plan deleted."})
}
