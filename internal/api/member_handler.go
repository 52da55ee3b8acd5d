package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberHandler holds the member service dependency.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// --- DTOs ---

// UpdateProfileRequest carries the member's editable contact fields. Email
// is not among them.
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	DOB     string `json:"dob"`
	Address string `json:"address"`
}

// MemberNotificationResponse includes the read flag resolved for the
// calling member.
type MemberNotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// AssignedWorkoutPlanResponse wraps a plan lookup that may legitimately
// come back empty. Assigned=false with a message is the normal state for
// a fresh member, not an error.
type AssignedWorkoutPlanResponse struct {
	Assigned bool                 `json:"assigned"`
	Message  string               `json:"message,omitempty"`
	Plan     *WorkoutPlanResponse `json:"plan,omitempty"`
}

type AssignedDietPlanResponse struct {
	Assigned bool              `json:"assigned"`
	Message  string            `json:"message,omitempty"`
	Plan     *DietPlanResponse `json:"plan,omitempty"`
}

// --- Handler Methods ---

// GetProfile returns the calling member's own profile.
func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	user, err := h.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading profile: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile updates the calling member's contact fields.
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.memberService.UpdateProfile(c.Request.Context(), memberID, req.Name, req.Phone, req.DOB, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error updating profile: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListBills returns the calling member's bills, newest first.
func (h *MemberHandler) ListBills(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	bills, err := h.memberService.ListBills(c.Request.Context(), memberID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading bills: %v", err))
		return
	}

	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = MapBillToResponse(&b)
	}
	c.JSON(http.StatusOK, responses)
}

// PayBill acknowledges a payment intent without processing it. Gateway
// integration does not exist yet, so the bill's state is left untouched
// and the client is told to pay at the front desk.
func (h *MemberHandler) PayBill(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	billID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid bill ID format.")
		return
	}

	bill, err := h.memberService.SimulatePayment(c.Request.Context(), memberID, billID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBillNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrBillNotPayable):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error processing payment: %v", err))
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Payment processing is coming soon. Please pay at the front desk.",
		"bill":    MapBillToResponse(bill),
	})
}

// ListNotifications returns notifications targeted at the calling member,
// each with the read flag resolved for this member.
func (h *MemberHandler) ListNotifications(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	notifications, err := h.memberService.ListNotifications(c.Request.Context(), memberID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading notifications: %v", err))
		return
	}

	responses := make([]MemberNotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = MemberNotificationResponse{
			ID:        n.ID.Hex(),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
			Read:      n.IsReadBy(memberID),
		}
	}
	c.JSON(http.StatusOK, responses)
}

// MarkNotificationRead records that the calling member has read a
// notification. Re-reading is harmless.
func (h *MemberHandler) MarkNotificationRead(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid notification ID format.")
		return
	}

	if err := h.memberService.MarkNotificationRead(c.Request.Context(), memberID, notificationID); err != nil {
		if errors.Is(err, service.ErrNotificationMissing) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error marking notification read: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read."})
}

// GetWorkoutPlan returns the member's assigned workout plan, or a friendly
// empty state when no plan has been assigned yet.
func (h *MemberHandler) GetWorkoutPlan(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	plan, err := h.memberService.GetAssignedWorkoutPlan(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPlanAssigned):
			c.JSON(http.StatusOK, AssignedWorkoutPlanResponse{
				Assigned: false,
				Message:  "No workout plan assigned yet. Please contact your trainer or admin.",
			})
		case errors.Is(err, service.ErrAssignedPlanMissing):
			abortWithError(c, http.StatusNotFound, "Workout plan details not found. Please contact admin.")
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading workout plan: %v", err))
		}
		return
	}

	resp := MapWorkoutPlanToResponse(plan)
	c.JSON(http.StatusOK, AssignedWorkoutPlanResponse{Assigned: true, Plan: &resp})
}

// GetDietPlan returns the member's assigned diet plan, or a friendly empty
// state when no plan has been assigned yet.
func (h *MemberHandler) GetDietPlan(c *gin.Context) {
	memberID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return
	}

	plan, err := h.memberService.GetAssignedDietPlan(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPlanAssigned):
			c.JSON(http.StatusOK, AssignedDietPlanResponse{
				Assigned: false,
				Message:  "No diet plan assigned yet. Please contact your trainer or admin.",
			})
		case errors.Is(err, service.ErrAssignedPlanMissing):
			abortWithError(c, http.StatusNotFound, "Diet plan details not found. Please contact admin.")
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error loading diet plan: %v", err))
		}
		return
	}

	resp := MapDietPlanToResponse(plan)
	c.JSON(http.StatusOK, AssignedDietPlanResponse{Assigned: true, Plan: &resp})
}
