package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// RegisterAdminRequest is the initial-setup admin registration. Members are
// never self-registered; admins add them from the dashboard.
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse excludes anything credential-related.
type UserResponse struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name,omitempty"`
	Email                 string      `json:"email"`
	Phone                 string      `json:"phone,omitempty"`
	DOB                   string      `json:"dob,omitempty"`
	Address               string      `json:"address,omitempty"`
	Role                  domain.Role `json:"role"`
	CreatedAt             time.Time   `json:"createdAt"`
	MembershipStatus      string      `json:"membershipStatus,omitempty"`
	MembershipEndDate     *time.Time  `json:"membershipEndDate,omitempty"`
	AssignedWorkoutPlanID *string     `json:"assignedWorkoutPlanId,omitempty"`
	AssignedDietPlanID    *string     `json:"assignedDietPlanId,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the role so the client knows
// which dashboard to route to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// RegisterAdmin creates the bootstrap admin account. The role is fixed
// server-side; there is no way to register as a member through this route.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a user and returns a JWT token. A credential whose
// profile is missing or carries an unknown role gets no token at all.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationFailed),
			errors.Is(err, service.ErrProfileMissing),
			errors.Is(err, service.ErrUnknownRole):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrTokenGeneration):
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO,
// converting ObjectIDs to hex strings.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	resp := UserResponse{
		ID:                user.ID.Hex(),
		Name:              user.Name,
		Email:             user.Email,
		Phone:             user.Phone,
		DOB:               user.DOB,
		Address:           user.Address,
		Role:              user.Role,
		CreatedAt:         user.CreatedAt,
		MembershipStatus:  user.MembershipStatus,
		MembershipEndDate: user.MembershipEndDate,
	}

	if user.AssignedWorkoutPlanID != nil {
		hex := user.AssignedWorkoutPlanID.Hex()
		resp.AssignedWorkoutPlanID = &hex
	}
	if user.AssignedDietPlanID != nil {
		hex := user.AssignedDietPlanID.Hex()
		resp.AssignedDietPlanID = &hex
	}

	return resp
}

// MapUsersToResponse converts a slice of domain.User to UserResponse DTOs.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = MapUserToResponse(&u)
	}
	return responses
}
