package service

import (
	"context"
	"errors"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	// ErrProfileMissing / ErrUnknownRole: the credential checked out but no
	// usable profile backs it. Both are terminal; no session is issued.
	ErrProfileMissing  = errors.New("user profile not found, please contact support")
	ErrUnknownRole     = errors.New("unknown user role, please contact support")
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// RegisterParams carries everything needed to create a credential plus its
// profile document in one go.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Phone    string
	DOB      string
	Address  string
}

// AuthService owns sign-up, sign-in and the role gate behind both.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	GetJWTSecret() string
}

// authService implements the AuthService interface.
type authService struct {
	credRepo      repository.CredentialRepository
	userRepo      repository.UserRepository
	audit         AuditLogger
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(credRepo repository.CredentialRepository, userRepo repository.UserRepository, audit AuditLogger, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		credRepo:      credRepo,
		userRepo:      userRepo,
		audit:         audit,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates the authentication credential and the profile document
// that shares its id. Used for the one-time admin bootstrap and by admins
// adding members.
func (s *authService) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	if params.Email == "" || params.Password == "" || !params.Role.IsValid() {
		return nil, errors.New("email, password, and a valid role are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	cred := &domain.Credential{
		Email:        params.Email,
		PasswordHash: string(hashedPassword),
	}
	credID, err := s.credRepo.Create(ctx, cred)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	user := &domain.User{
		ID:      credID, // Profile and credential share the id
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		DOB:     params.DOB,
		Address: params.Address,
		Role:    params.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	s.audit.Record("User registered", map[string]any{"email": params.Email, "role": string(params.Role)}, credID.Hex())
	return user, nil
}

// Login verifies the credential, then gates on the profile's role. A
// credential with no profile, or with a role outside {admin, member}, never
// gets a token: refusing to mint one is this system's forced sign-out.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password cannot be empty")
	}

	cred, err := s.credRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record("Login failed", map[string]any{"email": email}, "")
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		s.audit.Record("Login failed", map[string]any{"email": email}, "")
		return "", nil, ErrAuthenticationFailed
	}

	user, err = s.userRepo.GetByID(ctx, cred.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record("Login failed: no profile", map[string]any{"email": email}, cred.ID.Hex())
			return "", nil, ErrProfileMissing
		}
		s.audit.Record("Error fetching user role", map[string]any{"email": email, "error": err.Error()}, cred.ID.Hex())
		return "", nil, err
	}

	if !user.Role.IsValid() {
		s.audit.Record("Login failed: unknown role", map[string]any{"email": email, "role": string(user.Role)}, cred.ID.Hex())
		return "", nil, ErrUnknownRole
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if user.IsAdmin() {
		s.audit.Record("Admin logged in", map[string]any{"email": email}, user.ID.Hex())
	} else {
		s.audit.Record("Member logged in", map[string]any{"email": email}, user.ID.Hex())
	}
	return token, user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gym-management",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
