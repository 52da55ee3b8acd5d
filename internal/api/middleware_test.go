package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testJWTSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func mintToken(t *testing.T, secret string, userID string, role domain.Role, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gym-management",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func newGuardedRouter(requiredRole domain.Role) *gin.Engine {
	router := gin.New()
	router.GET("/guarded",
		AuthMiddleware(testJWTSecret),
		RoleMiddleware(service.NopAuditLogger{}, requiredRole),
		func(c *gin.Context) {
			userID, _ := getUserIDFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		},
	)
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is missing")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)
	token := mintToken(t, testJWTSecret, primitive.NewObjectID().Hex(), domain.RoleAdmin, -time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)
	token := mintToken(t, "some-other-secret", primitive.NewObjectID().Hex(), domain.RoleAdmin, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddlewareDeniesWrongRole(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)
	token := mintToken(t, testJWTSecret, primitive.NewObjectID().Hex(), domain.RoleMember, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access Denied")
}

func TestRoleMiddlewareAllowsMatchingRole(t *testing.T) {
	router := newGuardedRouter(domain.RoleAdmin)
	userID := primitive.NewObjectID().Hex()
	token := mintToken(t, testJWTSecret, userID, domain.RoleAdmin, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}
