package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api to avoid import cycles.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides gin middleware for Firebase token authentication
// plus the admin-mirror role check.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	adminRepo          db.AdminRepository
}

// NewAuthMiddleware creates a new AuthMiddleware instance. A nil auth
// client is fatal, since authenticated routes cannot function without it.
func NewAuthMiddleware(fbAuthClient *auth.Client, adminRepo db.AdminRepository) *AuthMiddleware {
	if fbAuthClient == nil {
		log.Fatal("CRITICAL_ERROR: Firebase Auth client is not initialized for AuthMiddleware.")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient, adminRepo: adminRepo}
}

// VerifyToken verifies the Firebase ID token from the Authorization header
// and resolves the caller's admin-mirror record. A valid Firebase account
// with no mirror record in the admin collection is rejected: only users
// created through the panel may use it.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}
		idToken := parts[1]

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			log.Printf("AuthMiddleware: Error verifying Firebase ID token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		adminUser, err := m.adminRepo.GetByUID(c.Request.Context(), token.UID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Account is not registered as an admin panel user"})
				return
			}
			log.Printf("AuthMiddleware: Error loading admin record for uid %s: %v", token.UID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve admin account"})
			return
		}

		c.Set("userID", token.UID)
		c.Set("userRole", adminUser.Role)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("userEmail", email)
		}

		c.Next()
	}
}

// RequireAdmin restricts a route group to users whose mirror record holds
// the admin role. Editors can manage content but not accounts.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
			return
		}
		c.Next()
	}
}
