package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-manager/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
)

// Authenticator resolves a bearer token to a user identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (userID, email string, err error)
}

// Auth extracts the bearer token, resolves it to a user, and stores the
// identity in the request context. Every failure mode — missing token, bad
// signature, expiry, subject without a user — yields the same 401 so the
// response never hints at which check failed.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		token := TokenFromRequest(c)
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		userID, email, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userEmailKey, email)
		c.Next()
	}
}

// TokenFromRequest reads the bearer token from the Authorization header,
// falling back to the token query parameter. Both carriers are honored on
// every protected route.
func TokenFromRequest(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	}
	return strings.TrimSpace(c.Query("token"))
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
