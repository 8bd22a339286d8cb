package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookmate/backend/internal/types"
)

const userIDKey = "user_id"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			abortFail(c, http.StatusUnauthorized, "Authorization token is missing or malformed")
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			abortFail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequireSelf rejects requests whose :param user id differs from the token's user.
// Non-numeric ids are left for the handler to reject.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(param)
		pathID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Next()
			return
		}
		if !IsSelf(c, pathID) {
			abortFail(c, http.StatusForbidden, "You are not allowed to access another user's data")
			return
		}
		c.Next()
	}
}

// IsSelf reports whether id belongs to the authenticated user.
func IsSelf(c *gin.Context, id int64) bool {
	current, ok := UserID(c)
	return ok && current == id
}

func abortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"status": "fail", "message": message})
}
