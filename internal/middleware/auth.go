package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/auth"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
)

const (
	// ContextKeyUser holds the authenticated *models.User
	ContextKeyUser = "current_user"
	// ContextKeyUserID holds the authenticated user's ID
	ContextKeyUserID = "user_id"
)

// Authenticator resolves a bearer token to an active user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth checks the bearer token and loads the acting user
func RequireAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			apierrors.Unauthorized(c, "Access token is missing")
			c.Abort()
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				apierrors.Unauthorized(c, "Token expired")
			case errors.Is(err, auth.ErrTokenInvalid):
				apierrors.Unauthorized(c, "Invalid token")
			default:
				apierrors.Respond(c, err)
			}
			c.Abort()
			return
		}

		// Store user in context for easy access in handlers
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextKeyUserID)
	return userID, userID != ""
}
