package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

var roleDeniedMessages = map[models.Role]string{
	models.RoleAdmin:   "Admin access required",
	models.RoleStudent: "Student access required",
}

// RequireRole rejects users whose role differs. Must run after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.Role != role {
			apierrors.Forbidden(c, roleDeniedMessages[role])
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin allows administrators only
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireStudent allows students only
func RequireStudent() gin.HandlerFunc {
	return RequireRole(models.RoleStudent)
}

// RequireBatchAccess allows admins any batch and students only the batch
// named by the URL parameter param.
func RequireBatchAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		batchID := utils.NormalizeBatchID(c.Param(param))
		if err := services.CheckBatchAccess(user, batchID); err != nil {
			apierrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
