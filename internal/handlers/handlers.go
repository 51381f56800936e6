package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/middleware"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/validation"
)

// currentUser returns the authenticated user or answers 401.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}
	return user, true
}

// bindJSON binds and validates the request body or answers 400.
func bindJSON(c *gin.Context, obj interface{}) bool {
	message, ok := validation.BindJSON(c, obj)
	if !ok {
		apierrors.BadRequest(c, message)
	}
	return ok
}

// queryBool parses an optional boolean query parameter.
func queryBool(c *gin.Context, key string) (*bool, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		apierrors.BadRequest(c, key+" must be true or false")
		return nil, false
	}
	return &value, true
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, key string) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.BadRequest(c, key+" must be a number")
		return 0, false
	}
	return value, true
}

// queryCategory parses an optional project category.
func queryCategory(c *gin.Context) (models.Category, bool) {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" || raw == "all" {
		return "", true
	}
	category := models.Category(strings.ToLower(raw))
	if !category.Valid() {
		apierrors.BadRequest(c, "category must be one of undergraduate, capstone, research, internship")
		return "", false
	}
	return category, true
}
