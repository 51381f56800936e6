package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/dto"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// UserHandler handles account management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	includeInactive, ok := queryBool(c, "includeInactive")
	if !ok {
		return
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(c.Query("role"))))
	if role != "" && role != models.RoleAdmin && role != models.RoleStudent {
		apierrors.BadRequest(c, "role must be admin or student")
		return
	}

	input := services.ListUsersInput{
		Role:       role,
		BatchID:    c.Query("batchId"),
		Search:     c.Query("search"),
		Pagination: utils.GetPaginationParams(c, utils.DefaultPageSize),
	}
	if includeInactive != nil {
		input.IncludeInactive = *includeInactive
	}

	users, total, err := h.userService.List(c.Request.Context(), input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToUserListResponse(users, dto.ToPaginationDTO(input.Pagination, total)))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	user, projectCount, err := h.userService.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.UserDetailResponse{
		User:         dto.ToUserDTO(*user),
		ProjectCount: projectCount,
	})
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), actor, c.Param("id"), services.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "User updated successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// DeactivateUser handles POST /users/:id/deactivate
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "User deactivated successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// ReactivateUser handles POST /users/:id/reactivate
func (h *UserHandler) ReactivateUser(c *gin.Context) {
	user, err := h.userService.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "User reactivated successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// ChangePassword handles POST /users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "Password changed successfully", nil)
}

// Stats handles GET /users/admin/stats
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.userService.Stats(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.UserStatsResponse{Stats: stats})
}
