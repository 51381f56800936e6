package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/dto"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		BatchID:  req.BatchID,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "Login successful", dto.LoginResponse{
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
		User:      dto.ToUserDTO(*result.User),
	})
}

// InitAdmin bootstraps the first administrator from configuration.
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	admin, err := h.authService.InitAdmin(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "Admin user created successfully", gin.H{
		"user": dto.ToUserDTO(*admin),
	})
}

// Profile returns the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	dto.Respond(c, http.StatusOK, "", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// RegisterStudent creates a student account, creating the batch if needed.
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.RegisterStudentRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterStudent(c.Request.Context(), services.RegisterStudentInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		BatchID:     req.BatchID,
		Batch:       req.Batch,
		RegistrarID: admin.ID,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "Student registered successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}
