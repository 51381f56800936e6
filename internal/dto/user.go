package dto

import (
	"time"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	BatchID  string `json:"batchId"`
}

// RegisterStudentRequest is the body of POST /auth/register-student
type RegisterStudentRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,notblank,max=100"`
	BatchID  string `json:"batchId" binding:"required,batchid"`
	Batch    string `json:"batch" binding:"required,batchrange"`
}

// ChangePasswordRequest is the body of POST /users/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UpdateUserRequest is the body of PUT /users/:id
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	BatchID   *string     `json:"batchId,omitempty"`
	Batch     *string     `json:"batch,omitempty"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserRefDTO is the short form of a user referenced by another resource
type UserRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expiresIn"`
	User      UserDTO `json:"user"`
}

// UserDetailResponse is returned by GET /users/:id
type UserDetailResponse struct {
	User         UserDTO `json:"user"`
	ProjectCount int64   `json:"projectCount"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO     `json:"users"`
	Pagination PaginationDTO `json:"pagination"`
}

// UserStatsResponse is returned by GET /users/admin/stats
type UserStatsResponse struct {
	Stats *repository.UserStats `json:"stats"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO. The password hash is never copied.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		BatchID:   user.BatchID,
		Batch:     user.Batch,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserRefDTO returns nil for a user that was not loaded
func ToUserRefDTO(user *models.User) *UserRefDTO {
	if user == nil || user.ID == "" {
		return nil
	}
	return &UserRefDTO{ID: user.ID, Name: user.Name, Email: user.Email}
}

// ToUserListResponse converts a page of users
func ToUserListResponse(users []models.User, pagination PaginationDTO) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return UserListResponse{Users: items, Pagination: pagination}
}
