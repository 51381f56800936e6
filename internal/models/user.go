package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type User struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	BatchID      *string   `gorm:"type:varchar(20);index" json:"batchId,omitempty"`
	Batch        *string   `gorm:"type:varchar(20)" json:"batch,omitempty"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Projects []Project `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// OwnBatchID returns the user's batch id, or "" for users without a batch.
func (u *User) OwnBatchID() string {
	if u.BatchID == nil {
		return ""
	}
	return *u.BatchID
}

func (u *User) OwnBatch() string {
	if u.Batch == nil {
		return ""
	}
	return *u.Batch
}
