package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Batch struct {
	ID            string    `gorm:"type:varchar(36);primarykey" json:"id"`
	BatchID       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"batchId"`
	Batch         string    `gorm:"type:varchar(9);not null" json:"batch"`
	Department    string    `gorm:"type:varchar(100);not null;index" json:"department"`
	Year          int       `gorm:"not null;index" json:"year"`
	TotalStudents int       `gorm:"not null;default:0" json:"totalStudents"`
	Description   string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedByID   string    `gorm:"type:varchar(36);not null" json:"createdById"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (b *Batch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
