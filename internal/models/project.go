package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryUndergraduate Category = "undergraduate"
	CategoryCapstone      Category = "capstone"
	CategoryResearch      Category = "research"
	CategoryInternship    Category = "internship"
)

var Categories = []Category{
	CategoryUndergraduate,
	CategoryCapstone,
	CategoryResearch,
	CategoryInternship,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type TeamMember struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Role     string `json:"role,omitempty"`
}

type Supervisor struct {
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
	Email      string `gorm:"type:varchar(255);not null" json:"email"`
	Department string `gorm:"type:varchar(100);not null" json:"department"`
	Title      string `gorm:"type:varchar(50);not null" json:"title"`
}

type ProjectLinks struct {
	DemoURL            string `gorm:"type:varchar(500)" json:"demoUrl,omitempty"`
	VideoURL           string `gorm:"type:varchar(500)" json:"videoUrl,omitempty"`
	RepoURL            string `gorm:"type:varchar(500)" json:"repoUrl,omitempty"`
	DocumentURL        string `gorm:"type:varchar(500)" json:"documentUrl,omitempty"`
	ResearchArticleURL string `gorm:"type:varchar(500)" json:"researchArticleUrl,omitempty"`
}

// ProjectDetails holds the optional write-up sections of a submission.
type ProjectDetails struct {
	Implementation    string `gorm:"type:text" json:"implementation,omitempty"`
	ModelDesign       string `gorm:"type:text" json:"modelDesign,omitempty"`
	RelatedWork       string `gorm:"type:text" json:"relatedWork,omitempty"`
	Motivation        string `gorm:"type:text" json:"motivation,omitempty"`
	Complexity        string `gorm:"type:text" json:"complexity,omitempty"`
	ResultsDiscussion string `gorm:"type:text" json:"resultsDiscussion,omitempty"`
}

type Project struct {
	ID               string                          `gorm:"type:varchar(36);primarykey" json:"id"`
	Title            string                          `gorm:"type:varchar(200);not null" json:"title"`
	Description      string                          `gorm:"type:text;not null" json:"description"`
	ShortDescription string                          `gorm:"type:varchar(500);not null" json:"shortDescription"`
	Year             int                             `gorm:"not null;index" json:"year"`
	Batch            string                          `gorm:"type:varchar(20);not null" json:"batch"`
	BatchID          string                          `gorm:"type:varchar(20);not null;index" json:"batchId"`
	Category         Category                        `gorm:"type:varchar(20);not null;index" json:"category"`
	Tags             datatypes.JSONSlice[string]     `json:"tags"`
	TeamMembers      datatypes.JSONSlice[TeamMember] `json:"teamMembers"`
	Supervisor       Supervisor                      `gorm:"embedded;embeddedPrefix:supervisor_" json:"supervisor"`
	Links            ProjectLinks                    `gorm:"embedded" json:"links"`
	Details          ProjectDetails                  `gorm:"embedded" json:"details"`
	SoftwareUsed     datatypes.JSONSlice[string]     `json:"softwareUsed"`
	Images           datatypes.JSONSlice[string]     `json:"images"`
	IsApproved       bool                            `gorm:"not null;default:false;index" json:"isApproved"`
	ApprovedByID     *string                         `gorm:"type:varchar(36)" json:"approvedById,omitempty"`
	ApprovedAt       *time.Time                      `json:"approvedAt,omitempty"`
	CreatedByID      string                          `gorm:"type:varchar(36);not null;index" json:"createdById"`
	CreatedAt        time.Time                       `json:"createdAt"`
	UpdatedAt        time.Time                       `json:"updatedAt"`

	// Relations
	CreatedBy  User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsOwnedBy reports whether userID created the project.
func (p *Project) IsOwnedBy(userID string) bool {
	return p.CreatedByID == userID
}

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Status derives the review state. A rejection is an approval decision of false.
func (p *Project) Status() ReviewStatus {
	switch {
	case p.IsApproved:
		return StatusApproved
	case p.ApprovedAt != nil:
		return StatusRejected
	default:
		return StatusPending
	}
}
