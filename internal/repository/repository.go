package repository

import (
	"context"
	"time"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by lower-cased email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByRole reports whether any user holds role
	ExistsByRole(ctx context.Context, role models.Role) (bool, error)

	// Updates writes the given columns for the user
	Updates(ctx context.Context, user *models.User, fields map[string]interface{}) error

	// List retrieves users with filtering and pagination
	List(ctx context.Context, filter UserFilter) ([]models.User, int64, error)

	// CountActiveStudents counts active students referencing batchID
	CountActiveStudents(ctx context.Context, batchID string) (int64, error)

	// Stats aggregates user counts. Active registrations after since count as recent.
	Stats(ctx context.Context, since time.Time) (*UserStats, error)
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	Role            models.Role
	BatchID         string
	Search          string
	IncludeInactive bool
	Pagination      utils.PaginationParams
}

// BatchRepository defines the interface for batch data access
type BatchRepository interface {
	// Create creates a new batch
	Create(ctx context.Context, batch *models.Batch) error

	// FindByBatchID finds a batch by its public identifier
	FindByBatchID(ctx context.Context, batchID string) (*models.Batch, error)

	// ListActive lists active batches, newest graduation year first
	ListActive(ctx context.Context, withCreator bool) ([]models.Batch, error)

	// UpdateTotalStudents stores the student count of a batch
	UpdateTotalStudents(ctx context.Context, batchID string, total int64) error

	// Delete hard deletes a batch
	Delete(ctx context.Context, batchID string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by ID with its creator and approver
	FindByID(ctx context.Context, id string) (*models.Project, error)

	// List retrieves projects with filtering and pagination
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, int64, error)

	// Save writes every column of the project
	Save(ctx context.Context, project *models.Project) error

	// Delete hard deletes a project
	Delete(ctx context.Context, id string) error

	// CountApprovedByCreator counts the approved projects created by userID
	CountApprovedByCreator(ctx context.Context, userID string) (int64, error)

	// Stats aggregates project counts
	Stats(ctx context.Context) (*ProjectStats, error)
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	IsApproved *bool
	BatchID    string
	// Batch matches either the batch range or the batch identifier.
	Batch      string
	Category   models.Category
	Year       int
	Search     string
	Pagination utils.PaginationParams
}

// GroupCount is a row of a GROUP BY count.
type GroupCount struct {
	ID    string `json:"id"`
	Count int64  `json:"count"`
}

// YearCount is a row of a GROUP BY year count.
type YearCount struct {
	ID    int   `json:"id"`
	Count int64 `json:"count"`
}

type UserStats struct {
	Total               int64        `json:"total"`
	Students            int64        `json:"students"`
	Admins              int64        `json:"admins"`
	Inactive            int64        `json:"inactive"`
	ByBatch             []GroupCount `json:"byBatch"`
	RecentRegistrations int64        `json:"recentRegistrations"`
}

type ProjectStats struct {
	Total      int64        `json:"total"`
	Approved   int64        `json:"approved"`
	Pending    int64        `json:"pending"`
	ByCategory []GroupCount `json:"byCategory"`
	ByYear     []YearCount  `json:"byYear"`
	ByBatch    []GroupCount `json:"byBatch"`
}
