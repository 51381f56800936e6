package repository

import (
	"context"

	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by ID with its creator and approver
func (r *GormProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("ApprovedBy").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects with filtering and pagination
func (r *GormProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]models.Project, int64, error) {
	projects := []models.Project{}

	query := r.db.WithContext(ctx).Model(&models.Project{})

	if filter.IsApproved != nil {
		query = query.Where("is_approved = ?", *filter.IsApproved)
	}
	if filter.BatchID != "" {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	if filter.Batch != "" {
		query = query.Where("(batch = ? OR batch_id = ?)", filter.Batch, filter.Batch)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	query = query.Scopes(database.ContainsFold(filter.Search, "title", "description", "short_description"))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("CreatedBy").
		Preload("ApprovedBy").
		Order("created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Save writes every column of the project
func (r *GormProjectRepository) Save(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete hard deletes a project
func (r *GormProjectRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountApprovedByCreator counts the approved projects created by userID
func (r *GormProjectRepository) CountApprovedByCreator(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("created_by_id = ? AND is_approved = ?", userID, true).
		Count(&count).Error
	return count, err
}

// Stats aggregates project counts
func (r *GormProjectRepository) Stats(ctx context.Context) (*ProjectStats, error) {
	db := r.db.WithContext(ctx)
	stats := &ProjectStats{
		ByCategory: []GroupCount{},
		ByYear:     []YearCount{},
		ByBatch:    []GroupCount{},
	}

	if err := db.Model(&models.Project{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Project{}).Where("is_approved = ?", true).Count(&stats.Approved).Error; err != nil {
		return nil, err
	}
	stats.Pending = stats.Total - stats.Approved

	groups := []struct {
		column string
		order  string
		dest   interface{}
	}{
		{"category", "count DESC, category ASC", &stats.ByCategory},
		{"year", "year DESC", &stats.ByYear},
		{"batch_id", "count DESC, batch_id ASC", &stats.ByBatch},
	}
	for _, g := range groups {
		err := db.Model(&models.Project{}).
			Select(g.column + " AS id, COUNT(*) AS count").
			Group(g.column).
			Order(g.order).
			Scan(g.dest).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
