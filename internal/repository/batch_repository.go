package repository

import (
	"context"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchRepository is a GORM implementation of BatchRepository
type GormBatchRepository struct {
	db *gorm.DB
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &GormBatchRepository{db: db}
}

// Create creates a new batch
func (r *GormBatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(batch).Error
}

// FindByBatchID finds a batch by its public identifier
func (r *GormBatchRepository) FindByBatchID(ctx context.Context, batchID string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.WithContext(ctx).Where("batch_id = ?", batchID).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// ListActive lists active batches, newest graduation year first
func (r *GormBatchRepository) ListActive(ctx context.Context, withCreator bool) ([]models.Batch, error) {
	batches := []models.Batch{}

	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if withCreator {
		query = query.Preload("CreatedBy")
	}

	if err := query.Order("year DESC").Order("batch_id ASC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// UpdateTotalStudents stores the student count of a batch
func (r *GormBatchRepository) UpdateTotalStudents(ctx context.Context, batchID string, total int64) error {
	return r.db.WithContext(ctx).Model(&models.Batch{}).
		Where("batch_id = ?", batchID).
		Update("total_students", total).Error
}

// Delete hard deletes a batch
func (r *GormBatchRepository) Delete(ctx context.Context, batchID string) error {
	result := r.db.WithContext(ctx).Where("batch_id = ?", batchID).Delete(&models.Batch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
