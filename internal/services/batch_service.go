package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/utils"
	"gorm.io/gorm"
)

// BatchService handles cohort registry business logic
type BatchService struct {
	batchRepo         repository.BatchRepository
	userRepo          repository.UserRepository
	defaultDepartment string
	now               func() time.Time
}

// NewBatchService creates a new BatchService. defaultDepartment is used for
// batches created implicitly during student registration.
func NewBatchService(batchRepo repository.BatchRepository, userRepo repository.UserRepository, defaultDepartment string) *BatchService {
	return &BatchService{
		batchRepo:         batchRepo,
		userRepo:          userRepo,
		defaultDepartment: defaultDepartment,
		now:               time.Now,
	}
}

// CreateBatchInput represents input for creating a batch
type CreateBatchInput struct {
	BatchID       string
	Batch         string
	Department    string
	Year          int
	TotalStudents int
	Description   string
	CreatedByID   string
}

// Create registers a new batch
func (s *BatchService) Create(ctx context.Context, input CreateBatchInput) (*models.Batch, error) {
	batchID := utils.NormalizeBatchID(input.BatchID)
	if !utils.ValidBatchID(batchID) {
		return nil, ErrMalformedBatch
	}
	if !utils.ValidBatchRange(input.Batch) {
		return nil, apierrors.Validation("Batch must be in format YYYY-YYYY")
	}

	if _, err := s.batchRepo.FindByBatchID(ctx, batchID); err == nil {
		return nil, ErrDuplicateBatch
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Unexpected("Failed to create batch", fmt.Errorf("failed to check batch: %w", err))
	}

	batch := &models.Batch{
		BatchID:       batchID,
		Batch:         input.Batch,
		Department:    strings.TrimSpace(input.Department),
		Year:          input.Year,
		TotalStudents: input.TotalStudents,
		Description:   strings.TrimSpace(input.Description),
		IsActive:      true,
		CreatedByID:   input.CreatedByID,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, apierrors.Unexpected("Failed to create batch", fmt.Errorf("failed to create batch: %w", err))
	}

	return batch, nil
}

// Provision returns the batch with batchID, creating it when it does not exist.
// A created batch spans the four years ending at the year embedded in its identifier.
func (s *BatchService) Provision(ctx context.Context, batchID, createdByID string) (*models.Batch, bool, error) {
	batchID = utils.NormalizeBatchID(batchID)
	if !utils.ValidBatchID(batchID) {
		return nil, false, ErrMalformedBatch
	}

	batch, err := s.batchRepo.FindByBatchID(ctx, batchID)
	if err == nil {
		return batch, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apierrors.Unexpected("Failed to look up batch", fmt.Errorf("failed to find batch: %w", err))
	}

	year := utils.GraduationYear(batchID, s.now())

	batch = &models.Batch{
		BatchID:       batchID,
		Batch:         utils.BatchRange(year),
		Department:    s.defaultDepartment,
		Year:          year,
		TotalStudents: 1,
		Description:   fmt.Sprintf("Auto-created batch for %s", batchID),
		IsActive:      true,
		CreatedByID:   createdByID,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, false, apierrors.Unexpected("Failed to create batch", fmt.Errorf("failed to auto-create batch: %w", err))
	}

	return batch, true, nil
}

// RefreshStudentCount stores the live count of active students of batchID
func (s *BatchService) RefreshStudentCount(ctx context.Context, batchID string) (int64, error) {
	count, err := s.userRepo.CountActiveStudents(ctx, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	if err := s.batchRepo.UpdateTotalStudents(ctx, batchID, count); err != nil {
		return 0, fmt.Errorf("failed to update student count: %w", err)
	}
	return count, nil
}

// Delete removes a batch that no active student references
func (s *BatchService) Delete(ctx context.Context, batchID string) error {
	batchID = utils.NormalizeBatchID(batchID)

	if _, err := s.batchRepo.FindByBatchID(ctx, batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBatchNotFound
		}
		return apierrors.Unexpected("Failed to delete batch", err)
	}

	count, err := s.userRepo.CountActiveStudents(ctx, batchID)
	if err != nil {
		return apierrors.Unexpected("Failed to delete batch", fmt.Errorf("failed to count students: %w", err))
	}
	if count > 0 {
		return batchHasStudents(count)
	}

	if err := s.batchRepo.Delete(ctx, batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBatchNotFound
		}
		return apierrors.Unexpected("Failed to delete batch", err)
	}
	return nil
}

// Get returns one batch
func (s *BatchService) Get(ctx context.Context, batchID string) (*models.Batch, error) {
	batch, err := s.batchRepo.FindByBatchID(ctx, utils.NormalizeBatchID(batchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, apierrors.Unexpected("Failed to get batch", err)
	}
	return batch, nil
}

// ListActive lists active batches, newest graduation year first. The creator
// is loaded for admin listings only.
func (s *BatchService) ListActive(ctx context.Context, withCreator bool) ([]models.Batch, error) {
	batches, err := s.batchRepo.ListActive(ctx, withCreator)
	if err != nil {
		return nil, apierrors.Unexpected("Failed to list batches", err)
	}
	return batches, nil
}

// CheckBatchAccess allows admins any batch and students only their own
func CheckBatchAccess(user *models.User, batchID string) error {
	if user.IsAdmin() {
		return nil
	}
	if user.IsStudent() && strings.EqualFold(user.OwnBatchID(), batchID) {
		return nil
	}
	return ErrBatchAccess
}
