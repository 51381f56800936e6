package dto

import (
	"time"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/services"
)

// CreateBatchRequest is the body of POST /auth/create-batch
type CreateBatchRequest struct {
	BatchID       string `json:"batchId" binding:"required,batchid"`
	Batch         string `json:"batch" binding:"required,batchrange"`
	Department    string `json:"department" binding:"required,notblank,max=100"`
	Year          int    `json:"year" binding:"required,min=2000,max=2100"`
	TotalStudents int    `json:"totalStudents" binding:"omitempty,min=0"`
	Description   string `json:"description" binding:"omitempty,max=500"`
}

// ToInput converts the request into service input created by createdByID
func (r CreateBatchRequest) ToInput(createdByID string) services.CreateBatchInput {
	return services.CreateBatchInput{
		BatchID:       r.BatchID,
		Batch:         r.Batch,
		Department:    r.Department,
		Year:          r.Year,
		TotalStudents: r.TotalStudents,
		Description:   r.Description,
		CreatedByID:   createdByID,
	}
}

// BatchDTO represents a batch in admin responses
type BatchDTO struct {
	ID            string      `json:"id"`
	BatchID       string      `json:"batchId"`
	Batch         string      `json:"batch"`
	Department    string      `json:"department"`
	Year          int         `json:"year"`
	TotalStudents int         `json:"totalStudents"`
	Description   string      `json:"description,omitempty"`
	IsActive      bool        `json:"isActive"`
	CreatedBy     *UserRefDTO `json:"createdBy,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// PublicBatchDTO is the unauthenticated projection of a batch
type PublicBatchDTO struct {
	BatchID    string `json:"batchId"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
	Year       int    `json:"year"`
}

// BatchListResponse wraps admin batch listings
type BatchListResponse struct {
	Batches []BatchDTO `json:"batches"`
}

// PublicBatchListResponse wraps public batch listings
type PublicBatchListResponse struct {
	Batches []PublicBatchDTO `json:"batches"`
}

// ToBatchDTO converts a Batch model to BatchDTO
func ToBatchDTO(batch models.Batch) BatchDTO {
	return BatchDTO{
		ID:            batch.ID,
		BatchID:       batch.BatchID,
		Batch:         batch.Batch,
		Department:    batch.Department,
		Year:          batch.Year,
		TotalStudents: batch.TotalStudents,
		Description:   batch.Description,
		IsActive:      batch.IsActive,
		CreatedBy:     ToUserRefDTO(&batch.CreatedBy),
		CreatedAt:     batch.CreatedAt,
		UpdatedAt:     batch.UpdatedAt,
	}
}

// ToBatchListResponse converts batches for admins
func ToBatchListResponse(batches []models.Batch) BatchListResponse {
	items := make([]BatchDTO, len(batches))
	for i, batch := range batches {
		items[i] = ToBatchDTO(batch)
	}
	return BatchListResponse{Batches: items}
}

// ToPublicBatchListResponse projects batches for anonymous visitors
func ToPublicBatchListResponse(batches []models.Batch) PublicBatchListResponse {
	items := make([]PublicBatchDTO, len(batches))
	for i, batch := range batches {
		items[i] = PublicBatchDTO{
			BatchID:    batch.BatchID,
			Batch:      batch.Batch,
			Department: batch.Department,
			Year:       batch.Year,
		}
	}
	return PublicBatchListResponse{Batches: items}
}
