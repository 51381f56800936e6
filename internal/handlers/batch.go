package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/dto"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/services"
)

// BatchHandler handles cohort registry endpoints
type BatchHandler struct {
	batchService *services.BatchService
}

// NewBatchHandler creates a new BatchHandler
func NewBatchHandler(batchService *services.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// CreateBatch handles POST /auth/create-batch
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBatchRequest
	if !bindJSON(c, &req) {
		return
	}

	batch, err := h.batchService.Create(c.Request.Context(), req.ToInput(admin.ID))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "Batch created successfully", gin.H{
		"batch": dto.ToBatchDTO(*batch),
	})
}

// DeleteBatch handles DELETE /auth/batches/:batchId
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	if err := h.batchService.Delete(c.Request.Context(), c.Param("batchId")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "Batch deleted successfully", nil)
}

// ListBatches handles GET /auth/batches
func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.batchService.ListActive(c.Request.Context(), true)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToBatchListResponse(batches))
}

// GetBatch handles GET /auth/batches/:batchId
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batch, err := h.batchService.Get(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", gin.H{
		"batch": dto.ToBatchDTO(*batch),
	})
}

// ListPublicBatches handles GET /projects/public/batches
func (h *BatchHandler) ListPublicBatches(c *gin.Context) {
	batches, err := h.batchService.ListActive(c.Request.Context(), false)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToPublicBatchListResponse(batches))
}
