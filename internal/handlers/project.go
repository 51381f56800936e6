package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/dto"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// ProjectHandler handles project submission and review endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// listInput reads the shared listing query parameters.
func listInput(c *gin.Context, defaultLimit int) (services.ListProjectsInput, bool) {
	isApproved, ok := queryBool(c, "isApproved")
	if !ok {
		return services.ListProjectsInput{}, false
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return services.ListProjectsInput{}, false
	}
	category, ok := queryCategory(c)
	if !ok {
		return services.ListProjectsInput{}, false
	}

	return services.ListProjectsInput{
		IsApproved: isApproved,
		BatchID:    c.Query("batchId"),
		Batch:      c.Query("batch"),
		Category:   category,
		Year:       year,
		Search:     c.Query("search"),
		Pagination: utils.GetPaginationParams(c, defaultLimit),
	}, true
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), user, req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "Project created successfully", gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	input, ok := listInput(c, utils.DefaultPageSize)
	if !ok {
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), user, input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToProjectListResponse(projects, dto.ToPaginationDTO(input.Pagination, total)))
}

// ListBatchProjects handles GET /projects/batch/:batchId
func (h *ProjectHandler) ListBatchProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	input, ok := listInput(c, utils.DefaultPageSize)
	if !ok {
		return
	}

	projects, total, err := h.projectService.ListByBatch(c.Request.Context(), user, c.Param("batchId"), input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToProjectListResponse(projects, dto.ToPaginationDTO(input.Pagination, total)))
}

// ListPublicProjects handles GET /projects/public
func (h *ProjectHandler) ListPublicProjects(c *gin.Context) {
	input, ok := listInput(c, utils.PublicPageSize)
	if !ok {
		return
	}

	projects, total, err := h.projectService.ListPublic(c.Request.Context(), input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ToProjectListResponse(projects, dto.ToPaginationDTO(input.Pagination, total)))
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), user, c.Param("id"), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "Project updated successfully", gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// ApproveProject handles POST /projects/:id/approve
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ApproveProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Approve(c.Request.Context(), admin, c.Param("id"), *req.Approve)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	message := "Project rejected successfully"
	if project.IsApproved {
		message = "Project approved successfully"
	}
	dto.Respond(c, http.StatusOK, message, gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "Project deleted successfully", nil)
}

// Stats handles GET /projects/admin/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.projectService.Stats(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "", dto.ProjectStatsResponse{Stats: stats})
}
