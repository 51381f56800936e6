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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService handles project submission and review business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	batchRepo   repository.BatchRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, batchRepo repository.BatchRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		batchRepo:   batchRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title            string
	Description      string
	ShortDescription string
	Year             int
	Batch            string
	BatchID          string
	Category         models.Category
	Tags             []string
	TeamMembers      []models.TeamMember
	Supervisor       models.Supervisor
	Links            models.ProjectLinks
	Details          models.ProjectDetails
	SoftwareUsed     []string
	Images           []string
}

// UpdateProjectInput represents a partial project update. Nil fields are left unchanged.
type UpdateProjectInput struct {
	Title             *string
	Description       *string
	ShortDescription  *string
	Year              *int
	Batch             *string
	BatchID           *string
	Category          *models.Category
	Tags              *[]string
	TeamMembers       *[]models.TeamMember
	Supervisor        *models.Supervisor
	Links             *models.ProjectLinks
	SoftwareUsed      *[]string
	Images            *[]string
	IsApproved        *bool
	ApprovedByID      *string
	ApprovedAt        *time.Time
	Implementation    *string
	ModelDesign       *string
	RelatedWork       *string
	Motivation        *string
	Complexity        *string
	ResultsDiscussion *string
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	IsApproved *bool
	BatchID    string
	Batch      string
	Category   models.Category
	Year       int
	Search     string
	Pagination utils.PaginationParams
}

func (in ListProjectsInput) filter() repository.ProjectFilter {
	return repository.ProjectFilter{
		IsApproved: in.IsApproved,
		BatchID:    utils.NormalizeBatchID(in.BatchID),
		Batch:      strings.TrimSpace(in.Batch),
		Category:   in.Category,
		Year:       in.Year,
		Search:     strings.TrimSpace(in.Search),
		Pagination: in.Pagination,
	}
}

// Create stores a new pending project. Students always submit into their own
// batch; admins must name the batch.
func (s *ProjectService) Create(ctx context.Context, actor *models.User, input CreateProjectInput) (*models.Project, error) {
	requested := utils.NormalizeBatchID(input.BatchID)
	batchRange := strings.TrimSpace(input.Batch)

	var batchID string
	if actor.IsStudent() {
		own := strings.ToUpper(actor.OwnBatchID())
		if own == "" {
			return nil, ErrStudentCreateBatch
		}
		if requested != "" && requested != own {
			return nil, ErrForeignBatch
		}
		batchID = own
		if batchRange == "" {
			batchRange = actor.OwnBatch()
		}
	} else {
		if requested == "" {
			return nil, ErrBatchIDRequired
		}
		batchID = requested
	}

	batch, err := s.activeBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !utils.ValidBatchRange(batchRange) {
		batchRange = batch.Batch
	}

	project := &models.Project{
		Title:            strings.TrimSpace(input.Title),
		Description:      strings.TrimSpace(input.Description),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		Year:             input.Year,
		Batch:            batchRange,
		BatchID:          batch.BatchID,
		Category:         input.Category,
		Tags:             datatypes.NewJSONSlice(cleanStrings(input.Tags)),
		TeamMembers:      datatypes.NewJSONSlice(input.TeamMembers),
		Supervisor:       input.Supervisor,
		Links:            input.Links,
		Details:          input.Details,
		SoftwareUsed:     datatypes.NewJSONSlice(cleanStrings(input.SoftwareUsed)),
		Images:           datatypes.NewJSONSlice(cleanStrings(input.Images)),
		IsApproved:       false,
		CreatedByID:      actor.ID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, apierrors.Unexpected("Failed to create project", fmt.Errorf("failed to create project: %w", err))
	}

	return s.find(ctx, project.ID)
}

// List returns projects visible to actor. Students only see their own batch.
func (s *ProjectService) List(ctx context.Context, actor *models.User, input ListProjectsInput) ([]models.Project, int64, error) {
	filter := input.filter()
	if !actor.IsAdmin() {
		filter.BatchID = strings.ToUpper(actor.OwnBatchID())
		if filter.BatchID == "" {
			return []models.Project{}, 0, nil
		}
	}
	return s.list(ctx, filter)
}

// ListByBatch returns the projects of one batch the actor has access to.
func (s *ProjectService) ListByBatch(ctx context.Context, actor *models.User, batchID string, input ListProjectsInput) ([]models.Project, int64, error) {
	batchID = utils.NormalizeBatchID(batchID)
	if err := CheckBatchAccess(actor, batchID); err != nil {
		return nil, 0, err
	}

	filter := input.filter()
	filter.BatchID = batchID
	return s.list(ctx, filter)
}

// ListPublic returns approved projects only.
func (s *ProjectService) ListPublic(ctx context.Context, input ListProjectsInput) ([]models.Project, int64, error) {
	approved := true
	filter := input.filter()
	filter.IsApproved = &approved
	filter.BatchID = ""
	return s.list(ctx, filter)
}

func (s *ProjectService) list(ctx context.Context, filter repository.ProjectFilter) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apierrors.Unexpected("Failed to list projects", err)
	}
	return projects, total, nil
}

// Get returns one project if actor may read it.
func (s *ProjectService) Get(ctx context.Context, actor *models.User, id string) (*models.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(actor, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies a partial update. Students may only edit their own
// unapproved projects and cannot touch batch or review fields.
func (s *ProjectService) Update(ctx context.Context, actor *models.User, id string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeUpdate(actor, project); err != nil {
		return nil, err
	}

	input = stripRestrictedFields(actor, input)
	if err := s.applyAdminFields(ctx, actor, project, input); err != nil {
		return nil, err
	}
	applyContentFields(project, input)

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, apierrors.Unexpected("Failed to update project", fmt.Errorf("failed to save project: %w", err))
	}

	return s.find(ctx, project.ID)
}

// Approve records an admin's review decision. Repeating a decision refreshes
// the reviewer and timestamp.
func (s *ProjectService) Approve(ctx context.Context, actor *models.User, id string, approve bool) (*models.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrApproveForbidden
	}

	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	project.IsApproved = approve
	project.ApprovedByID = &actor.ID
	project.ApprovedAt = &now

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, apierrors.Unexpected("Failed to update project status", fmt.Errorf("failed to save project: %w", err))
	}

	return s.find(ctx, project.ID)
}

// Delete removes a project. Students may only delete their own unapproved projects.
func (s *ProjectService) Delete(ctx context.Context, actor *models.User, id string) error {
	project, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeDelete(actor, project); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return apierrors.Unexpected("Failed to delete project", err)
	}
	return nil
}

// Stats aggregates project counts for the admin dashboard.
func (s *ProjectService) Stats(ctx context.Context) (*repository.ProjectStats, error) {
	stats, err := s.projectRepo.Stats(ctx)
	if err != nil {
		return nil, apierrors.Unexpected("Failed to get project statistics", err)
	}
	return stats, nil
}

func (s *ProjectService) find(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, apierrors.Unexpected("Failed to get project", err)
	}
	return project, nil
}

func (s *ProjectService) activeBatch(ctx context.Context, batchID string) (*models.Batch, error) {
	batch, err := s.batchRepo.FindByBatchID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidBatch
		}
		return nil, apierrors.Unexpected("Failed to look up batch", err)
	}
	if !batch.IsActive {
		return nil, ErrInvalidBatch
	}
	return batch, nil
}

// applyAdminFields handles batch and review fields, which only survive
// stripRestrictedFields for admins.
func (s *ProjectService) applyAdminFields(ctx context.Context, actor *models.User, project *models.Project, input UpdateProjectInput) error {
	if input.BatchID != nil {
		batch, err := s.activeBatch(ctx, utils.NormalizeBatchID(*input.BatchID))
		if err != nil {
			return err
		}
		project.BatchID = batch.BatchID
		if input.Batch == nil {
			project.Batch = batch.Batch
		}
	}
	if input.Batch != nil {
		project.Batch = strings.TrimSpace(*input.Batch)
	}

	if input.IsApproved == nil && input.ApprovedByID == nil && input.ApprovedAt == nil {
		return nil
	}

	if input.IsApproved != nil {
		project.IsApproved = *input.IsApproved
	}

	approverID := actor.ID
	if input.ApprovedByID != nil {
		if _, err := s.userRepo.FindByID(ctx, *input.ApprovedByID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApproverNotFound
			}
			return apierrors.Unexpected("Failed to look up approver", err)
		}
		approverID = *input.ApprovedByID
	}
	project.ApprovedByID = &approverID

	approvedAt := s.now()
	if input.ApprovedAt != nil {
		approvedAt = *input.ApprovedAt
	}
	project.ApprovedAt = &approvedAt

	// the preloaded approver may no longer match
	project.ApprovedBy = nil
	return nil
}

func applyContentFields(project *models.Project, input UpdateProjectInput) {
	if input.Title != nil {
		project.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}
	if input.ShortDescription != nil {
		project.ShortDescription = strings.TrimSpace(*input.ShortDescription)
	}
	if input.Year != nil {
		project.Year = *input.Year
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Tags != nil {
		project.Tags = datatypes.NewJSONSlice(cleanStrings(*input.Tags))
	}
	if input.TeamMembers != nil {
		project.TeamMembers = datatypes.NewJSONSlice(*input.TeamMembers)
	}
	if input.Supervisor != nil {
		project.Supervisor = *input.Supervisor
	}
	if input.Links != nil {
		project.Links = *input.Links
	}
	if input.SoftwareUsed != nil {
		project.SoftwareUsed = datatypes.NewJSONSlice(cleanStrings(*input.SoftwareUsed))
	}
	if input.Images != nil {
		project.Images = datatypes.NewJSONSlice(cleanStrings(*input.Images))
	}

	details := []struct {
		src *string
		dst *string
	}{
		{input.Implementation, &project.Details.Implementation},
		{input.ModelDesign, &project.Details.ModelDesign},
		{input.RelatedWork, &project.Details.RelatedWork},
		{input.Motivation, &project.Details.Motivation},
		{input.Complexity, &project.Details.Complexity},
		{input.ResultsDiscussion, &project.Details.ResultsDiscussion},
	}
	for _, d := range details {
		if d.src != nil {
			*d.dst = *d.src
		}
	}
}

// cleanStrings trims entries and drops empty ones. The result is never nil.
func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
