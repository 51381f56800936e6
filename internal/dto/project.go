package dto

import (
	"time"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/services"
)

// TeamMemberInput is one entry of a project's team
type TeamMemberInput struct {
	Name     string `json:"name" binding:"required,notblank,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
	LinkedIn string `json:"linkedIn" binding:"omitempty,max=500"`
	GitHub   string `json:"github" binding:"omitempty,max=500"`
	Role     string `json:"role" binding:"omitempty,max=30"`
}

type SupervisorInput struct {
	Name       string `json:"name" binding:"required,notblank,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,notblank,max=100"`
	Title      string `json:"title" binding:"required,notblank,max=50"`
}

type LinksInput struct {
	DemoURL            string `json:"demoUrl" binding:"omitempty,httpurl"`
	VideoURL           string `json:"videoUrl" binding:"omitempty,httpurl"`
	RepoURL            string `json:"repoUrl" binding:"omitempty,httpurl"`
	DocumentURL        string `json:"documentUrl" binding:"omitempty,max=500"`
	ResearchArticleURL string `json:"researchArticleUrl" binding:"omitempty,max=500"`
}

// ProjectDetailsInput holds the optional write-up sections
type ProjectDetailsInput struct {
	Implementation    string `json:"implementation" binding:"omitempty,max=10000"`
	ModelDesign       string `json:"modelDesign" binding:"omitempty,max=10000"`
	RelatedWork       string `json:"relatedWork" binding:"omitempty,max=10000"`
	Motivation        string `json:"motivation" binding:"omitempty,max=10000"`
	Complexity        string `json:"complexity" binding:"omitempty,max=10000"`
	ResultsDiscussion string `json:"resultsDiscussion" binding:"omitempty,max=10000"`
}

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Title            string            `json:"title" binding:"required,notblank,max=200"`
	Description      string            `json:"description" binding:"required,notblank,max=5000"`
	ShortDescription string            `json:"shortDescription" binding:"required,notblank,max=500"`
	Year             int               `json:"year" binding:"required,projectyear"`
	Batch            string            `json:"batch" binding:"omitempty,batchrange"`
	BatchID          string            `json:"batchId" binding:"omitempty,batchid"`
	Category         string            `json:"category" binding:"required,category"`
	Tags             []string          `json:"tags" binding:"omitempty,dive,notblank,max=30"`
	TeamMembers      []TeamMemberInput `json:"teamMembers" binding:"required,min=1,max=6,dive"`
	Supervisor       SupervisorInput   `json:"supervisor"`
	Links            LinksInput        `json:"links"`
	ProjectDetailsInput
	SoftwareUsed []string `json:"softwareUsed" binding:"omitempty,dive,notblank,max=50"`
	Images       []string `json:"images" binding:"omitempty,dive,httpurl"`
}

// UpdateProjectRequest is the body of PUT /projects/:id. Absent fields are left unchanged.
type UpdateProjectRequest struct {
	Title            *string            `json:"title" binding:"omitempty,notblank,max=200"`
	Description      *string            `json:"description" binding:"omitempty,notblank,max=5000"`
	ShortDescription *string            `json:"shortDescription" binding:"omitempty,notblank,max=500"`
	Year             *int               `json:"year" binding:"omitempty,projectyear"`
	Batch            *string            `json:"batch" binding:"omitempty,batchrange"`
	BatchID          *string            `json:"batchId" binding:"omitempty,batchid"`
	Category         *string            `json:"category" binding:"omitempty,category"`
	Tags             *[]string          `json:"tags" binding:"omitempty,dive,notblank,max=30"`
	TeamMembers      *[]TeamMemberInput `json:"teamMembers" binding:"omitempty,min=1,max=6,dive"`
	Supervisor       *SupervisorInput   `json:"supervisor"`
	Links            *LinksInput        `json:"links"`
	SoftwareUsed     *[]string          `json:"softwareUsed" binding:"omitempty,dive,notblank,max=50"`
	Images           *[]string          `json:"images" binding:"omitempty,dive,httpurl"`
	IsApproved       *bool              `json:"isApproved"`
	ApprovedBy       *string            `json:"approvedBy" binding:"omitempty,uuid"`
	ApprovedAt       *time.Time         `json:"approvedAt"`

	Implementation    *string `json:"implementation" binding:"omitempty,max=10000"`
	ModelDesign       *string `json:"modelDesign" binding:"omitempty,max=10000"`
	RelatedWork       *string `json:"relatedWork" binding:"omitempty,max=10000"`
	Motivation        *string `json:"motivation" binding:"omitempty,max=10000"`
	Complexity        *string `json:"complexity" binding:"omitempty,max=10000"`
	ResultsDiscussion *string `json:"resultsDiscussion" binding:"omitempty,max=10000"`
}

// ApproveProjectRequest is the body of POST /projects/:id/approve
type ApproveProjectRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ProjectCreatorDTO is the creator summary embedded in a project
type ProjectCreatorDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	BatchID *string `json:"batchId,omitempty"`
	Batch   *string `json:"batch,omitempty"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"`
	Year             int                 `json:"year"`
	Batch            string              `json:"batch"`
	BatchID          string              `json:"batchId"`
	Category         models.Category     `json:"category"`
	Tags             []string            `json:"tags"`
	TeamMembers      []models.TeamMember `json:"teamMembers"`
	Supervisor       models.Supervisor   `json:"supervisor"`
	Links            models.ProjectLinks `json:"links"`
	models.ProjectDetails
	SoftwareUsed []string            `json:"softwareUsed"`
	Images       []string            `json:"images"`
	IsApproved   bool                `json:"isApproved"`
	Status       models.ReviewStatus `json:"status"`
	ApprovedBy   *UserRefDTO         `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time          `json:"approvedAt,omitempty"`
	CreatedBy    *ProjectCreatorDTO  `json:"createdBy,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO  `json:"projects"`
	Pagination PaginationDTO `json:"pagination"`
}

// ProjectStatsResponse is returned by GET /projects/admin/stats
type ProjectStatsResponse struct {
	Stats *repository.ProjectStats `json:"stats"`
}

// Conversion functions

func toTeamMembers(in []TeamMemberInput) []models.TeamMember {
	members := make([]models.TeamMember, len(in))
	for i, m := range in {
		members[i] = models.TeamMember{
			Name:     m.Name,
			Email:    m.Email,
			LinkedIn: m.LinkedIn,
			GitHub:   m.GitHub,
			Role:     m.Role,
		}
	}
	return members
}

func (s SupervisorInput) toModel() models.Supervisor {
	return models.Supervisor{Name: s.Name, Email: s.Email, Department: s.Department, Title: s.Title}
}

func (l LinksInput) toModel() models.ProjectLinks {
	return models.ProjectLinks{
		DemoURL:            l.DemoURL,
		VideoURL:           l.VideoURL,
		RepoURL:            l.RepoURL,
		DocumentURL:        l.DocumentURL,
		ResearchArticleURL: l.ResearchArticleURL,
	}
}

func (d ProjectDetailsInput) toModel() models.ProjectDetails {
	return models.ProjectDetails{
		Implementation:    d.Implementation,
		ModelDesign:       d.ModelDesign,
		RelatedWork:       d.RelatedWork,
		Motivation:        d.Motivation,
		Complexity:        d.Complexity,
		ResultsDiscussion: d.ResultsDiscussion,
	}
}

// ToInput converts the request into service input
func (r CreateProjectRequest) ToInput() services.CreateProjectInput {
	return services.CreateProjectInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Year:             r.Year,
		Batch:            r.Batch,
		BatchID:          r.BatchID,
		Category:         models.Category(r.Category),
		Tags:             r.Tags,
		TeamMembers:      toTeamMembers(r.TeamMembers),
		Supervisor:       r.Supervisor.toModel(),
		Links:            r.Links.toModel(),
		Details:          r.ProjectDetailsInput.toModel(),
		SoftwareUsed:     r.SoftwareUsed,
		Images:           r.Images,
	}
}

// ToInput converts the request into service input
func (r UpdateProjectRequest) ToInput() services.UpdateProjectInput {
	input := services.UpdateProjectInput{
		Title:             r.Title,
		Description:       r.Description,
		ShortDescription:  r.ShortDescription,
		Year:              r.Year,
		Batch:             r.Batch,
		BatchID:           r.BatchID,
		Tags:              r.Tags,
		SoftwareUsed:      r.SoftwareUsed,
		Images:            r.Images,
		IsApproved:        r.IsApproved,
		ApprovedByID:      r.ApprovedBy,
		ApprovedAt:        r.ApprovedAt,
		Implementation:    r.Implementation,
		ModelDesign:       r.ModelDesign,
		RelatedWork:       r.RelatedWork,
		Motivation:        r.Motivation,
		Complexity:        r.Complexity,
		ResultsDiscussion: r.ResultsDiscussion,
	}
	if r.Category != nil {
		category := models.Category(*r.Category)
		input.Category = &category
	}
	if r.TeamMembers != nil {
		members := toTeamMembers(*r.TeamMembers)
		input.TeamMembers = &members
	}
	if r.Supervisor != nil {
		supervisor := r.Supervisor.toModel()
		input.Supervisor = &supervisor
	}
	if r.Links != nil {
		links := r.Links.toModel()
		input.Links = &links
	}
	return input
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:               project.ID,
		Title:            project.Title,
		Description:      project.Description,
		ShortDescription: project.ShortDescription,
		Year:             project.Year,
		Batch:            project.Batch,
		BatchID:          project.BatchID,
		Category:         project.Category,
		Tags:             nonNil([]string(project.Tags)),
		TeamMembers:      nonNil([]models.TeamMember(project.TeamMembers)),
		Supervisor:       project.Supervisor,
		Links:            project.Links,
		ProjectDetails:   project.Details,
		SoftwareUsed:     nonNil([]string(project.SoftwareUsed)),
		Images:           nonNil([]string(project.Images)),
		IsApproved:       project.IsApproved,
		Status:           project.Status(),
		ApprovedBy:       ToUserRefDTO(project.ApprovedBy),
		ApprovedAt:       project.ApprovedAt,
		CreatedAt:        project.CreatedAt,
		UpdatedAt:        project.UpdatedAt,
	}

	// Include creator if preloaded
	if project.CreatedBy.ID != "" {
		dto.CreatedBy = &ProjectCreatorDTO{
			ID:      project.CreatedBy.ID,
			Name:    project.CreatedBy.Name,
			Email:   project.CreatedBy.Email,
			BatchID: project.CreatedBy.BatchID,
			Batch:   project.CreatedBy.Batch,
		}
	}

	return dto
}

// ToProjectListResponse converts a page of projects
func ToProjectListResponse(projects []models.Project, pagination PaginationDTO) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return ProjectListResponse{Projects: items, Pagination: pagination}
}
