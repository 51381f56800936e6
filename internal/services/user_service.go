package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/auth"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/utils"
	"gorm.io/gorm"
)

// RecentRegistrationWindow bounds the "recent registrations" statistic.
const RecentRegistrationWindow = 30 * 24 * time.Hour

// UserService handles account management business logic
type UserService struct {
	userRepo     repository.UserRepository
	projectRepo  repository.ProjectRepository
	batchService *BatchService
	hasher       auth.PasswordHasher
	log          zerolog.Logger
	now          func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository, batchService *BatchService, hasher auth.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		batchService: batchService,
		hasher:       hasher,
		log:          log,
		now:          time.Now,
	}
}

// ListUsersInput represents filters for listing users
type ListUsersInput struct {
	Role            models.Role
	BatchID         string
	Search          string
	IncludeInactive bool
	Pagination      utils.PaginationParams
}

// UpdateUserInput represents a partial profile update
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// List returns users matching the filters
func (s *UserService) List(ctx context.Context, input ListUsersInput) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, repository.UserFilter{
		Role:            input.Role,
		BatchID:         utils.NormalizeBatchID(input.BatchID),
		Search:          strings.TrimSpace(input.Search),
		IncludeInactive: input.IncludeInactive,
		Pagination:      input.Pagination,
	})
	if err != nil {
		return nil, 0, apierrors.Unexpected("Failed to list users", err)
	}
	return users, total, nil
}

// Get returns a user and the number of their approved projects. Students
// may only look themselves up.
func (s *UserService) Get(ctx context.Context, actor *models.User, id string) (*models.User, int64, error) {
	if err := authorizeAccount(actor, id); err != nil {
		return nil, 0, err
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.projectRepo.CountApprovedByCreator(ctx, user.ID)
	if err != nil {
		return nil, 0, apierrors.Unexpected("Failed to get user", err)
	}
	return user, count, nil
}

// Update changes name and email
func (s *UserService) Update(ctx context.Context, actor *models.User, id string, input UpdateUserInput) (*models.User, error) {
	if err := authorizeAccount(actor, id); err != nil {
		return nil, err
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := utils.NormalizeEmail(*input.Email)
		if email != user.Email {
			existing, err := s.userRepo.FindByEmail(ctx, email)
			if err == nil && existing.ID != user.ID {
				return nil, ErrEmailTaken
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierrors.Unexpected("Failed to update user", err)
			}
			fields["email"] = email
		}
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := s.userRepo.Updates(ctx, user, fields); err != nil {
		return nil, apierrors.Unexpected("Failed to update user", err)
	}
	return s.find(ctx, user.ID)
}

// ChangePassword replaces actor's password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, actor *models.User, current, next string) error {
	user, err := s.find(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(user.PasswordHash, current) {
		return ErrWrongPassword
	}
	if err := validatePassword(next); err != nil {
		return err
	}
	return setPassword(ctx, s.userRepo, s.hasher, user, next)
}

// Deactivate soft-deletes an account. Admins cannot deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if actor.ID == id {
		return nil, ErrSelfDeactivation
	}
	return s.setActive(ctx, id, false)
}

// Reactivate restores a deactivated account
func (s *UserService) Reactivate(ctx context.Context, id string) (*models.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *UserService) setActive(ctx context.Context, id string, active bool) (*models.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Updates(ctx, user, map[string]interface{}{"is_active": active}); err != nil {
		return nil, apierrors.Unexpected("Failed to update user status", err)
	}
	user.IsActive = active

	if user.IsStudent() && user.OwnBatchID() != "" {
		// the status change is already stored, so a stale count is only logged
		if _, err := s.batchService.RefreshStudentCount(ctx, user.OwnBatchID()); err != nil {
			s.log.Error().Err(err).Str("batch_id", user.OwnBatchID()).Str("user_id", user.ID).Msg("failed to refresh batch student count")
		}
	}
	return user, nil
}

// Stats aggregates user counts for the admin dashboard
func (s *UserService) Stats(ctx context.Context) (*repository.UserStats, error) {
	stats, err := s.userRepo.Stats(ctx, s.now().Add(-RecentRegistrationWindow))
	if err != nil {
		return nil, apierrors.Unexpected("Failed to get user statistics", err)
	}
	return stats, nil
}

func (s *UserService) find(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apierrors.Unexpected("Failed to get user", err)
	}
	return user, nil
}

func authorizeAccount(actor *models.User, id string) error {
	if actor.IsAdmin() || actor.ID == id {
		return nil
	}
	return ErrUserAccessDenied
}
