package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/auth"
	"github.com/yukikurage/project-showcase-api/internal/config"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/utils"
	"gorm.io/gorm"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo     repository.UserRepository
	batchRepo    repository.BatchRepository
	batchService *BatchService
	tokens       *auth.TokenManager
	hasher       auth.PasswordHasher
	admin        config.AdminConfig
	log          zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	batchRepo repository.BatchRepository,
	batchService *BatchService,
	tokens *auth.TokenManager,
	hasher auth.PasswordHasher,
	admin config.AdminConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		batchRepo:    batchRepo,
		batchService: batchService,
		tokens:       tokens,
		hasher:       hasher,
		admin:        admin,
		log:          log,
	}
}

// LoginInput represents the credentials of a login attempt.
type LoginInput struct {
	Email    string
	Password string
	BatchID  string
}

// LoginResult is a signed token and the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *models.User
}

// Login verifies credentials and issues a bearer token. Students must also
// name their own active batch.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, utils.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apierrors.Unexpected("Login failed", fmt.Errorf("failed to find user: %w", err))
	}
	if !user.IsActive || !s.hasher.Compare(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	if user.IsStudent() {
		batchID := utils.NormalizeBatchID(input.BatchID)
		if batchID == "" {
			return nil, ErrBatchRequired
		}
		if batchID != strings.ToUpper(user.OwnBatchID()) {
			return nil, ErrBatchMismatch
		}

		batch, err := s.batchRepo.FindByBatchID(ctx, batchID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.Unexpected("Login failed", fmt.Errorf("failed to find batch: %w", err))
		}
		if batch == nil || !batch.IsActive {
			return nil, ErrBatchInactive
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apierrors.Unexpected("Login failed", fmt.Errorf("failed to issue token: %w", err))
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: s.tokens.ExpiresIn(),
		User:      user,
	}, nil
}

// Authenticate resolves a bearer token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserInactive
		}
		return nil, apierrors.Unexpected("Authentication failed", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// InitAdmin creates the first administrator from the configured credentials.
func (s *AuthService) InitAdmin(ctx context.Context) (*models.User, error) {
	exists, err := s.userRepo.ExistsByRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, apierrors.Unexpected("Failed to initialize admin", err)
	}
	if exists {
		return nil, ErrAdminExists
	}

	return s.CreateAdmin(ctx, CreateAdminInput{
		Email:    s.admin.Email,
		Password: s.admin.Password,
		Name:     s.admin.Name,
	})
}

// CreateAdminInput represents input for creating an administrator.
type CreateAdminInput struct {
	Email    string
	Password string
	Name     string
}

// CreateAdmin creates an administrator account.
func (s *AuthService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*models.User, error) {
	user := &models.User{
		Email:    utils.NormalizeEmail(input.Email),
		Name:     strings.TrimSpace(input.Name),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := s.createUser(ctx, user, input.Password); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("admin created")
	return user, nil
}

// RegisterStudentInput represents input for registering a student.
type RegisterStudentInput struct {
	Email       string
	Password    string
	Name        string
	BatchID     string
	Batch       string
	RegistrarID string
}

// RegisterStudent creates a student. A batch that does not exist yet is created
// on the fly, and the batch's student count is refreshed afterwards.
func (s *AuthService) RegisterStudent(ctx context.Context, input RegisterStudentInput) (*models.User, error) {
	email := utils.NormalizeEmail(input.Email)
	if err := s.ensureEmailAvailable(ctx, email, ErrDuplicateEmail); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	batch, created, err := s.batchService.Provision(ctx, input.BatchID, input.RegistrarID)
	if err != nil {
		return nil, err
	}
	if !batch.IsActive {
		return nil, ErrBatchNotActive
	}
	if created {
		s.log.Info().Str("batch_id", batch.BatchID).Str("batch", batch.Batch).Msg("batch auto-created during registration")
	}

	batchRange := strings.TrimSpace(input.Batch)
	if !utils.ValidBatchRange(batchRange) {
		batchRange = batch.Batch
	}

	user := &models.User{
		Email:    email,
		Name:     strings.TrimSpace(input.Name),
		Role:     models.RoleStudent,
		BatchID:  &batch.BatchID,
		Batch:    &batchRange,
		IsActive: true,
	}
	if err := s.createUser(ctx, user, input.Password); err != nil {
		return nil, err
	}

	if _, err := s.batchService.RefreshStudentCount(ctx, batch.BatchID); err != nil {
		// the student exists, so the stale count is only logged
		s.log.Error().Err(err).Str("batch_id", batch.BatchID).Msg("failed to refresh batch student count")
	}

	return user, nil
}

// ResetPassword sets a new password for the user with email.
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apierrors.Unexpected("Failed to reset password", err)
	}

	if err := setPassword(ctx, s.userRepo, s.hasher, user, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ensureEmailAvailable(ctx context.Context, email string, dup *apierrors.AppError) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return dup
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierrors.Unexpected("Failed to check email", err)
	}
	return nil
}

// createUser hashes password into user and stores it.
func (s *AuthService) createUser(ctx context.Context, user *models.User, password string) error {
	if err := s.ensureEmailAvailable(ctx, user.Email, ErrDuplicateEmail); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return apierrors.Unexpected("Failed to create user", fmt.Errorf("failed to hash password: %w", err))
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		return apierrors.Unexpected("Failed to create user", fmt.Errorf("failed to create user: %w", err))
	}
	return nil
}

// setPassword hashes and stores a new password for user.
func setPassword(ctx context.Context, userRepo repository.UserRepository, hasher auth.PasswordHasher, user *models.User, password string) error {
	hashed, err := hasher.Hash(password)
	if err != nil {
		return apierrors.Unexpected("Failed to update password", fmt.Errorf("failed to hash password: %w", err))
	}
	if err := userRepo.Updates(ctx, user, map[string]interface{}{"password_hash": hashed}); err != nil {
		return apierrors.Unexpected("Failed to update password", err)
	}
	user.PasswordHash = hashed
	return nil
}
