package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByRole reports whether any user holds role
func (r *GormUserRepository) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	var user models.User
	err := r.db.WithContext(ctx).Select("id").Where("role = ?", role).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Updates writes the given columns for the user
func (r *GormUserRepository) Updates(ctx context.Context, user *models.User, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(user).Updates(fields).Error
}

// List retrieves users with filtering and pagination
func (r *GormUserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	var users []models.User

	query := r.db.WithContext(ctx).Model(&models.User{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.BatchID != "" {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	query = query.Scopes(database.ContainsFold(filter.Search, "name", "email"))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CountActiveStudents counts active students referencing batchID
func (r *GormUserRepository) CountActiveStudents(ctx context.Context, batchID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND batch_id = ? AND is_active = ?", models.RoleStudent, batchID, true).
		Count(&count).Error
	return count, err
}

// Stats aggregates user counts
func (r *GormUserRepository) Stats(ctx context.Context, since time.Time) (*UserStats, error) {
	db := r.db.WithContext(ctx)
	stats := &UserStats{ByBatch: []GroupCount{}}

	counts := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&stats.Total, "", nil},
		{&stats.Students, "role = ? AND is_active = ?", []interface{}{models.RoleStudent, true}},
		{&stats.Admins, "role = ? AND is_active = ?", []interface{}{models.RoleAdmin, true}},
		{&stats.Inactive, "is_active = ?", []interface{}{false}},
		{&stats.RecentRegistrations, "created_at >= ? AND is_active = ?", []interface{}{since, true}},
	}
	for _, c := range counts {
		q := db.Model(&models.User{})
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.User{}).
		Select("batch_id AS id, COUNT(*) AS count").
		Where("role = ? AND is_active = ? AND batch_id IS NOT NULL", models.RoleStudent, true).
		Group("batch_id").
		Order("count DESC, batch_id ASC").
		Scan(&stats.ByBatch).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
