// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Password is the plain text password of every fixture user.
const Password = "password123"

// OpenDB opens a migrated in-memory SQLite database private to t.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func hash(t testing.TB) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// CreateAdmin inserts an active administrator.
func CreateAdmin(t testing.TB, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: hash(t),
		Name:         "Admin " + email,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateStudent inserts an active student of batchID.
func CreateStudent(t testing.TB, db *gorm.DB, email, batchID string) *models.User {
	t.Helper()
	batch := "2023-2027"
	user := &models.User{
		Email:        email,
		PasswordHash: hash(t),
		Name:         "Student " + email,
		Role:         models.RoleStudent,
		BatchID:      &batchID,
		Batch:        &batch,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateBatch inserts an active batch graduating in year.
func CreateBatch(t testing.TB, db *gorm.DB, batchID string, year int, createdBy string) *models.Batch {
	t.Helper()
	batch := &models.Batch{
		BatchID:     batchID,
		Batch:       fmt.Sprintf("%d-%d", year-4, year),
		Department:  "Computer Science",
		Year:        year,
		IsActive:    true,
		CreatedByID: createdBy,
	}
	require.NoError(t, db.Create(batch).Error)
	return batch
}

// CreateProject inserts a pending project owned by owner.
func CreateProject(t testing.TB, db *gorm.DB, title string, owner *models.User) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:            title,
		Description:      "Description of " + title,
		ShortDescription: "Short " + title,
		Year:             2026,
		Batch:            owner.OwnBatch(),
		BatchID:          owner.OwnBatchID(),
		Category:         models.CategoryCapstone,
		Tags:             datatypes.JSONSlice[string]{"go"},
		TeamMembers:      datatypes.JSONSlice[models.TeamMember]{{Name: owner.Name}},
		Supervisor: models.Supervisor{
			Name:       "Dr. Rao",
			Email:      "rao@university.ac.in",
			Department: "CSE",
			Title:      "Professor",
		},
		SoftwareUsed: datatypes.JSONSlice[string]{},
		Images:       datatypes.JSONSlice[string]{},
		CreatedByID:  owner.ID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

// Approve marks project approved by admin at the given time.
func Approve(t testing.TB, db *gorm.DB, project *models.Project, admin *models.User, at time.Time) {
	t.Helper()
	project.IsApproved = true
	project.ApprovedByID = &admin.ID
	project.ApprovedAt = &at
	require.NoError(t, db.Model(project).Updates(map[string]interface{}{
		"is_approved":    true,
		"approved_by_id": admin.ID,
		"approved_at":    at,
	}).Error)
}
