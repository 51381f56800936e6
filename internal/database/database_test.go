package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-showcase-api/internal/config"
	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/testutil"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "oracle"})
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestMigrateDatabase_Idempotent(t *testing.T) {
	db := testutil.OpenDB(t)

	require.NoError(t, database.MigrateDatabase(db, logger.Nop()))
	require.NoError(t, database.MigrateDatabase(db, logger.Nop()))

	assert.True(t, db.Migrator().HasIndex(&models.Project{}, "idx_projects_approved_created"))
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "idx_users_role_batch_active"))
	assert.True(t, db.Migrator().HasIndex(&models.Batch{}, "idx_batches_active_year"))
}

func TestScopes(t *testing.T) {
	db := testutil.OpenDB(t)
	alice := testutil.CreateStudent(t, db, "alice@x.edu", "CSE2027")
	testutil.CreateProject(t, db, "Solar Tracker", alice)
	testutil.CreateProject(t, db, "Crop Monitor", alice)
	testutil.CreateProject(t, db, "Traffic Lights", alice)

	var projects []models.Project
	require.NoError(t, db.Scopes(database.ContainsFold("SOLAR", "title", "description")).Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, "Solar Tracker", projects[0].Title)

	// an OR group must not leak past the other conditions
	projects = nil
	require.NoError(t, db.Where("title = ?", "Crop Monitor").
		Scopes(database.ContainsFold("t", "title", "description")).
		Find(&projects).Error)
	assert.Len(t, projects, 1)

	projects = nil
	require.NoError(t, db.Scopes(database.ContainsFold("", "title")).Find(&projects).Error)
	assert.Len(t, projects, 3)

	projects = nil
	require.NoError(t, db.Order("title ASC").
		Scopes(database.Paginate(utils.NewPaginationParams(2, 2, 10))).
		Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, "Traffic Lights", projects[0].Title)
}
