package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"gorm.io/gorm"
)

// compositeIndexes are created on top of the per-column indexes declared in the model tags.
var compositeIndexes = []struct {
	model   interface{}
	name    string
	columns string
}{
	// public listing: approved projects newest first
	{&models.Project{}, "idx_projects_approved_created", "is_approved, created_at"},
	{&models.Project{}, "idx_projects_year_batch", "year, batch"},
	// active student counts per batch
	{&models.User{}, "idx_users_role_batch_active", "role, batch_id, is_active"},
	{&models.Batch{}, "idx_batches_active_year", "is_active, year"},
}

// AddIndexes adds query indexes that AutoMigrate does not derive from struct tags
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", stmt.Schema.Table).Msg("created index")
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB, log zerolog.Logger) error {
	if err := Migrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
