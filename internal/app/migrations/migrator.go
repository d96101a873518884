package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

const versionTable = "schema_version"

// Migrator applies the embedded registry schema
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

// Migrate brings the schema up to the latest embedded version on a single pooled connection
func (m *Migrator) Migrate(ctx context.Context) error {
	conn, err := m.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire migration connection: %w", err)
	}
	defer conn.Release()

	migrator, err := tern.NewMigrator(ctx, conn.Conn(), versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(schemaFiles, "sql")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := migrator.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := migrator.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("applying database migrations: %w", err)
	}

	if from == int32(len(migrator.Migrations)) {
		logger.Info().Int("version", len(migrator.Migrations)).Msg("Database schema up to date")
	} else {
		logger.Info().Int32("from", from).Int("to", len(migrator.Migrations)).Msg("Migrated database schema")
	}

	return nil
}
