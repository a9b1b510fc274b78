package postgres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/ghaniswara/swipe-match/pkg/path"
)

// ResolveMigrationsDir finds dir relative to the working directory or any of
// its parents. Absolute paths are returned as is.
func ResolveMigrationsDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}

	basePath, err := os.Getwd()
	if err != nil {
		return "", err
	}

	root, err := path.FindRoot(basePath, dir, true)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, dir), nil
}

// RunMigrations applies every pending up migration found in dir.
func RunMigrations(db *gorm.DB, dir string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	driver, err := migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	migrationPath, err := ResolveMigrationsDir(dir)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
