package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/centsible/centsible/internal/config"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open opens the configured database. The "sqlite" driver is the local
// single-file variant, "postgres" the multi-user server variant. Repositories
// use $1..$n placeholders, which both drivers accept.
func Open(cfg config.Database) (*sql.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database at %s: %w", cfg.Path, err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return db, nil
	case "postgres":
		escapedPassword := strings.ReplaceAll(cfg.Pass, "'", "\\'")
		psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password='%s' dbname=%s sslmode=disable options='-c search_path=%s'",
			cfg.Host, cfg.Port, cfg.User, escapedPassword, cfg.Name, cfg.Schema)
		db, err := sql.Open("pgx", psqlInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate runs the golang-migrate migrations matching the configured driver.
// SQL dialects differ slightly, so each driver has its own migrations
// directory: migrations/sqlite and migrations/postgres.
func Migrate(db *sql.DB, cfg config.Database) error {
	migrationsPath, err := findMigrationsPath(cfg.Driver)
	if err != nil {
		return fmt.Errorf("failed to locate migrations directory: %w", err)
	}

	var m *migrate.Migrate
	switch cfg.Driver {
	case "sqlite":
		driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	case "postgres":
		driver, err := migratepg.WithInstance(db, &migratepg.Config{SchemaName: cfg.Schema})
		if err != nil {
			return fmt.Errorf("failed to create postgres migration driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// findMigrationsPath searches upward from the current working directory for a
// "migrations/<driver>" directory and returns its absolute path. This makes
// migrations resolution robust in tests where the working directory can be
// different from the project root.
func findMigrationsPath(driver string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "migrations", driver)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", err
			}
			return abs, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("migrations directory for driver %q not found", driver)
}
