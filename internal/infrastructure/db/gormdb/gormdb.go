// Package gormdb implements the repository ports on a relational store via
// GORM. Postgres backs production; SQLite backs tests and local development.
// All uniqueness and batch-atomicity invariants are enforced here, at the
// storage layer, so concurrent writers are serialized by the database rather
// than by application locks.
package gormdb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config captures the minimal settings required to open the database.
type Config struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

// Connect opens the database, verifies connectivity, and applies migrations.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("gormdb: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("gormdb: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gormdb: unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("gormdb: ping: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies schema migrations for every record type.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userRecord{},
		&clientRecord{},
		&programRecord{},
		&enrollmentRecord{},
	); err != nil {
		return fmt.Errorf("gormdb: migrate: %w", err)
	}
	return nil
}
