// filepath: internal/repository/repository.go
// Package repository owns the SQLite connection and all SQL against it.
// Every query result is scanned into a typed struct; shape mismatches fail
// loudly instead of being coerced.
package repository

import (
	"database/sql"
	"fmt"

	"hcsl_site/internal/config"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver
	"github.com/oklog/ulid/v2"
)

// Repository provides data access to the single shared site database.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens the database handle. Schema creation is not implicit;
// callers run EnsureSchemaBootstrapped (or the migrate CLI) before serving.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database at %s: %w", cfg.Database.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach database at %s: %w", cfg.Database.Path, err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// NewID returns a new opaque entity ID. IDs are globally unique, assigned at
// creation and immutable.
func (s *Repository) NewID() string {
	return ulid.Make().String()
}
