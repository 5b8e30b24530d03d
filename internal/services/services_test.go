// filepath: internal/services/services_test.go
package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"hcsl_site/internal/config"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
)

func setupTestRepo(t *testing.T) (*repository.Repository, *revalidate.Cache) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_site.db")

	cfg := &config.Config{Database: config.DatabaseConfig{Path: dbPath}}
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.MigrateUp(); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
	return repo, revalidate.New(time.Minute)
}
