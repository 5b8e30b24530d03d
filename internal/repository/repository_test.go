// filepath: internal/repository/repository_test.go
package repository

import (
	"path/filepath"
	"testing"

	"hcsl_site/internal/config"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_site.db")

	cfg := &config.Config{Database: config.DatabaseConfig{Path: dbPath}}
	repo, err := NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.MigrateUp(); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
	return repo
}

func TestNewRepository(t *testing.T) {
	repo := setupTestDB(t)

	tables := []string{"team_members", "job_listings", "job_applications", "content_items", "event_registrations"}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestNewID(t *testing.T) {
	repo := setupTestDB(t)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := repo.NewID()
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "ID %s generated twice", id)
		seen[id] = true
	}
}
