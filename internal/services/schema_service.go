// filepath: internal/services/schema_service.go
package services

import (
	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
)

var _ SchemaService = (*schemaService)(nil)

type schemaService struct {
	Repo *repository.Repository
}

// NewSchemaService creates a new SchemaService.
func NewSchemaService(repo *repository.Repository) *schemaService {
	return &schemaService{Repo: repo}
}

// RepairSchema applies any pending migrations, including the content table
// rebuild that widens the type constraint. Running it on an up-to-date
// database is a no-op and still reports success.
func (s *schemaService) RepairSchema() models.ActionResult {
	if err := s.Repo.MigrateUp(); err != nil {
		logging.Log.Errorf("SchemaService: schema repair failed: %v", err)
		return models.ActionResult{Success: false, Error: "Failed to fix database schema"}
	}
	logging.Log.Info("SchemaService: schema verified and repaired")
	return models.ActionResult{Success: true}
}
