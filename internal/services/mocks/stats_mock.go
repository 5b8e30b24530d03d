// filepath: internal/services/mocks/stats_mock.go
package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

// MockStatsService is a mock implementation of services.StatsService
type MockStatsService struct {
	mock.Mock
}

var _ services.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) GetDashboardStats() models.DashboardStats {
	args := m.Called()
	return args.Get(0).(models.DashboardStats)
}

// MockSchemaService is a mock implementation of services.SchemaService
type MockSchemaService struct {
	mock.Mock
}

var _ services.SchemaService = (*MockSchemaService)(nil)

func (m *MockSchemaService) RepairSchema() models.ActionResult {
	args := m.Called()
	return args.Get(0).(models.ActionResult)
}

// MockUploader is a mock implementation of services.Uploader
type MockUploader struct {
	mock.Mock
}

var _ services.Uploader = (*MockUploader)(nil)

func (m *MockUploader) Put(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}
