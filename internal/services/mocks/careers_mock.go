// filepath: internal/services/mocks/careers_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

// MockCareersService is a mock implementation of services.CareersService
type MockCareersService struct {
	mock.Mock
}

var _ services.CareersService = (*MockCareersService)(nil)

func (m *MockCareersService) GetJobListings(openOnly bool) []models.JobListing {
	args := m.Called(openOnly)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.JobListing)
}

func (m *MockCareersService) GetJobByID(id string) *models.JobListing {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.JobListing)
}

func (m *MockCareersService) CreateJob(data models.JobCreate) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockCareersService) UpdateJob(id string, data models.JobUpdate) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockCareersService) UpdateJobStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockCareersService) DeleteJob(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCareersService) SubmitApplication(data models.ApplicationSubmit) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockCareersService) GetApplications(jobID string) []models.JobApplication {
	args := m.Called(jobID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.JobApplication)
}

func (m *MockCareersService) UpdateApplicationStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockCareersService) DeleteApplication(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
