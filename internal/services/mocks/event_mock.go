// filepath: internal/services/mocks/event_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

// MockEventService is a mock implementation of services.EventService
type MockEventService struct {
	mock.Mock
}

var _ services.EventService = (*MockEventService)(nil)

func (m *MockEventService) RegisterForEvent(eventID, firstName, lastName, email, phone string) models.RegistrationResult {
	args := m.Called(eventID, firstName, lastName, email, phone)
	return args.Get(0).(models.RegistrationResult)
}

func (m *MockEventService) GetEventRegistrations(eventID string) []models.EventRegistration {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.EventRegistration)
}

func (m *MockEventService) GetEventRegistrationCount(eventID string) int {
	args := m.Called(eventID)
	return args.Int(0)
}
