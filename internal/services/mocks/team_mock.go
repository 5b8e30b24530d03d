// filepath: internal/services/mocks/team_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

// MockTeamService is a mock implementation of services.TeamService
type MockTeamService struct {
	mock.Mock
}

var _ services.TeamService = (*MockTeamService)(nil)

func (m *MockTeamService) GetTeamMembers(category string) []models.TeamMember {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.TeamMember)
}

func (m *MockTeamService) GetTeamMemberByID(id string) *models.TeamMember {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.TeamMember)
}

func (m *MockTeamService) AddTeamMember(data models.TeamMemberInput) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockTeamService) UpdateTeamMember(id string, data models.TeamMemberInput) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockTeamService) DeleteTeamMember(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeamService) PromoteTeamToBoard() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
