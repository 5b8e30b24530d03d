// filepath: internal/services/mocks/content_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

// MockContentService is a mock implementation of services.ContentService
type MockContentService struct {
	mock.Mock
}

var _ services.ContentService = (*MockContentService)(nil)

func (m *MockContentService) GetItems(itemType string, limit, page int, filterYear string) []models.ContentItem {
	args := m.Called(itemType, limit, page, filterYear)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ContentItem)
}

func (m *MockContentService) GetItemBySlug(slug, itemType string) *models.ContentItem {
	args := m.Called(slug, itemType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.ContentItem)
}

func (m *MockContentService) GetYears(itemType string) []string {
	args := m.Called(itemType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockContentService) CreateItem(data models.ContentItemCreate) models.ActionResult {
	args := m.Called(data)
	return args.Get(0).(models.ActionResult)
}

func (m *MockContentService) UpdateItem(id string, data models.ContentItemUpdate) models.ActionResult {
	args := m.Called(id, data)
	return args.Get(0).(models.ActionResult)
}

func (m *MockContentService) DeleteItem(id string) models.ActionResult {
	args := m.Called(id)
	return args.Get(0).(models.ActionResult)
}
