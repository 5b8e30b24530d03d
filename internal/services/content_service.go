// filepath: internal/services/content_service.go
package services

import (
	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
)

var _ ContentService = (*contentService)(nil)

// contentService handles business logic for content items.
type contentService struct {
	Repo  *repository.Repository
	Views *revalidate.Cache
}

// NewContentService creates a new ContentService.
func NewContentService(repo *repository.Repository, views *revalidate.Cache) *contentService {
	return &contentService{Repo: repo, Views: views}
}

// contentViews are the pages affected by any content mutation.
var contentViews = []string{
	revalidate.ViewAdminProjects,
	revalidate.ViewAdminStories,
	revalidate.ViewAdminEvents,
	revalidate.ViewProjects,
	revalidate.ViewSuccessStories,
}

// GetItems returns a page of items. Query failures are logged and collapse
// to an empty slice; callers cannot distinguish "no data" from "query failed".
func (s *contentService) GetItems(itemType string, limit, page int, filterYear string) []models.ContentItem {
	items, err := s.Repo.GetItems(itemType, limit, page, filterYear)
	if err != nil {
		logging.Log.Errorf("ContentService: failed to get %s items: %v", itemType, err)
		return []models.ContentItem{}
	}
	return items
}

// GetItemBySlug returns one item or nil; failures collapse to "not found".
func (s *contentService) GetItemBySlug(slug, itemType string) *models.ContentItem {
	item, err := s.Repo.GetItemBySlug(slug, itemType)
	if err != nil {
		logging.Log.Errorf("ContentService: failed to get item by slug '%s': %v", slug, err)
		return nil
	}
	return item
}

// GetYears returns the distinct publication years for a type, newest first.
func (s *contentService) GetYears(itemType string) []string {
	years, err := s.Repo.GetYears(itemType)
	if err != nil {
		logging.Log.Errorf("ContentService: failed to get years: %v", err)
		return []string{}
	}
	return years
}

// CreateItem inserts a new item and invalidates the content views.
func (s *contentService) CreateItem(data models.ContentItemCreate) models.ActionResult {
	id, err := s.Repo.CreateItem(data)
	if err != nil {
		logging.Log.Errorf("ContentService: failed to create item: %v", err)
		return models.ActionResult{Success: false, Error: err.Error()}
	}
	s.Views.Path(contentViews...)
	return models.ActionResult{Success: true, ID: id}
}

// UpdateItem writes the supplied fields and invalidates the content views.
func (s *contentService) UpdateItem(id string, data models.ContentItemUpdate) models.ActionResult {
	if err := s.Repo.UpdateItem(id, data); err != nil {
		logging.Log.Errorf("ContentService: failed to update item '%s': %v", id, err)
		return models.ActionResult{Success: false, Error: err.Error()}
	}
	s.Views.Path(contentViews...)
	return models.ActionResult{Success: true}
}

// DeleteItem hard-deletes an item and invalidates the content views.
func (s *contentService) DeleteItem(id string) models.ActionResult {
	if err := s.Repo.DeleteItem(id); err != nil {
		logging.Log.Errorf("ContentService: failed to delete item '%s': %v", id, err)
		return models.ActionResult{Success: false, Error: err.Error()}
	}
	s.Views.Path(contentViews...)
	return models.ActionResult{Success: true}
}
