// filepath: internal/repository/content_repo_test.go
package repository

import (
	"testing"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCRUD(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.CreateItem(models.ContentItemCreate{
		Type:          models.ContentTypeProject,
		Title:         "Malaria Prevention Program",
		Slug:          "malaria-program",
		Summary:       "Community-led malaria prevention.",
		Content:       "<p>Full writeup</p>",
		PublishedDate: "2023-05-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	item, err := repo.GetItemBySlug("malaria-program", "")
	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, "Malaria Prevention Program", item.Title)
	assert.Equal(t, "open", item.Status)
	assert.Zero(t, item.RegistrationCount)

	// Partial update writes only the supplied fields.
	newTitle := "Malaria Prevention Program 2024"
	err = repo.UpdateItem(id, models.ContentItemUpdate{Title: &newTitle})
	require.NoError(t, err)

	item, err = repo.GetItemBySlug("malaria-program", "")
	require.NoError(t, err)
	assert.Equal(t, newTitle, item.Title)
	assert.Equal(t, "Community-led malaria prevention.", item.Summary)

	// Empty update payload is a no-op, not an error.
	assert.NoError(t, repo.UpdateItem(id, models.ContentItemUpdate{}))

	assert.NoError(t, repo.DeleteItem(id))
	_, err = repo.GetItemBySlug("malaria-program", "")
	assert.ErrorIs(t, err, shared.ErrContentNotFound)
}

func TestContentSlugUnique(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeStory, Title: "A", Slug: "same-slug", PublishedDate: "2023-01-01",
	})
	require.NoError(t, err)

	// Second create with the same slug must fail at the storage layer,
	// regardless of type.
	_, err = repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeProject, Title: "B", Slug: "same-slug", PublishedDate: "2023-02-01",
	})
	assert.Error(t, err)
}

func TestContentYearFilter(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeProject, Title: "Malaria", Slug: "malaria-program", PublishedDate: "2023-05-01",
	})
	require.NoError(t, err)
	_, err = repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeProject, Title: "Wells", Slug: "clean-water", PublishedDate: "2022-08-15",
	})
	require.NoError(t, err)
	_, err = repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeStory, Title: "Story", Slug: "a-story", PublishedDate: "2023-03-01",
	})
	require.NoError(t, err)

	years, err := repo.GetYears(models.ContentTypeProject)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023", "2022"}, years)

	items, err := repo.GetItems(models.ContentTypeProject, 10, 1, "2023")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "malaria-program", items[0].Slug)

	items, err = repo.GetItems(models.ContentTypeProject, 10, 1, "2022")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "clean-water", items[0].Slug)

	// "all" disables the filter; ordering is published_date descending.
	items, err = repo.GetItems(models.ContentTypeProject, 10, 1, "all")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "malaria-program", items[0].Slug)
	assert.Equal(t, "clean-water", items[1].Slug)
}

func TestContentPagination(t *testing.T) {
	repo := setupTestDB(t)

	dates := []string{"2023-01-01", "2023-02-01", "2023-03-01"}
	for i, d := range dates {
		_, err := repo.CreateItem(models.ContentItemCreate{
			Type: models.ContentTypeStory, Title: d, Slug: "story-" + d, PublishedDate: d,
		})
		require.NoError(t, err, "insert %d", i)
	}

	page1, err := repo.GetItems(models.ContentTypeStory, 2, 1, "")
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "story-2023-03-01", page1[0].Slug)

	page2, err := repo.GetItems(models.ContentTypeStory, 2, 2, "")
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "story-2023-01-01", page2[0].Slug)
}

func TestGetItemBySlugTypeFilter(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeEvent, Title: "Training Day", Slug: "training-day",
		PublishedDate: "2024-06-01", Category: "training",
	})
	require.NoError(t, err)

	item, err := repo.GetItemBySlug("training-day", models.ContentTypeEvent)
	require.NoError(t, err)
	assert.Equal(t, "training", item.Category)

	_, err = repo.GetItemBySlug("training-day", models.ContentTypeProject)
	assert.ErrorIs(t, err, shared.ErrContentNotFound)
}

func TestContentRegistrationCount(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeEvent, Title: "Gala", Slug: "annual-gala", PublishedDate: "2024-09-01",
	})
	require.NoError(t, err)

	_, err = repo.InsertRegistration(id, "Ada", "Lovelace", "ada@example.org", "123")
	require.NoError(t, err)
	_, err = repo.InsertRegistration(id, "Grace", "Hopper", "grace@example.org", "456")
	require.NoError(t, err)

	items, err := repo.GetItems(models.ContentTypeEvent, 10, 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].RegistrationCount)
}
