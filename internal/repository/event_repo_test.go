// filepath: internal/repository/event_repo_test.go
package repository

import (
	"testing"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEvent(t *testing.T, repo *Repository, slug, status string) string {
	t.Helper()
	id, err := repo.CreateItem(models.ContentItemCreate{
		Type: models.ContentTypeEvent, Title: "Event " + slug, Slug: slug,
		PublishedDate: "2024-05-01", Category: "event", Status: status,
	})
	require.NoError(t, err)
	return id
}

func TestEventStatusLookup(t *testing.T) {
	repo := setupTestDB(t)

	openID := createTestEvent(t, repo, "open-event", "")
	closedID := createTestEvent(t, repo, "closed-event", models.EventStatusClosed)

	status, err := repo.GetEventStatus(openID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusOpen, status)

	status, err = repo.GetEventStatus(closedID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusClosed, status)

	_, err = repo.GetEventStatus("missing-event")
	assert.ErrorIs(t, err, shared.ErrEventNotFound)
}

func TestRegistrationDuplicateCheck(t *testing.T) {
	repo := setupTestDB(t)
	eventID := createTestEvent(t, repo, "workshop", "")

	exists, err := repo.HasRegistration(eventID, "ada@example.org")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.InsertRegistration(eventID, "Ada", "Lovelace", "ada@example.org", "123")
	require.NoError(t, err)

	exists, err = repo.HasRegistration(eventID, "ada@example.org")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same email on a different event is fine.
	otherID := createTestEvent(t, repo, "other-workshop", "")
	exists, err = repo.HasRegistration(otherID, "ada@example.org")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegistrationListAndCount(t *testing.T) {
	repo := setupTestDB(t)
	eventID := createTestEvent(t, repo, "gala", "")

	_, err := repo.InsertRegistration(eventID, "Ada", "Lovelace", "ada@example.org", "123")
	require.NoError(t, err)
	_, err = repo.InsertRegistration(eventID, "Grace", "Hopper", "grace@example.org", "456")
	require.NoError(t, err)

	regs, err := repo.GetEventRegistrations(eventID)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	for _, r := range regs {
		assert.Equal(t, eventID, r.EventID)
		assert.NotEmpty(t, r.CreatedAt)
	}

	count, err := repo.CountRegistrations(eventID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountRegistrations("missing-event")
	require.NoError(t, err)
	assert.Zero(t, count)
}
