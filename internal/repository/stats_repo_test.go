// filepath: internal/repository/stats_repo_test.go
package repository

import (
	"testing"

	"hcsl_site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmpty(t *testing.T) {
	repo := setupTestDB(t)

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, stats, "empty database yields all-zero counts, not an error")
}

func TestDashboardStatsCounts(t *testing.T) {
	repo := setupTestDB(t)

	// Two listings, one closed.
	_, err := repo.CreateJob(models.JobCreate{Title: "Open", Description: "d", Location: "l", Type: "t"})
	require.NoError(t, err)
	closedID, err := repo.CreateJob(models.JobCreate{Title: "Closed", Description: "d", Location: "l", Type: "t"})
	require.NoError(t, err)
	closed := models.JobStatusClosed
	require.NoError(t, repo.UpdateJob(closedID, models.JobUpdate{Status: &closed}))

	// One project, one story, one open event with a registration.
	_, err = repo.CreateItem(models.ContentItemCreate{Type: models.ContentTypeProject, Title: "P", Slug: "p", PublishedDate: "2024-01-01"})
	require.NoError(t, err)
	_, err = repo.CreateItem(models.ContentItemCreate{Type: models.ContentTypeStory, Title: "S", Slug: "s", PublishedDate: "2024-01-02"})
	require.NoError(t, err)
	eventID, err := repo.CreateItem(models.ContentItemCreate{Type: models.ContentTypeEvent, Title: "E", Slug: "e", PublishedDate: "2024-01-03"})
	require.NoError(t, err)
	_, err = repo.InsertRegistration(eventID, "Ada", "Lovelace", "ada@example.org", "123")
	require.NoError(t, err)

	// One board member.
	_, err = repo.AddTeamMember(models.TeamMemberInput{Name: "B", Role: "r", Bio: "b", Category: models.TeamCategoryBoard})
	require.NoError(t, err)

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, models.ListingStats{Total: 2, Active: 1, Inactive: 1}, stats.Listings)
	assert.Equal(t, models.EventStats{Total: 1, Upcoming: 1, Registrations: 1}, stats.Events)
	assert.Equal(t, models.ContentStats{Projects: 1, Stories: 1}, stats.Content)
	assert.Equal(t, models.BoardStats{Total: 1}, stats.Board)
}
