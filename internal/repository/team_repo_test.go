// filepath: internal/repository/team_repo_test.go
package repository

import (
	"testing"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberCRUD(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.AddTeamMember(models.TeamMemberInput{
		Name: "Fatmata Kamara", Role: "Executive Director", Bio: "Founder.",
		LinkedIn: "https://linkedin.com/in/fk",
	})
	require.NoError(t, err)

	m, err := repo.GetTeamMemberByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Fatmata Kamara", m.Name)
	assert.Equal(t, models.TeamCategoryTeam, m.Category, "empty category defaults to team")
	assert.Equal(t, "https://linkedin.com/in/fk", m.LinkedIn)
	assert.Empty(t, m.Twitter)

	// Update is a full overwrite; omitted optional fields become NULL.
	err = repo.UpdateTeamMember(id, models.TeamMemberInput{
		Name: "Fatmata Kamara", Role: "Board Chair", Bio: "Founder.", Category: models.TeamCategoryLeadership,
	})
	require.NoError(t, err)

	m, err = repo.GetTeamMemberByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Board Chair", m.Role)
	assert.Equal(t, models.TeamCategoryLeadership, m.Category)
	assert.Empty(t, m.LinkedIn)

	require.NoError(t, repo.DeleteTeamMember(id))
	_, err = repo.GetTeamMemberByID(id)
	assert.ErrorIs(t, err, shared.ErrTeamMemberNotFound)
}

func TestTeamCategoryFilter(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.AddTeamMember(models.TeamMemberInput{Name: "A", Role: "r", Bio: "b", Category: models.TeamCategoryTeam})
	require.NoError(t, err)
	_, err = repo.AddTeamMember(models.TeamMemberInput{Name: "B", Role: "r", Bio: "b", Category: models.TeamCategoryLeadership})
	require.NoError(t, err)

	all, err := repo.GetTeamMembers("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	leads, err := repo.GetTeamMembers(models.TeamCategoryLeadership)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "B", leads[0].Name)
}

func TestPromoteTeamToBoard(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.AddTeamMember(models.TeamMemberInput{Name: "A", Role: "r", Bio: "b", Category: models.TeamCategoryTeam})
	require.NoError(t, err)
	_, err = repo.AddTeamMember(models.TeamMemberInput{Name: "B", Role: "r", Bio: "b", Category: models.TeamCategoryTeam})
	require.NoError(t, err)
	_, err = repo.AddTeamMember(models.TeamMemberInput{Name: "C", Role: "r", Bio: "b", Category: models.TeamCategoryLeadership})
	require.NoError(t, err)

	moved, err := repo.PromoteTeamToBoard()
	require.NoError(t, err)
	assert.EqualValues(t, 2, moved)

	board, err := repo.GetTeamMembers(models.TeamCategoryBoard)
	require.NoError(t, err)
	assert.Len(t, board, 2)

	// Leadership members are untouched.
	leads, err := repo.GetTeamMembers(models.TeamCategoryLeadership)
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	// Re-running moves nothing.
	moved, err = repo.PromoteTeamToBoard()
	require.NoError(t, err)
	assert.Zero(t, moved)
}
