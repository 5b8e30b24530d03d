// filepath: internal/services/team_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hcsl_site/internal/models"
	"hcsl_site/internal/services"
)

func TestTeamServicePromoteTeamToBoard(t *testing.T) {
	repo, views := setupTestRepo(t)
	svc := services.NewTeamService(repo, views)

	_, err := svc.AddTeamMember(models.TeamMemberInput{Name: "Ada Lovelace", Role: "Engineer"})
	require.NoError(t, err)
	_, err = svc.AddTeamMember(models.TeamMemberInput{Name: "Grace Hopper", Role: "Director", Category: models.TeamCategoryLeadership})
	require.NoError(t, err)

	moved, err := svc.PromoteTeamToBoard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), moved)

	assert.Empty(t, svc.GetTeamMembers(models.TeamCategoryTeam))
	assert.Len(t, svc.GetTeamMembers(models.TeamCategoryBoard), 1)
	assert.Len(t, svc.GetTeamMembers(models.TeamCategoryLeadership), 1)
}

func TestTeamServiceReadsSwallowErrors(t *testing.T) {
	repo, views := setupTestRepo(t)
	svc := services.NewTeamService(repo, views)

	require.NoError(t, repo.Close())

	assert.Empty(t, svc.GetTeamMembers(""))
	assert.Nil(t, svc.GetTeamMemberByID("anything"))

	_, err := svc.AddTeamMember(models.TeamMemberInput{Name: "X"})
	assert.Error(t, err)
}
