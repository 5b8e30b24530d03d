// filepath: internal/services/team_service.go
package services

import (
	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/shared"
)

var _ TeamService = (*teamService)(nil)

// teamService handles business logic for team member records.
type teamService struct {
	Repo  *repository.Repository
	Views *revalidate.Cache
}

// NewTeamService creates a new TeamService.
func NewTeamService(repo *repository.Repository, views *revalidate.Cache) *teamService {
	return &teamService{Repo: repo, Views: views}
}

var teamViews = []string{
	revalidate.ViewAbout,
	revalidate.ViewAdminTeam,
	revalidate.ViewAdminLeadership,
}

func (s *teamService) GetTeamMembers(category string) []models.TeamMember {
	members, err := s.Repo.GetTeamMembers(category)
	if err != nil {
		logging.Log.Errorf("TeamService: failed to get team members: %v", err)
		return []models.TeamMember{}
	}
	return members
}

func (s *teamService) GetTeamMemberByID(id string) *models.TeamMember {
	m, err := s.Repo.GetTeamMemberByID(id)
	if err != nil {
		if err != shared.ErrTeamMemberNotFound {
			logging.Log.Errorf("TeamService: failed to get member '%s': %v", id, err)
		}
		return nil
	}
	return m
}

func (s *teamService) AddTeamMember(data models.TeamMemberInput) (string, error) {
	id, err := s.Repo.AddTeamMember(data)
	if err != nil {
		logging.Log.Errorf("TeamService: failed to add member: %v", err)
		return "", err
	}
	s.Views.Path(teamViews...)
	return id, nil
}

func (s *teamService) UpdateTeamMember(id string, data models.TeamMemberInput) error {
	if err := s.Repo.UpdateTeamMember(id, data); err != nil {
		logging.Log.Errorf("TeamService: failed to update member '%s': %v", id, err)
		return err
	}
	s.Views.Path(teamViews...)
	return nil
}

func (s *teamService) DeleteTeamMember(id string) error {
	if err := s.Repo.DeleteTeamMember(id); err != nil {
		logging.Log.Errorf("TeamService: failed to delete member '%s': %v", id, err)
		return err
	}
	s.Views.Path(teamViews...)
	return nil
}

// PromoteTeamToBoard moves all 'team' members to the 'board' category.
func (s *teamService) PromoteTeamToBoard() (int64, error) {
	moved, err := s.Repo.PromoteTeamToBoard()
	if err != nil {
		logging.Log.Errorf("TeamService: failed to promote team to board: %v", err)
		return 0, err
	}
	logging.Log.Infof("TeamService: promoted %d member(s) to board", moved)
	s.Views.Path(teamViews...)
	return moved, nil
}
