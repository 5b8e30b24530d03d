// filepath: internal/services/careers_service.go
package services

import (
	"fmt"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/shared"
)

var _ CareersService = (*careersService)(nil)

// careersService handles business logic for job listings and applications.
type careersService struct {
	Repo  *repository.Repository
	Views *revalidate.Cache
}

// NewCareersService creates a new CareersService.
func NewCareersService(repo *repository.Repository, views *revalidate.Cache) *careersService {
	return &careersService{Repo: repo, Views: views}
}

var careersViews = []string{
	revalidate.ViewCareers,
	revalidate.ViewAdminCareers,
}

func (s *careersService) GetJobListings(openOnly bool) []models.JobListing {
	jobs, err := s.Repo.GetJobListings(openOnly)
	if err != nil {
		logging.Log.Errorf("CareersService: failed to get jobs: %v", err)
		return []models.JobListing{}
	}
	return jobs
}

func (s *careersService) GetJobByID(id string) *models.JobListing {
	job, err := s.Repo.GetJobByID(id)
	if err != nil {
		if err != shared.ErrJobNotFound {
			logging.Log.Errorf("CareersService: failed to get job '%s': %v", id, err)
		}
		return nil
	}
	return job
}

func (s *careersService) CreateJob(data models.JobCreate) (string, error) {
	id, err := s.Repo.CreateJob(data)
	if err != nil {
		logging.Log.Errorf("CareersService: failed to create job: %v", err)
		return "", err
	}
	s.Views.Path(careersViews...)
	return id, nil
}

func (s *careersService) UpdateJob(id string, data models.JobUpdate) error {
	if err := s.Repo.UpdateJob(id, data); err != nil {
		logging.Log.Errorf("CareersService: failed to update job '%s': %v", id, err)
		return err
	}
	s.Views.Path(careersViews...)
	return nil
}

// UpdateJobStatus is a convenience wrapper over UpdateJob.
func (s *careersService) UpdateJobStatus(id, status string) error {
	return s.UpdateJob(id, models.JobUpdate{Status: &status})
}

// DeleteJob soft-deletes the listing. Applications are deliberately left
// untouched; they remain linked through the retained row.
func (s *careersService) DeleteJob(id string) error {
	if err := s.Repo.DeleteJob(id); err != nil {
		logging.Log.Errorf("CareersService: failed to delete job '%s': %v", id, err)
		return err
	}
	s.Views.Path(careersViews...)
	return nil
}

// SubmitApplication stores a candidate submission. When the submission
// targets the general-application sentinel and the pseudo-listing does not
// exist yet, it is lazily created first; the insert-if-absent makes repeated
// or concurrent submissions safe.
func (s *careersService) SubmitApplication(data models.ApplicationSubmit) (string, error) {
	if data.JobID == models.GeneralApplicationID {
		if err := s.Repo.EnsureGeneralListing(); err != nil {
			return "", fmt.Errorf("failed to prepare general application listing: %w", err)
		}
	}

	id, err := s.Repo.InsertApplication(data)
	if err != nil {
		logging.Log.Errorf("CareersService: failed to submit application: %v", err)
		return "", err
	}
	s.Views.Path(revalidate.ViewAdminCareers)
	return id, nil
}

func (s *careersService) GetApplications(jobID string) []models.JobApplication {
	apps, err := s.Repo.GetApplications(jobID)
	if err != nil {
		logging.Log.Errorf("CareersService: failed to get applications: %v", err)
		return []models.JobApplication{}
	}
	return apps
}

func (s *careersService) UpdateApplicationStatus(id, status string) error {
	if err := s.Repo.UpdateApplicationStatus(id, status); err != nil {
		logging.Log.Errorf("CareersService: failed to update application '%s': %v", id, err)
		return err
	}
	s.Views.Path(revalidate.ViewAdminCareers)
	return nil
}

func (s *careersService) DeleteApplication(id string) error {
	if err := s.Repo.DeleteApplication(id); err != nil {
		logging.Log.Errorf("CareersService: failed to delete application '%s': %v", id, err)
		return err
	}
	s.Views.Path(revalidate.ViewAdminCareers)
	return nil
}
