// filepath: internal/services/stats_service.go
package services

import (
	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
)

var _ StatsService = (*statsService)(nil)

type statsService struct {
	Repo *repository.Repository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo *repository.Repository) *statsService {
	return &statsService{Repo: repo}
}

// GetDashboardStats returns the admin dashboard summary. A storage failure
// yields an all-zero summary rather than an error; the dashboard degrades
// instead of breaking.
func (s *statsService) GetDashboardStats() models.DashboardStats {
	stats, err := s.Repo.GetDashboardStats()
	if err != nil {
		logging.Log.Errorf("StatsService: failed to compute dashboard stats: %v", err)
		return models.DashboardStats{}
	}
	return stats
}
