// filepath: internal/repository/stats_repo.go
package repository

import (
	"database/sql"

	"hcsl_site/internal/models"
)

// GetDashboardStats computes the admin dashboard summary. Each metric is its
// own aggregate query; the first failure aborts the whole computation so the
// caller never sees partial results.
func (s *Repository) GetDashboardStats() (models.DashboardStats, error) {
	var stats models.DashboardStats

	var listingsTotal, listingsActive sql.NullInt64
	err := s.DB.QueryRow(
		`SELECT COUNT(*), SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END) FROM job_listings`,
	).Scan(&listingsTotal, &listingsActive)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.Listings.Total = int(listingsTotal.Int64)
	stats.Listings.Active = int(listingsActive.Int64)
	stats.Listings.Inactive = stats.Listings.Total - stats.Listings.Active

	var eventsTotal, eventsOpen sql.NullInt64
	err = s.DB.QueryRow(
		`SELECT COUNT(*), SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END) FROM content_items WHERE type = 'event'`,
	).Scan(&eventsTotal, &eventsOpen)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.Events.Total = int(eventsTotal.Int64)
	stats.Events.Upcoming = int(eventsOpen.Int64)

	var registrations int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM event_registrations").Scan(&registrations); err != nil {
		return models.DashboardStats{}, err
	}
	stats.Events.Registrations = registrations

	var projects, stories sql.NullInt64
	err = s.DB.QueryRow(
		`SELECT SUM(CASE WHEN type = 'project' THEN 1 ELSE 0 END), SUM(CASE WHEN type = 'story' THEN 1 ELSE 0 END) FROM content_items`,
	).Scan(&projects, &stories)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.Content.Projects = int(projects.Int64)
	stats.Content.Stories = int(stories.Int64)

	var board int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM team_members WHERE category = 'board'").Scan(&board); err != nil {
		return models.DashboardStats{}, err
	}
	stats.Board.Total = board

	return stats, nil
}
