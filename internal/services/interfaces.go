// filepath: internal/services/interfaces.go
package services

import (
	"io"

	"hcsl_site/internal/models"
)

// ContentService serves projects, success stories and events. Read paths
// swallow storage errors and return empty defaults; mutations return a
// structured ActionResult instead of an error.
type ContentService interface {
	GetItems(itemType string, limit, page int, filterYear string) []models.ContentItem
	GetItemBySlug(slug, itemType string) *models.ContentItem
	GetYears(itemType string) []string
	CreateItem(data models.ContentItemCreate) models.ActionResult
	UpdateItem(id string, data models.ContentItemUpdate) models.ActionResult
	DeleteItem(id string) models.ActionResult
}

// CareersService serves job listings and applications. Reads swallow errors;
// mutations propagate them, because these paths are user-facing and must
// surface failure.
type CareersService interface {
	GetJobListings(openOnly bool) []models.JobListing
	GetJobByID(id string) *models.JobListing
	CreateJob(data models.JobCreate) (string, error)
	UpdateJob(id string, data models.JobUpdate) error
	UpdateJobStatus(id, status string) error
	DeleteJob(id string) error
	SubmitApplication(data models.ApplicationSubmit) (string, error)
	GetApplications(jobID string) []models.JobApplication
	UpdateApplicationStatus(id, status string) error
	DeleteApplication(id string) error
}

// TeamService serves team member records. Reads swallow errors; mutations
// propagate them.
type TeamService interface {
	GetTeamMembers(category string) []models.TeamMember
	GetTeamMemberByID(id string) *models.TeamMember
	AddTeamMember(data models.TeamMemberInput) (string, error)
	UpdateTeamMember(id string, data models.TeamMemberInput) error
	DeleteTeamMember(id string) error
	PromoteTeamToBoard() (int64, error)
}

// EventService handles public event registration and its admin views.
type EventService interface {
	RegisterForEvent(eventID, firstName, lastName, email, phone string) models.RegistrationResult
	GetEventRegistrations(eventID string) []models.EventRegistration
	GetEventRegistrationCount(eventID string) int
}

// StatsService computes the dashboard summary.
type StatsService interface {
	GetDashboardStats() models.DashboardStats
}

// SchemaService exposes the corrective schema migration as an admin action.
type SchemaService interface {
	RepairSchema() models.ActionResult
}

// Uploader stores a blob and returns its public URL.
type Uploader interface {
	Put(filename string, r io.Reader) (string, error)
}
