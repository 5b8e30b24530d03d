// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

// Content item types.
const (
	ContentTypeProject = "project"
	ContentTypeStory   = "story"
	ContentTypeEvent   = "event"
)

// Event lifecycle states on a content item.
const (
	EventStatusOpen   = "open"
	EventStatusClosed = "closed"
)

// Job listing states. Deleted is a soft delete: the row persists so
// applications keep a valid reference.
const (
	JobStatusOpen    = "open"
	JobStatusClosed  = "closed"
	JobStatusDeleted = "deleted"
)

// GeneralApplicationID is the reserved ID of the pseudo-listing that collects
// applications not tied to a specific open role.
const GeneralApplicationID = "general-application"

// Team member categories. Board is reachable only via the promote operation,
// not the regular CRUD surface.
const (
	TeamCategoryTeam       = "team"
	TeamCategoryLeadership = "leadership"
	TeamCategoryBoard      = "board"
)

// ContentItem is the unified record for projects, success stories and events,
// distinguished by Type. Category and Status are meaningful only for events.
type ContentItem struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url"`
	PublishedDate string `json:"published_date"`
	Category      string `json:"category,omitempty"`
	Status        string `json:"status,omitempty"`
	// RegistrationCount is computed per row from event_registrations and is
	// zero for non-event items.
	RegistrationCount int    `json:"registration_count"`
	CreatedAt         string `json:"created_at"`
}

// ContentItemCreate is the payload for creating a content item.
type ContentItemCreate struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url"`
	PublishedDate string `json:"published_date"`
	Category      string `json:"category"`
	Status        string `json:"status"`
}

// ContentItemUpdate carries a partial update; nil fields are left untouched.
type ContentItemUpdate struct {
	Title         *string `json:"title,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	Content       *string `json:"content,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	PublishedDate *string `json:"published_date,omitempty"`
	Category      *string `json:"category,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// JobListing is an open role on the careers page.
type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// JobCreate is the payload for creating a job listing.
type JobCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// JobApplication is a candidate submission against a listing (or against the
// general-application pseudo-listing). JobTitle and JobCurrentStatus are
// joined in for display; JobCurrentStatus shows "deleted" for orphaned
// applications whose listing was soft-deleted.
type JobApplication struct {
	ID               string `json:"id"`
	JobID            string `json:"job_id"`
	ApplicantName    string `json:"applicant_name"`
	Email            string `json:"email"`
	ResumeURL        string `json:"resume_url"`
	RoleInterest     string `json:"role_interest,omitempty"`
	Message          string `json:"message,omitempty"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	JobTitle         string `json:"job_title,omitempty"`
	JobCurrentStatus string `json:"job_current_status,omitempty"`
}

// ApplicationSubmit is the payload for the public application form.
type ApplicationSubmit struct {
	JobID         string `json:"job_id"`
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	ResumeURL     string `json:"resume_url"`
	RoleInterest  string `json:"role_interest"`
	Message       string `json:"message"`
}

// TeamMember is a person shown on the about pages.
type TeamMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"image_url,omitempty"`
	Category  string `json:"category"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// TeamMemberInput is the payload for adding or fully overwriting a member.
type TeamMemberInput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

// EventRegistration is an append-only attendance record for an event.
type EventRegistration struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// RegistrationResult is the discriminated outcome of RegisterForEvent. The
// operation never returns an error; every failure path collapses into this
// shape with a human-readable message.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ActionResult is the structured outcome of content mutations and schema
// actions: callers get success/failure with an error message instead of a
// thrown error.
type ActionResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListingStats summarizes job listings for the dashboard.
type ListingStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// EventStats summarizes events and their registrations.
type EventStats struct {
	Total         int `json:"total"`
	Upcoming      int `json:"upcoming"`
	Registrations int `json:"registrations"`
}

// ContentStats counts published projects and stories.
type ContentStats struct {
	Projects int `json:"projects"`
	Stories  int `json:"stories"`
}

// BoardStats counts board-category team members.
type BoardStats struct {
	Total int `json:"total"`
}

// DashboardStats is the admin dashboard summary. On any query failure the
// whole structure collapses to its zero value; there are no partial results.
type DashboardStats struct {
	Listings ListingStats `json:"listings"`
	Events   EventStats   `json:"events"`
	Content  ContentStats `json:"content"`
	Board    BoardStats   `json:"board"`
}
