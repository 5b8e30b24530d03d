// filepath: internal/api/handlers/main.go
package handlers

import (
	"time"

	"hcsl_site/internal/config"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/services"
	"hcsl_site/internal/services/auth"
)

// Handlers holds the shared dependencies for all API handlers. Views is the
// same cache the services invalidate; the public list handlers serve from it
// and refill it after a storage fetch.
type Handlers struct {
	Content  services.ContentService
	Careers  services.CareersService
	Team     services.TeamService
	Events   services.EventService
	Stats    services.StatsService
	Schema   services.SchemaService
	Uploads  services.Uploader
	Sessions auth.SessionService
	Views    *revalidate.Cache

	Cfg       *config.Config
	StartTime time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	content services.ContentService,
	careers services.CareersService,
	team services.TeamService,
	events services.EventService,
	stats services.StatsService,
	schema services.SchemaService,
	uploads services.Uploader,
	sessions auth.SessionService,
	views *revalidate.Cache,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Content:   content,
		Careers:   careers,
		Team:      team,
		Events:    events,
		Stats:     stats,
		Schema:    schema,
		Uploads:   uploads,
		Sessions:  sessions,
		Views:     views,
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}
