// filepath: internal/revalidate/revalidate.go
// Package revalidate tracks cached view payloads keyed by logical page path.
// Mutations invalidate exactly the views they affect, synchronously, so the
// next read of an affected page refetches from storage.
package revalidate

import (
	"time"

	"hcsl_site/internal/logging"

	"github.com/patrickmn/go-cache"
)

// Logical view paths. These mirror the public site and admin dashboard pages
// that render from the database.
const (
	ViewProjects        = "/projects"
	ViewSuccessStories  = "/success-stories"
	ViewCareers         = "/careers"
	ViewAbout           = "/about"
	ViewAdminProjects   = "/admin/dashboard/projects"
	ViewAdminStories    = "/admin/dashboard/stories"
	ViewAdminEvents     = "/admin/dashboard/events"
	ViewAdminCareers    = "/admin/dashboard/careers"
	ViewAdminTeam       = "/admin/dashboard/team"
	ViewAdminLeadership = "/admin/dashboard/leadership"
)

// Cache holds rendered view payloads until a mutation invalidates them.
type Cache struct {
	views *cache.Cache
}

// New creates a view cache. Entries expire on their own after ttl as a
// backstop; invalidation is the primary mechanism.
func New(ttl time.Duration) *Cache {
	return &Cache{
		views: cache.New(ttl, 2*ttl),
	}
}

// Get returns the cached payload for a view, if present.
func (c *Cache) Get(view string) ([]byte, bool) {
	v, found := c.views.Get(view)
	if !found {
		return nil, false
	}
	payload, ok := v.([]byte)
	if !ok {
		return nil, false
	}
	return payload, true
}

// Set stores a payload for a view.
func (c *Cache) Set(view string, payload []byte) {
	c.views.SetDefault(view, payload)
}

// Path drops the cached payloads for the given views. Called inside every
// successful mutation, before the result is returned to the caller.
func (c *Cache) Path(views ...string) {
	for _, view := range views {
		c.views.Delete(view)
		logging.Log.Debugf("Revalidated view: %s", view)
	}
}
