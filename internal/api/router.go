// filepath: internal/api/router.go
// Package api wires the HTTP surface: the public site API, the cookie-gated
// admin API and the blob file server.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"hcsl_site/internal/api/handlers"
	"hcsl_site/internal/services/auth"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, storageRoot string) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	addPublicRoutes(r, h)
	addAdminRoutes(r, h, am)

	// Stored blobs (public)
	r.PathPrefix("/blob/").Handler(
		http.StripPrefix("/blob/", http.FileServer(http.Dir(storageRoot))))

	return r
}

// addPublicRoutes configures the endpoints the website renders from.
func addPublicRoutes(r *mux.Router, h *handlers.Handlers) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/content", h.GetContent).Methods("GET")
	api.HandleFunc("/content-years", h.GetContentYears).Methods("GET")
	api.HandleFunc("/content/{slug}", h.GetContentBySlug).Methods("GET")

	api.HandleFunc("/jobs", h.GetJobs).Methods("GET")
	api.HandleFunc("/jobs/{id}", h.GetJob).Methods("GET")
	api.HandleFunc("/applications", h.SubmitApplication).Methods("POST")

	api.HandleFunc("/team", h.GetTeamMembers).Methods("GET")
	api.HandleFunc("/team/{id}", h.GetTeamMember).Methods("GET")

	api.HandleFunc("/events/{id}/register", h.RegisterForEvent).Methods("POST")

	api.HandleFunc("/auth/login", h.Login).Methods("POST")
	api.HandleFunc("/auth/logout", h.Logout).Methods("POST")
}

// addAdminRoutes configures the back-office endpoints behind the session
// cookie.
func addAdminRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(am.RequireSession)

	admin.HandleFunc("/content", h.CreateContent).Methods("POST")
	admin.HandleFunc("/content/{id}", h.UpdateContent).Methods("PATCH")
	admin.HandleFunc("/content/{id}", h.DeleteContent).Methods("DELETE")

	admin.HandleFunc("/jobs", h.CreateJob).Methods("POST")
	admin.HandleFunc("/jobs/{id}", h.UpdateJob).Methods("PATCH")
	admin.HandleFunc("/jobs/{id}/status", h.UpdateJobStatus).Methods("PATCH")
	admin.HandleFunc("/jobs/{id}", h.DeleteJob).Methods("DELETE")

	admin.HandleFunc("/applications", h.GetApplications).Methods("GET")
	admin.HandleFunc("/applications/{id}/status", h.UpdateApplicationStatus).Methods("PATCH")
	admin.HandleFunc("/applications/{id}", h.DeleteApplication).Methods("DELETE")

	admin.HandleFunc("/team", h.AddTeamMember).Methods("POST")
	admin.HandleFunc("/team/promote-board", h.PromoteTeamToBoard).Methods("POST")
	admin.HandleFunc("/team/{id}", h.UpdateTeamMember).Methods("PUT")
	admin.HandleFunc("/team/{id}", h.DeleteTeamMember).Methods("DELETE")

	admin.HandleFunc("/events/{id}/registrations", h.GetEventRegistrations).Methods("GET")

	admin.HandleFunc("/stats", h.GetDashboardStats).Methods("GET")
	admin.HandleFunc("/schema/repair", h.RepairSchema).Methods("POST")
	admin.HandleFunc("/upload", h.Upload).Methods("POST")
}
