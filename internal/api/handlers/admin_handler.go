// filepath: internal/api/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"hcsl_site/internal/logging"
)

// GetDashboardStats returns the aggregate counters for the admin dashboard.
func (h *Handlers) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Stats.GetDashboardStats())
}

// RepairSchema runs the corrective migrations on demand. Safe to call on a
// healthy database.
func (h *Handlers) RepairSchema(w http.ResponseWriter, r *http.Request) {
	result := h.Schema.RepairSchema()
	if !result.Success {
		respondWithJSON(w, http.StatusInternalServerError, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Upload stores a blob from the request body and returns its public URL.
// The filename comes from the query string, matching how the admin UI
// streams files.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required query parameter: filename")
		return
	}

	url, err := h.Uploads.Put(filename, r.Body)
	if err != nil {
		logging.Log.Errorf("Failed to store upload '%s': %v", filename, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"url": url})
}
