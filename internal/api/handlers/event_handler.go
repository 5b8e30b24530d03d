// filepath: internal/api/handlers/event_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hcsl_site/internal/logging"
)

// RegisterForEvent accepts a public event registration. The response is
// always 200 with a result body; failure is expressed in the payload, not
// the status code, so the form can show the message as-is.
func (h *Handlers) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FirstName == "" || payload.LastName == "" || payload.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: first_name, last_name or email")
		return
	}

	result := h.Events.RegisterForEvent(mux.Vars(r)["id"], payload.FirstName, payload.LastName, payload.Email, payload.Phone)
	respondWithJSON(w, http.StatusOK, result)
}

// GetEventRegistrations lists the attendance records for one event.
func (h *Handlers) GetEventRegistrations(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Events.GetEventRegistrations(mux.Vars(r)["id"]))
}
