// filepath: internal/api/handlers/team_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/revalidate"
)

// GetTeamMembers lists members, optionally filtered by category
// (team, leadership or board). The unfiltered listing backs the about page
// and is served through the view cache; team mutations invalidate it.
func (h *Handlers) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" {
		respondWithJSON(w, http.StatusOK, h.Team.GetTeamMembers(category))
		return
	}

	if h.serveCachedView(w, revalidate.ViewAbout) {
		return
	}
	h.respondWithView(w, revalidate.ViewAbout, h.Team.GetTeamMembers(""))
}

// GetTeamMember returns one member by ID.
func (h *Handlers) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	member := h.Team.GetTeamMemberByID(mux.Vars(r)["id"])
	if member == nil {
		respondWithError(w, http.StatusNotFound, "Team member not found")
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

// AddTeamMember inserts a new member.
func (h *Handlers) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var payload models.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Name == "" || payload.Role == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: name or role")
		return
	}

	id, err := h.Team.AddTeamMember(payload)
	if err != nil {
		logging.Log.Errorf("Failed to add team member: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add team member")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateTeamMember overwrites a member record. This is a full update, not a
// patch; omitted fields are cleared.
func (h *Handlers) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var payload models.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Team.UpdateTeamMember(mux.Vars(r)["id"], payload); err != nil {
		logging.Log.Errorf("Failed to update team member: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update team member")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Team member updated"})
}

// DeleteTeamMember removes a member permanently.
func (h *Handlers) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Team.DeleteTeamMember(mux.Vars(r)["id"]); err != nil {
		logging.Log.Errorf("Failed to delete team member: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Team member deleted"})
}

// PromoteTeamToBoard reassigns every plain team member to the board
// category in one statement.
func (h *Handlers) PromoteTeamToBoard(w http.ResponseWriter, r *http.Request) {
	moved, err := h.Team.PromoteTeamToBoard()
	if err != nil {
		logging.Log.Errorf("Failed to promote team members: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to promote team members")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"moved": moved})
}
