// filepath: internal/api/handlers/careers_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/revalidate"
)

// GetJobs lists job listings. The public board passes open=true and only
// sees open positions; that listing is served through the view cache and
// invalidated by job mutations. The admin view omits the flag and always
// hits storage.
func (h *Handlers) GetJobs(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("open") == "true"
	if !openOnly {
		respondWithJSON(w, http.StatusOK, h.Careers.GetJobListings(false))
		return
	}

	if h.serveCachedView(w, revalidate.ViewCareers) {
		return
	}
	h.respondWithView(w, revalidate.ViewCareers, h.Careers.GetJobListings(true))
}

// GetJob returns one listing by ID, including soft-deleted ones so admin
// screens can still resolve applications against them.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	job := h.Careers.GetJobByID(mux.Vars(r)["id"])
	if job == nil {
		respondWithError(w, http.StatusNotFound, "Job listing not found")
		return
	}
	respondWithJSON(w, http.StatusOK, job)
}

// CreateJob inserts a new listing.
func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var payload models.JobCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: title")
		return
	}

	id, err := h.Careers.CreateJob(payload)
	if err != nil {
		logging.Log.Errorf("Failed to create job listing: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create job listing")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateJob applies a partial update to a listing.
func (h *Handlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var payload models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Careers.UpdateJob(mux.Vars(r)["id"], payload); err != nil {
		logging.Log.Errorf("Failed to update job listing: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update job listing")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Job listing updated"})
}

// UpdateJobStatus flips a listing between open and closed.
func (h *Handlers) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Status != models.JobStatusOpen && payload.Status != models.JobStatusClosed {
		respondWithError(w, http.StatusBadRequest, "Status must be 'open' or 'closed'")
		return
	}

	if err := h.Careers.UpdateJobStatus(mux.Vars(r)["id"], payload.Status); err != nil {
		logging.Log.Errorf("Failed to update job status: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update job status")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Job status updated"})
}

// DeleteJob soft-deletes a listing. Its applications remain.
func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.Careers.DeleteJob(mux.Vars(r)["id"]); err != nil {
		logging.Log.Errorf("Failed to delete job listing: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete job listing")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Job listing deleted"})
}

// SubmitApplication receives a public job application. The reserved job ID
// "general-application" routes into the talent pipeline.
func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var payload models.ApplicationSubmit
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.JobID == "" || payload.ApplicantName == "" || payload.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: job_id, applicant_name or email")
		return
	}

	id, err := h.Careers.SubmitApplication(payload)
	if err != nil {
		logging.Log.Errorf("Failed to submit application: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetApplications lists applications, optionally scoped to one listing.
func (h *Handlers) GetApplications(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Careers.GetApplications(r.URL.Query().Get("job_id")))
}

// UpdateApplicationStatus moves an application through the review pipeline.
func (h *Handlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Status == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: status")
		return
	}

	if err := h.Careers.UpdateApplicationStatus(mux.Vars(r)["id"], payload.Status); err != nil {
		logging.Log.Errorf("Failed to update application status: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update application status")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Application status updated"})
}

// DeleteApplication removes an application permanently.
func (h *Handlers) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := h.Careers.DeleteApplication(mux.Vars(r)["id"]); err != nil {
		logging.Log.Errorf("Failed to delete application: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Application deleted"})
}
