// filepath: internal/api/handlers/content_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/revalidate"
)

const defaultContentLimit = 50

func isContentType(t string) bool {
	switch t {
	case models.ContentTypeProject, models.ContentTypeStory, models.ContentTypeEvent:
		return true
	}
	return false
}

// contentListView maps the canonical first-page listing of a type to its
// cached view. Filtered or paged variants are not cached.
func contentListView(itemType string, limit, page int, filterYear string) string {
	if filterYear != "" || page != 1 || limit != defaultContentLimit {
		return ""
	}
	switch itemType {
	case models.ContentTypeProject:
		return revalidate.ViewProjects
	case models.ContentTypeStory:
		return revalidate.ViewSuccessStories
	}
	return ""
}

// GetContent lists content items of one type, paged and optionally filtered
// by publication year. The canonical project and story listings are served
// through the view cache; content mutations invalidate them.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	itemType := r.URL.Query().Get("type")
	if !isContentType(itemType) {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing content type")
		return
	}

	limit := defaultContentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid page")
			return
		}
		page = n
	}

	filterYear := r.URL.Query().Get("year")
	view := contentListView(itemType, limit, page, filterYear)
	if view != "" && h.serveCachedView(w, view) {
		return
	}

	items := h.Content.GetItems(itemType, limit, page, filterYear)
	if view != "" {
		h.respondWithView(w, view, items)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// GetContentBySlug returns one published item by slug and type.
func (h *Handlers) GetContentBySlug(w http.ResponseWriter, r *http.Request) {
	itemType := r.URL.Query().Get("type")
	if !isContentType(itemType) {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing content type")
		return
	}

	slug := mux.Vars(r)["slug"]
	item := h.Content.GetItemBySlug(slug, itemType)
	if item == nil {
		respondWithError(w, http.StatusNotFound, "Content not found")
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// GetContentYears returns the distinct publication years for a type.
func (h *Handlers) GetContentYears(w http.ResponseWriter, r *http.Request) {
	itemType := r.URL.Query().Get("type")
	if !isContentType(itemType) {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing content type")
		return
	}
	respondWithJSON(w, http.StatusOK, h.Content.GetYears(itemType))
}

// CreateContent inserts a new content item.
func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
	var payload models.ContentItemCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if !isContentType(payload.Type) {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing content type")
		return
	}
	if payload.Title == "" || payload.Slug == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required field: title or slug")
		return
	}

	result := h.Content.CreateItem(payload)
	if !result.Success {
		respondWithJSON(w, http.StatusConflict, result)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

// UpdateContent applies a partial update to an item.
func (h *Handlers) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var payload models.ContentItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result := h.Content.UpdateItem(mux.Vars(r)["id"], payload)
	if !result.Success {
		respondWithJSON(w, http.StatusInternalServerError, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// DeleteContent removes an item permanently.
func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
	result := h.Content.DeleteItem(mux.Vars(r)["id"])
	if !result.Success {
		respondWithJSON(w, http.StatusInternalServerError, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
