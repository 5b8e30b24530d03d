// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse carries a single error message to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a single informational message to the client.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSONBytes(w http.ResponseWriter, code int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(payload)
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON encodes the payload and sends it.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	writeJSONBytes(w, code, response)
}

// serveCachedView writes the cached payload for a view if one is present.
// It reports whether the request was served from the cache.
func (h *Handlers) serveCachedView(w http.ResponseWriter, view string) bool {
	payload, ok := h.Views.Get(view)
	if !ok {
		return false
	}
	writeJSONBytes(w, http.StatusOK, payload)
	return true
}

// respondWithView sends the payload and stores its encoding in the view
// cache, so later requests for the same view skip storage until a mutation
// invalidates it.
func (h *Handlers) respondWithView(w http.ResponseWriter, view string, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	h.Views.Set(view, response)
	writeJSONBytes(w, http.StatusOK, response)
}
