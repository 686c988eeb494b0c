// Package handlers exposes the domain store over a JSON HTTP API.
package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

// writeStoreError maps the store's error taxonomy onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case store.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case store.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("store operation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
