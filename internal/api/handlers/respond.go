package handlers

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondIssues reports a 400 with per-field validation issues.
func respondIssues(w http.ResponseWriter, err error) {
	var issues interface{} = err.Error()
	if ve, ok := err.(validation.Errors); ok {
		issues = ve
	}
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Invalid Body",
		"issues":  issues,
	})
}
