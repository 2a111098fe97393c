package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/leadstore/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeUsecaseError maps the closed error kinds to status codes. Downstream
// failures go to the log, not the caller.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		log.Printf("❌ [HTTP] unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusInternalServerError
	switch ucErr.Kind {
	case usecase.KindValidation:
		status = http.StatusBadRequest
	case usecase.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.Printf("❌ [HTTP] %s: %v", ucErr.Kind, ucErr.Err)
	}

	writeError(w, status, ucErr.Message)
}
