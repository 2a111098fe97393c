package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	appmw "github.com/xavierca1/leadstore/internal/infra/http/middleware"
	"github.com/xavierca1/leadstore/internal/usecase"
)

type EnrichmentHandler struct {
	UC *usecase.GuessGenderUseCase
}

func NewEnrichmentHandler(uc *usecase.GuessGenderUseCase) *EnrichmentHandler {
	return &EnrichmentHandler{UC: uc}
}

type GuessGenderRequest struct {
	Name string `json:"name"`
}

// Handle runs POST /leads/{id}/guess-gender. An empty or absent name falls
// back to the stored firstName.
func (h *EnrichmentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req GuessGenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.UC.Execute(r.Context(), id, req.Name)
	if err != nil {
		if kind, _ := usecase.KindOf(err); kind == usecase.KindEnrichmentFailure {
			appmw.RecordEnrichment("failure")
			appmw.RecordIntegrationError("genderize")
		}
		writeUsecaseError(w, err)
		return
	}

	appmw.RecordEnrichment("success")
	writeJSON(w, http.StatusOK, lead)
}
