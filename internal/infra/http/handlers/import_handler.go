package handlers

import (
	"encoding/json"
	"net/http"

	appmw "github.com/xavierca1/leadstore/internal/infra/http/middleware"
	"github.com/xavierca1/leadstore/internal/usecase"
)

type ImportHandler struct {
	UC *usecase.ImportLeadsUseCase
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{UC: uc}
}

// Handle runs POST /leads/insert-from-csv. Row-level problems are data in the
// 200 response; only a whole-batch store failure becomes a 500.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ImportLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.UC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	appmw.RecordImport(output.SuccessCount, output.ErrorCount)
	writeJSON(w, http.StatusOK, output)
}
