package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadstore/internal/entity"
	appmw "github.com/xavierca1/leadstore/internal/infra/http/middleware"
	"github.com/xavierca1/leadstore/internal/usecase"
)

type LeadHandler struct {
	Repo     entity.LeadRepositoryInterface
	DeleteUC *usecase.DeleteLeadsUseCase
}

func NewLeadHandler(repo entity.LeadRepositoryInterface, deleteUC *usecase.DeleteLeadsUseCase) *LeadHandler {
	return &LeadHandler{
		Repo:     repo,
		DeleteUC: deleteUC,
	}
}

type CreateLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateLeadRequest is a partial update; absent fields stay untouched.
type UpdateLeadRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Gender      *string `json:"gender"`
	Message     *string `json:"message"`
	CountryCode *string `json:"countryCode"`
	JobTitle    *string `json:"jobTitle"`
	CompanyName *string `json:"companyName"`
}

// parseLeadID rejects anything that is not a base-10 integer.
func parseLeadID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Direct creation only requires a name and an email. The CSV ingestion
	// path is stricter about lastName; that check does not apply here.
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	lead := &entity.Lead{
		FirstName: strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
	}

	if err := h.Repo.Create(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) GetMany(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	lead, err := h.Repo.FindByID(r.Context(), id)
	if err == entity.ErrLeadNotFound {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := entity.LeadUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Gender:      req.Gender,
		Message:     req.Message,
		CountryCode: req.CountryCode,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
	}

	lead, err := h.Repo.Update(r.Context(), id, update)
	if err == entity.ErrLeadNotFound {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	err := h.Repo.Delete(r.Context(), id)
	if err == entity.ErrLeadNotFound {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}

// DeleteMany handles DELETE /leads?ids=1&ids=2. Deletion is best effort: any
// individual failure turns the whole response into a 500, but the ids that
// were already deleted stay deleted.
func (h *LeadHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	rawIDs := r.URL.Query()["ids"]

	_, err := h.DeleteUC.Execute(r.Context(), rawIDs)
	if err != nil {
		appmw.RecordBulkDelete("failure")
		writeUsecaseError(w, err)
		return
	}

	appmw.RecordBulkDelete("success")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Leads deleted successfully"})
}
