package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadstore/internal/usecase"
)

func newImportRouter(repo *MockLeadRepository) *chi.Mux {
	h := NewImportHandler(usecase.NewImportLeadsUseCase(repo, nil))

	r := chi.NewRouter()
	r.Post("/leads/insert-from-csv", h.Handle)
	return r
}

func TestImportInvalidJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := newImportRouter(mockRepo)

	req := httptest.NewRequest(http.MethodPost, "/leads/insert-from-csv", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportReturnsBatchSummary(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("CreateMany", mock.Anything, mock.Anything).Return(nil)

	router := newImportRouter(mockRepo)

	payload, _ := json.Marshal(usecase.ImportLeadsInput{
		CSVData: "firstName,lastName,email\nJane,Doe,jane@x.com\n,Smith,bad@x.com\n",
	})
	req := httptest.NewRequest(http.MethodPost, "/leads/insert-from-csv", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ImportLeadsOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.Equal(t, 1, output.SuccessCount)
	assert.Equal(t, 1, output.ErrorCount)
}

func TestImportStoreFailureIs500(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	router := newImportRouter(mockRepo)

	payload, _ := json.Marshal(usecase.ImportLeadsInput{
		CSVData: "firstName,lastName,email\nJane,Doe,jane@x.com\n",
	})
	req := httptest.NewRequest(http.MethodPost, "/leads/insert-from-csv", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The caller gets a generic message, not the driver error.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
