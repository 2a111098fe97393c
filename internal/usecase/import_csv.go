package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/leadstore/internal/entity"
	"github.com/xavierca1/leadstore/internal/infra/queue"
)

type ImportLeadsInput struct {
	CSVData string `json:"csvData"`
}

type ImportLeadsOutput struct {
	SuccessCount int        `json:"successCount"`
	ErrorCount   int        `json:"errorCount"`
	Errors       []RowError `json:"errors,omitempty"`
}

type ImportLeadsUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue EnrichmentQueue // nil when the broker is not configured
}

func NewImportLeadsUseCase(repo entity.LeadRepositoryInterface, q EnrichmentQueue) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Repo: repo, Queue: q}
}

// Execute validates the raw CSV text and persists the valid rows in one batch.
// successCount + errorCount always equals the number of data rows; a store
// failure rejects the whole batch and surfaces as INGESTION_FAILURE.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, input ImportLeadsInput) (*ImportLeadsOutput, error) {
	batch := parseLeadsCSV(input.CSVData)

	if len(batch.valid) > 0 {
		if err := uc.Repo.CreateMany(ctx, batch.valid); err != nil {
			return nil, NewError(KindIngestionFailure, "failed to persist lead batch", err)
		}
	}

	uc.publishEnrichment(ctx, batch.valid)

	return &ImportLeadsOutput{
		SuccessCount: len(batch.valid),
		ErrorCount:   batch.totalRows - len(batch.valid),
		Errors:       batch.parseErrs,
	}, nil
}

// publishEnrichment is best effort: a broker hiccup must never fail an import
// that already persisted.
func (uc *ImportLeadsUseCase) publishEnrichment(ctx context.Context, leads []*entity.Lead) {
	if uc.Queue == nil {
		return
	}

	for _, lead := range leads {
		payload := queue.EnrichmentPayload{
			LeadID:    lead.ID,
			FirstName: lead.FirstName,
		}
		if err := uc.Queue.PublishEnrichment(ctx, payload); err != nil {
			log.Printf("⚠️ [IMPORT] could not publish enrichment for lead %d: %v", lead.ID, err)
		}
	}
}
