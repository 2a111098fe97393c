package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/leadstore/internal/entity"
)

// classifyTimeout bounds each outbound classifier call so a slow service
// fails the request instead of hanging it.
const classifyTimeout = 5 * time.Second

type GuessGenderUseCase struct {
	Repo       entity.LeadRepositoryInterface
	Classifier GenderClassifier
}

func NewGuessGenderUseCase(repo entity.LeadRepositoryInterface, classifier GenderClassifier) *GuessGenderUseCase {
	return &GuessGenderUseCase{Repo: repo, Classifier: classifier}
}

// Execute looks the lead up first: a missing id is NOT_FOUND and no outbound
// call is made. On success the returned gender overwrites the stored one.
func (uc *GuessGenderUseCase) Execute(ctx context.Context, id int64, name string) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, NewError(KindNotFound, "lead not found", err)
	}
	if err != nil {
		return nil, NewError(KindEnrichmentFailure, "could not load lead", err)
	}

	if name == "" {
		name = lead.FirstName
	}

	cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	guess, err := uc.Classifier.Classify(cctx, name)
	if err != nil {
		return nil, NewError(KindEnrichmentFailure, "gender classification failed", err)
	}

	gender := guess.Gender
	if gender == "" {
		gender = "unknown"
	}

	updated, err := uc.Repo.Update(ctx, id, entity.LeadUpdate{Gender: &gender})
	if err != nil {
		return nil, NewError(KindEnrichmentFailure, "could not store guessed gender", err)
	}

	return updated, nil
}
