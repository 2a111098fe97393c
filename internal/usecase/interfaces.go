package usecase

import (
	"context"

	"github.com/xavierca1/leadstore/internal/infra/integration/genderize"
	"github.com/xavierca1/leadstore/internal/infra/mail"
	"github.com/xavierca1/leadstore/internal/infra/queue"
)

// GenderClassifier is the external name-to-gender service.
type GenderClassifier interface {
	Classify(ctx context.Context, name string) (*genderize.Guess, error)
}

// EnrichmentQueue publishes imported leads for asynchronous gender enrichment.
type EnrichmentQueue interface {
	PublishEnrichment(ctx context.Context, payload queue.EnrichmentPayload) error
}

// OutreachSender delivers a lead's stored outreach message.
type OutreachSender interface {
	SendOutreach(to string, data mail.OutreachEmailData) error
}
