package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadstore/internal/entity"
	"github.com/xavierca1/leadstore/internal/infra/integration/genderize"
	"github.com/xavierca1/leadstore/internal/infra/mail"
	"github.com/xavierca1/leadstore/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) CreateMany(ctx context.Context, leads []*entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int64, update entity.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEnrichmentQueue
type MockEnrichmentQueue struct {
	mock.Mock
}

func (m *MockEnrichmentQueue) PublishEnrichment(ctx context.Context, payload queue.EnrichmentPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockGenderClassifier
type MockGenderClassifier struct {
	mock.Mock
}

func (m *MockGenderClassifier) Classify(ctx context.Context, name string) (*genderize.Guess, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genderize.Guess), args.Error(1)
}

// MockOutreachSender
type MockOutreachSender struct {
	mock.Mock
}

func (m *MockOutreachSender) SendOutreach(to string, data mail.OutreachEmailData) error {
	args := m.Called(to, data)
	return args.Error(0)
}
