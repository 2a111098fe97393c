package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName,omitempty"`
	Email       string    `json:"email"`
	Gender      string    `json:"gender,omitempty"` // male, female, unknown
	Message     string    `json:"message,omitempty"`
	CountryCode string    `json:"countryCode,omitempty"`
	JobTitle    string    `json:"jobTitle,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LeadUpdate carries a partial update. Nil fields stay untouched.
type LeadUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Gender      *string
	Message     *string
	CountryCode *string
	JobTitle    *string
	CompanyName *string
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error

	// CreateMany persists the whole batch in a single statement and fills in
	// the store-assigned ids and timestamps on the given leads.
	CreateMany(ctx context.Context, leads []*Lead) error

	FindByID(ctx context.Context, id int64) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	Update(ctx context.Context, id int64, update LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, id int64) error
}
