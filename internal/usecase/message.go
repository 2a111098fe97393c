package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xavierca1/leadstore/internal/entity"
	"github.com/xavierca1/leadstore/internal/infra/mail"
)

type GenerateMessageUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewGenerateMessageUseCase(repo entity.LeadRepositoryInterface) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{Repo: repo}
}

// Execute builds the default outreach text from the stored lead and saves it
// to the message field, returning the updated lead.
func (uc *GenerateMessageUseCase) Execute(ctx context.Context, id int64) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, NewError(KindNotFound, "lead not found", err)
	}
	if err != nil {
		return nil, NewError(KindMessageFailure, "could not load lead", err)
	}

	message := defaultOutreachMessage(lead)

	updated, err := uc.Repo.Update(ctx, id, entity.LeadUpdate{Message: &message})
	if err != nil {
		return nil, NewError(KindMessageFailure, "could not store message", err)
	}

	return updated, nil
}

func defaultOutreachMessage(lead *entity.Lead) string {
	name := strings.TrimSpace(lead.FirstName + " " + lead.LastName)
	company := lead.CompanyName
	if company == "" {
		company = "your company"
	}
	return fmt.Sprintf(
		"Hello %s,\n\nWe would love to learn more about how you are doing at %s and if you would be interested in new job opportunities.",
		name, company,
	)
}

type SendMessageUseCase struct {
	Repo entity.LeadRepositoryInterface
	Mail OutreachSender
}

func NewSendMessageUseCase(repo entity.LeadRepositoryInterface, sender OutreachSender) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Mail: sender}
}

// Execute emails the lead's stored message to the lead's own address.
func (uc *SendMessageUseCase) Execute(ctx context.Context, id int64) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, NewError(KindNotFound, "lead not found", err)
	}
	if err != nil {
		return nil, NewError(KindMessageFailure, "could not load lead", err)
	}

	if lead.Message == "" {
		return nil, NewError(KindValidation, "lead has no message to send", nil)
	}

	data := mail.OutreachEmailData{
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		CompanyName: lead.CompanyName,
		Message:     lead.Message,
	}

	if err := uc.Mail.SendOutreach(lead.Email, data); err != nil {
		return nil, NewError(KindMessageFailure, "could not send message", err)
	}

	return lead, nil
}
