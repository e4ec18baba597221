package gmail

import (
	"context"
	"fmt"

	"rag-assistant/internal/email/repository"
	"rag-assistant/internal/model"
	"rag-assistant/pkg/log"
	pkgGmail "rag-assistant/pkg/gmail"
)

// Mailbox is the subset of the Gmail client the repository needs.
type Mailbox interface {
	ListRecent(ctx context.Context, limit int) ([]pkgGmail.Message, error)
	ListFrom(ctx context.Context, sender string, limit int) ([]pkgGmail.Message, error)
	LatestFrom(ctx context.Context, sender string) (*pkgGmail.Message, error)
}

type implRepository struct {
	client Mailbox
	l      log.Logger
}

var _ repository.MailRepository = (*implRepository)(nil)

// New creates a Gmail-backed mail repository.
func New(client Mailbox, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListRecent(ctx context.Context, limit int) ([]model.Email, error) {
	msgs, err := r.client.ListRecent(ctx, limit)
	if err != nil {
		r.l.Errorf(ctx, "gmail repository: list recent: %v", err)
		return nil, fmt.Errorf("list recent: %w", err)
	}
	return toEmails(msgs), nil
}

func (r *implRepository) ListFrom(ctx context.Context, sender string, limit int) ([]model.Email, error) {
	msgs, err := r.client.ListFrom(ctx, sender, limit)
	if err != nil {
		r.l.Errorf(ctx, "gmail repository: list from %q: %v", sender, err)
		return nil, fmt.Errorf("list from sender: %w", err)
	}
	return toEmails(msgs), nil
}

func (r *implRepository) LatestFrom(ctx context.Context, sender string) (*model.Email, error) {
	msg, err := r.client.LatestFrom(ctx, sender)
	if err != nil {
		r.l.Errorf(ctx, "gmail repository: latest from %q: %v", sender, err)
		return nil, fmt.Errorf("latest from sender: %w", err)
	}
	if msg == nil {
		return nil, nil
	}
	e := toEmail(*msg)
	return &e, nil
}

func toEmails(msgs []pkgGmail.Message) []model.Email {
	out := make([]model.Email, len(msgs))
	for i, m := range msgs {
		out[i] = toEmail(m)
	}
	return out
}

func toEmail(m pkgGmail.Message) model.Email {
	return model.Email{
		ID:       m.ID,
		Sender:   m.From,
		To:       m.To,
		Subject:  m.Subject,
		Body:     m.Body,
		Date:     m.Date,
		Provider: m.Provider,
	}
}
