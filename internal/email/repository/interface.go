package repository

import (
	"context"

	"rag-assistant/internal/model"
)

// MailRepository reads a mailbox.
type MailRepository interface {
	ListRecent(ctx context.Context, limit int) ([]model.Email, error)
	ListFrom(ctx context.Context, sender string, limit int) ([]model.Email, error)
	// LatestFrom returns nil when sender has no messages.
	LatestFrom(ctx context.Context, sender string) (*model.Email, error)
}
