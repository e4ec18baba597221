package email

import (
	"context"

	"rag-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Latest describes the newest message from sender.
	Latest(ctx context.Context, sender string) (LatestOutput, error)
	// Recent lists the newest inbox messages.
	Recent(ctx context.Context, limit int) ([]model.Email, error)
}
