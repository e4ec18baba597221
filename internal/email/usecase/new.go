package usecase

import (
	"rag-assistant/internal/email"
	"rag-assistant/internal/email/repository"
	"rag-assistant/pkg/log"
)

type implUseCase struct {
	repo repository.MailRepository
	l    log.Logger
}

var _ email.UseCase = (*implUseCase)(nil)

// New creates a new email UseCase. A nil repo makes every call fail with
// email.ErrMailNotConfigured.
func New(repo repository.MailRepository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}
