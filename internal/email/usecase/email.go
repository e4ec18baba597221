package usecase

import (
	"context"
	"fmt"
	"strings"

	"rag-assistant/internal/email"
	"rag-assistant/internal/model"
)

func (uc *implUseCase) Latest(ctx context.Context, sender string) (email.LatestOutput, error) {
	sender = strings.TrimSpace(sender)
	if sender == "" {
		return email.LatestOutput{}, email.ErrEmptySender
	}
	if uc.repo == nil {
		return email.LatestOutput{}, email.ErrMailNotConfigured
	}

	msg, err := uc.repo.LatestFrom(ctx, sender)
	if err != nil {
		return email.LatestOutput{}, err
	}
	if msg == nil {
		return email.LatestOutput{
			Answer:  fmt.Sprintf("I couldn't find any recent emails from '%s'.", sender),
			Sources: []email.Source{},
		}, nil
	}

	uc.l.Infof(ctx, "email.usecase.Latest: found %s from %q", msg.ID, sender)
	return email.LatestOutput{
		Answer:  fmt.Sprintf("Found an email from %s with subject '%s'.", msg.Sender, msg.Subject),
		Sources: []email.Source{toSource(*msg)},
	}, nil
}

func (uc *implUseCase) Recent(ctx context.Context, limit int) ([]model.Email, error) {
	if uc.repo == nil {
		return nil, email.ErrMailNotConfigured
	}
	switch {
	case limit <= 0:
		limit = email.DefaultRecentLimit
	case limit > email.MaxRecentLimit:
		limit = email.MaxRecentLimit
	}
	return uc.repo.ListRecent(ctx, limit)
}

func toSource(m model.Email) email.Source {
	return email.Source{
		Sender:      m.Sender,
		To:          m.To,
		Subject:     m.Subject,
		Date:        m.Date,
		BodyPreview: preview(m.Body, email.BodyPreviewChars),
		Provider:    m.Provider,
	}
}

// preview keeps the first n characters of s.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
