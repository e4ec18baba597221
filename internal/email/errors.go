package email

import "errors"

var (
	ErrEmptySender       = errors.New("sender is required")
	ErrMailNotConfigured = errors.New("mail integration is not configured")
)
