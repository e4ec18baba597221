package email

import "time"

const (
	BodyPreviewChars   = 500
	DefaultRecentLimit = 50
	MaxRecentLimit     = 100
)

// LatestOutput is the answer for a latest-email request. Sources holds at
// most one entry.
type LatestOutput struct {
	Answer  string
	Sources []Source
}

// Source describes a matched message.
type Source struct {
	Sender      string
	To          string
	Subject     string
	Date        time.Time
	BodyPreview string
	Provider    string
}
