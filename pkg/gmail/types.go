package gmail

import "time"

// Provider names reported on messages.
const (
	ProviderGmail   = "gmail"
	ProviderOutlook = "outlook"
	ProviderYahoo   = "yahoo"
	ProviderIMAP    = "imap"
)

const (
	// DefaultUserID addresses the authenticated account.
	DefaultUserID = "me"
	inboxLabel    = "INBOX"
)

// Message is a normalised Gmail message.
type Message struct {
	ID       string
	From     string
	To       string
	Subject  string
	Body     string
	Date     time.Time
	Provider string
}
