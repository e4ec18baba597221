package model

import "time"

// Email is a normalised mail message.
type Email struct {
	ID       string
	Sender   string
	To       string
	Subject  string
	Body     string
	Date     time.Time
	Provider string
}
