package ingest

import "errors"

var (
	ErrInvalidOptions = errors.New("invalid ingest options")
	ErrEmptyRequest   = errors.New("collection key and directory are required")
)
