package retrieval

import "errors"

var (
	ErrUnknownCollection = errors.New("unknown collection key")
)
