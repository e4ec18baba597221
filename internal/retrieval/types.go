package retrieval

// Concrete collection keys.
const (
	KeyCS      = "cs"
	KeyGeneral = "general"
)

// Document is one chunk to be written into a collection.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// MergeStrategy defines how per-collection hit lists are combined.
type MergeStrategy string

const (
	// MergeConcatenate keeps each list's order and appends lists in resolution order.
	MergeConcatenate MergeStrategy = "concatenate"
	// MergeByScore stable-sorts the combined hits by ascending score. Scores from
	// different collections are not guaranteed to be comparable.
	MergeByScore MergeStrategy = "score"
)

