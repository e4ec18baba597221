package qdrant

import (
	"errors"
	"fmt"
	"strings"
)

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (e.g., 1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot", "Manhattan"
}

// Distance metrics.
const (
	DistanceCosine    = "Cosine"
	DistanceEuclid    = "Euclid"
	DistanceDot       = "Dot"
	DistanceManhattan = "Manhattan"
)

// ErrUnknownDistance is returned for a metric name Qdrant does not support.
var ErrUnknownDistance = errors.New("qdrant: unknown distance metric")

// ParseDistance matches name case-insensitively and returns the canonical metric name.
func ParseDistance(name string) (string, error) {
	for _, d := range []string{DistanceCosine, DistanceEuclid, DistanceDot, DistanceManhattan} {
		if strings.EqualFold(strings.TrimSpace(name), d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistance, name)
}

// IsSimilarity reports whether higher scores mean closer vectors for the metric.
func IsSimilarity(distance string) bool {
	return distance == DistanceCosine || distance == DistanceDot
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be a UUID or uint64, not an arbitrary string.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`
	Limit       int                    `json:"limit"`
	WithPayload bool                   `json:"with_payload"`
	Filter      map[string]interface{} `json:"filter,omitempty"`
}

// SearchResponse contains search results, best match first.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// ScrollRequest pages through every point of a collection.
type ScrollRequest struct {
	Limit       int         `json:"limit"`
	Offset      interface{} `json:"offset,omitempty"`
	WithPayload bool        `json:"with_payload"`
	WithVector  bool        `json:"with_vector"`
}

// ScrollResponse is one page of points.
type ScrollResponse struct {
	Result struct {
		Points         []RecordPoint `json:"points"`
		NextPageOffset interface{}   `json:"next_page_offset"`
	} `json:"result"`
}

// RecordPoint is a stored point without a score.
type RecordPoint struct {
	ID      interface{}            `json:"id"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
