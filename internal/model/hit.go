package model

import "fmt"

// RetrievalHit is one scored passage from a collection. Score is a distance:
// lower is better.
type RetrievalHit struct {
	CollectionKey string         `json:"collection_key"`
	DocumentID    string         `json:"document_id"`
	Text          string         `json:"text"`
	Metadata      map[string]any `json:"metadata"`
	Score         float64        `json:"score"`
}

// Source returns the "source" metadata value or "unknown".
func (h RetrievalHit) Source() string {
	if v := h.metaString("source"); v != "" {
		return v
	}
	return "unknown"
}

// File returns the first non-empty file reference found in metadata.
func (h RetrievalHit) File() string {
	for _, key := range []string{"file", "filename", "path", "filepath"} {
		if v := h.metaString(key); v != "" {
			return v
		}
	}
	return "unknown"
}

// ChunkIndex renders the chunk_index metadata, or fallback when absent.
func (h RetrievalHit) ChunkIndex(fallback int) string {
	v, ok := h.Metadata["chunk_index"]
	if !ok || v == nil {
		return fmt.Sprint(fallback)
	}
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprint(int64(n))
		}
	}
	return fmt.Sprint(v)
}

func (h RetrievalHit) metaString(key string) string {
	v, ok := h.Metadata[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	return s
}
