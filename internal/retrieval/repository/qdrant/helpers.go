package qdrant

import (
	"fmt"

	"github.com/google/uuid"

	"rag-assistant/internal/model"
	"rag-assistant/internal/retrieval"
)

const (
	payloadText       = "text"
	payloadDocumentID = "document_id"
	payloadMetadata   = "metadata"
)

// pointIDNamespace scopes the deterministic point ids.
var pointIDNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

// pointID derives a stable UUID from a document id. Qdrant only accepts
// UUIDs or unsigned integers as point ids.
func pointID(documentID string) string {
	return uuid.NewSHA1(pointIDNamespace, []byte(documentID)).String()
}

func toPayload(d retrieval.Document) map[string]interface{} {
	meta := make(map[string]interface{}, len(d.Metadata))
	for k, v := range d.Metadata {
		meta[k] = v
	}
	return map[string]interface{}{
		payloadText:       d.Text,
		payloadDocumentID: d.ID,
		payloadMetadata:   meta,
	}
}

func toHit(collectionKey string, id interface{}, payload map[string]interface{}) model.RetrievalHit {
	hit := model.RetrievalHit{
		CollectionKey: collectionKey,
		Metadata:      map[string]any{},
	}
	if s, ok := payload[payloadText].(string); ok {
		hit.Text = s
	}
	if s, ok := payload[payloadDocumentID].(string); ok && s != "" {
		hit.DocumentID = s
	} else if id != nil {
		hit.DocumentID = fmt.Sprint(id)
	}
	if m, ok := payload[payloadMetadata].(map[string]interface{}); ok {
		for k, v := range m {
			hit.Metadata[k] = v
		}
	}
	return hit
}
