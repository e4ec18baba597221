package retrieval

import (
	"strings"

	"rag-assistant/internal/model"
)

// Resolve maps a decision's abstract sources to collection keys: primary first,
// then each secondary in order, without duplicates. Unknown tokens add nothing;
// an empty result becomes [KeyCS].
func Resolve(d model.RouteDecision) []string {
	keys := make([]string, 0, 2)
	add := func(k string) {
		for _, existing := range keys {
			if existing == k {
				return
			}
		}
		keys = append(keys, k)
	}

	tokens := append([]string{d.PrimarySource}, d.SecondarySources...)
	for _, tok := range tokens {
		for _, k := range keysFor(tok) {
			add(k)
		}
	}

	if len(keys) == 0 {
		return []string{KeyCS}
	}
	return keys
}

func keysFor(source string) []string {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case model.SourceNotes, KeyCS:
		return []string{KeyCS}
	case model.SourceDocuments, KeyGeneral:
		return []string{KeyGeneral}
	case model.SourceAll:
		return []string{KeyCS, KeyGeneral}
	default:
		return nil
	}
}
