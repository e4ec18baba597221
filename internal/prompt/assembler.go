package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"rag-assistant/internal/model"
)

// Assemble renders question and hits into a QA prompt. Hits are taken in
// order until the next snippet would push the rendered total past
// maxContextChars; a snippet is never cut short. Length is counted in
// characters, not bytes. maxContextChars <= 0 selects DefaultMaxContextChars.
func Assemble(question string, hits []model.RetrievalHit, maxContextChars int) string {
	if len(hits) == 0 {
		return fmt.Sprintf(noContextTemplate, question)
	}
	if maxContextChars <= 0 {
		maxContextChars = DefaultMaxContextChars
	}

	parts := make([]string, 0, len(hits))
	total := 0
	for idx, hit := range hits {
		snippet := Snippet(idx, hit)
		n := utf8.RuneCountInString(snippet)
		if total+n > maxContextChars {
			break
		}
		parts = append(parts, snippet)
		total += n
	}

	return fmt.Sprintf(qaTemplate, strings.Join(parts, snippetSeparator), question)
}

// Snippet renders one hit with its citation header.
func Snippet(idx int, hit model.RetrievalHit) string {
	return fmt.Sprintf("[%d] (source=%s, file=%s, chunk=%s)\n%s\n",
		idx, hit.Source(), hit.File(), hit.ChunkIndex(idx), strings.TrimSpace(hit.Text))
}

// FreeChat wraps a raw message for general conversation without retrieval.
func FreeChat(message string) string {
	return fmt.Sprintf(freeChatTemplate, message)
}
