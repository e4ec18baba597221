package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router configuration
const (
	RouterTemperature = 0.1
	RouterMaxTokens   = 256

	// DefaultConfidence applies when the backend omits confidence.
	DefaultConfidence = 0.9
)

// Fallback decision values used when no backend produced a usable decision.
const (
	FallbackConfidence = 0.1
	ReasonParseError   = "fallback: parse error"
)

// Fallback reasons reported to metrics
const (
	metricReasonBackend = "backend_error"
	metricReasonParse   = "parse_error"
)

// PromptRouting embeds the user message once, at the end.
const PromptRouting = `
You are a routing controller for a personal AI knowledge assistant.

Analyze the user's message and decide:
1. What OPERATION to perform:
   - "qa"          -> answer a specific question using notes/documents
   - "summarize"   -> summarize a set of notes or documents
   - "email_latest"-> fetch/summarize the most recent email from a given sender
   - "free_chat"   -> general conversation without searching

2. Which DATA SOURCES to search:
   - "notes"       -> personal notes, learning materials, book takeaways
   - "emails"      -> email messages, links, conversations
   - "documents"   -> PDFs, long-form content
   - "all"         -> search all sources

SPECIAL RULE FOR NOTES-ONLY QUERIES: If the query mentions "my notes", "i wrote", "in my notes", or refers to specific personal content (e.g., "that i wrote in my linux notes"), set primary_source to "notes" and secondary_sources to an empty list []. Do not add any secondary sources or "all" in these cases. Stick strictly to personal notes for exact recall.

3. Any ARGUMENTS needed:
   - e.g. for "email_latest", extract a "sender" field

Return STRICT JSON with this schema:
{
  "operation": "qa | summarize | email_latest | free_chat",
  "primary_source": "notes | emails | documents | all",
  "secondary_sources": ["notes", "emails", "documents"],
  "arguments": {"sender": "Linus Torvalds"},
  "reasoning": "short explanation of your decision",
  "search_strategy": "how to search the chosen sources",
  "confidence": 0.0 to 1.0
}

User message:
"""%s"""
`
