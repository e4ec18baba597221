package model

import "strings"

// Operation is the kind of work a message asks for.
type Operation string

const (
	OperationQA          Operation = "qa"
	OperationSummarize   Operation = "summarize"
	OperationEmailLatest Operation = "email_latest"
	OperationFreeChat    Operation = "free_chat"
)

// ParseOperation normalises s. Anything unrecognised is OperationQA.
func ParseOperation(s string) Operation {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OperationQA, OperationSummarize, OperationEmailLatest, OperationFreeChat:
		return op
	default:
		return OperationQA
	}
}

// Abstract sources a routing decision may name.
const (
	SourceNotes     = "notes"
	SourceEmails    = "emails"
	SourceDocuments = "documents"
	SourceAll       = "all"
)

// RouteDecision is the structured classification of one message.
// Reasoning and SearchStrategy are diagnostic text and are never inspected.
type RouteDecision struct {
	Operation        Operation         `json:"operation"`
	PrimarySource    string            `json:"primary_source"`
	SecondarySources []string          `json:"secondary_sources"`
	Arguments        map[string]string `json:"arguments"`
	Reasoning        string            `json:"reasoning"`
	SearchStrategy   string            `json:"search_strategy"`
	Confidence       float64           `json:"confidence"`
}

// Argument returns the named argument or "" when absent.
func (d RouteDecision) Argument(key string) string {
	if d.Arguments == nil {
		return ""
	}
	return d.Arguments[key]
}
