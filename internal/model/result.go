package model

// DispatchState is the terminal state chosen for a request.
type DispatchState string

const (
	StateLowConfidenceFallback DispatchState = "LOW_CONFIDENCE_FALLBACK"
	StateEmailLatest           DispatchState = "EMAIL_LATEST"
	StateSummarize             DispatchState = "SUMMARIZE"
	StateFreeChat              DispatchState = "FREE_CHAT"
	StateRAGQA                 DispatchState = "RAG_QA"
)

// OperationResult is returned on every dispatch path. Sources is never nil.
type OperationResult struct {
	Answer  string         `json:"answer"`
	Sources []RetrievalHit `json:"sources"`
	Routing RouteDecision  `json:"routing"`
	State   DispatchState  `json:"-"`
}
