package orchestrator

import "rag-assistant/internal/model"

// LowConfidenceThreshold is the confidence below which the operation is ignored.
const LowConfidenceThreshold = 0.1

// SelectState picks the terminal state for a decision. The checks run in a
// fixed order and confidence wins over operation.
func SelectState(d model.RouteDecision) model.DispatchState {
	switch {
	case d.Confidence < LowConfidenceThreshold:
		return model.StateLowConfidenceFallback
	case d.Operation == model.OperationEmailLatest:
		return model.StateEmailLatest
	case d.Operation == model.OperationSummarize:
		return model.StateSummarize
	case d.Operation == model.OperationFreeChat:
		return model.StateFreeChat
	default:
		return model.StateRAGQA
	}
}
