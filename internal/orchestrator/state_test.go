package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rag-assistant/internal/model"
)

func TestSelectState(t *testing.T) {
	tests := []struct {
		name string
		op   model.Operation
		conf float64
		want model.DispatchState
	}{
		{"low confidence beats email", model.OperationEmailLatest, 0.05, model.StateLowConfidenceFallback},
		{"low confidence beats summarize", model.OperationSummarize, 0, model.StateLowConfidenceFallback},
		{"low confidence beats qa", model.OperationQA, 0.099, model.StateLowConfidenceFallback},
		{"threshold itself is not low", model.OperationQA, 0.1, model.StateRAGQA},
		{"email", model.OperationEmailLatest, 0.9, model.StateEmailLatest},
		{"summarize", model.OperationSummarize, 0.9, model.StateSummarize},
		{"free chat", model.OperationFreeChat, 0.9, model.StateFreeChat},
		{"qa", model.OperationQA, 0.9, model.StateRAGQA},
		{"unrecognised operation", model.Operation("translate"), 0.9, model.StateRAGQA},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectState(model.RouteDecision{Operation: tc.op, Confidence: tc.conf})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSequential, ParseMode(" Sequential "))
	assert.Equal(t, ModeConcurrent, ParseMode("concurrent"))
	assert.Equal(t, ModeConcurrent, ParseMode(""))
}
