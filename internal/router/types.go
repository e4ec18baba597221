package router

import (
	"context"

	"rag-assistant/internal/model"
	"rag-assistant/pkg/llmprovider"
)

// Router classifies a message into a routing decision. It never fails:
// unusable backend output yields FallbackDecision.
type Router interface {
	Classify(ctx context.Context, message string) model.RouteDecision
}

// Backend is the provider chain the router asks. A response rejected by
// the validator must send the request to the next provider.
type Backend interface {
	GenerateValidated(ctx context.Context, req *llmprovider.Request, validate llmprovider.Validator) (*llmprovider.Response, error)
}

// FallbackDecision is returned when every backend failed or produced
// unparsable output.
func FallbackDecision() model.RouteDecision {
	return model.RouteDecision{
		Operation:        model.OperationQA,
		PrimarySource:    model.SourceAll,
		SecondarySources: []string{},
		Arguments:        map[string]string{},
		Reasoning:        ReasonParseError,
		Confidence:       FallbackConfidence,
	}
}
