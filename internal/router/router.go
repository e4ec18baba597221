package router

import (
	"context"
	"errors"
	"fmt"

	"rag-assistant/internal/model"
	"rag-assistant/pkg/llmprovider"
	"rag-assistant/pkg/metrics"
)

// Classify asks the provider chain for a routing decision. A provider whose
// output holds no usable JSON object is skipped like one that errored.
func (r *SemanticRouter) Classify(ctx context.Context, message string) model.RouteDecision {
	req := &llmprovider.Request{
		Prompt:      fmt.Sprintf(PromptRouting, message),
		Temperature: RouterTemperature,
		MaxTokens:   RouterMaxTokens,
	}

	var decision model.RouteDecision
	resp, err := r.llm.GenerateValidated(ctx, req, func(resp *llmprovider.Response) error {
		d, err := parseDecision(resp.Text)
		if err != nil {
			r.l.Warnf(ctx, "%s: %s returned unparsable routing output: %v", LogPrefixClassify, resp.ProviderName, err)
			return err
		}
		decision = d
		return nil
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: falling back to default decision: %v", LogPrefixClassify, err)
		metrics.IncRouterFallback(fallbackReason(err))
		return FallbackDecision()
	}

	r.l.Infof(ctx, "%s: %s routed to operation=%s primary=%s confidence=%.2f",
		LogPrefixClassify, resp.ProviderName, decision.Operation, decision.PrimarySource, decision.Confidence)
	return decision
}

func fallbackReason(err error) string {
	if errors.Is(err, errNoJSONObject) || errors.Is(err, errInvalidJSON) {
		return metricReasonParse
	}
	return metricReasonBackend
}
