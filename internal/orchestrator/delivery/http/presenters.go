package http

import (
	"strings"

	"rag-assistant/internal/model"
	"rag-assistant/internal/orchestrator"
)

// --- Request DTOs ---

type promptReq struct {
	Message string `json:"message"`
}

func (r promptReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return orchestrator.ErrEmptyMessage
	}
	return nil
}

// --- Response DTOs ---

type routingResp struct {
	Operation        string            `json:"operation"`
	PrimarySource    string            `json:"primary_source"`
	SecondarySources []string          `json:"secondary_sources"`
	Arguments        map[string]string `json:"arguments"`
	Reasoning        string            `json:"reasoning"`
	SearchStrategy   string            `json:"search_strategy"`
	Confidence       float64           `json:"confidence"`
}

type sourceResp struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	Metadata   map[string]any `json:"metadata"`
	Score      float64        `json:"score"`
}

type promptResp struct {
	Answer  string       `json:"answer"`
	Routing routingResp  `json:"routing"`
	Sources []sourceResp `json:"sources"`
}

func newRoutingResp(d model.RouteDecision) routingResp {
	secondary := d.SecondarySources
	if secondary == nil {
		secondary = []string{}
	}
	args := d.Arguments
	if args == nil {
		args = map[string]string{}
	}
	return routingResp{
		Operation:        string(d.Operation),
		PrimarySource:    d.PrimarySource,
		SecondarySources: secondary,
		Arguments:        args,
		Reasoning:        d.Reasoning,
		SearchStrategy:   d.SearchStrategy,
		Confidence:       d.Confidence,
	}
}

func (h *handler) newPromptResp(res model.OperationResult) promptResp {
	sources := make([]sourceResp, len(res.Sources))
	for i, hit := range res.Sources {
		sources[i] = sourceResp{
			Collection: hit.CollectionKey,
			ID:         hit.DocumentID,
			Text:       hit.Text,
			Metadata:   hit.Metadata,
			Score:      hit.Score,
		}
	}
	return promptResp{
		Answer:  res.Answer,
		Routing: newRoutingResp(res.Routing),
		Sources: sources,
	}
}
