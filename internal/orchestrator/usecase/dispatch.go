package usecase

import (
	"context"
	"fmt"
	"time"

	"rag-assistant/internal/model"
	"rag-assistant/internal/orchestrator"
	"rag-assistant/internal/prompt"
	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/metrics"
)

// dispatch runs the handler for the decision's state. speculative is nil
// in sequential mode.
func (uc *implUseCase) dispatch(ctx context.Context, message string, d model.RouteDecision, speculative []model.RetrievalHit) (model.OperationResult, error) {
	state := orchestrator.SelectState(d)
	metrics.IncDispatch(string(state))
	uc.l.Infof(ctx, "%s: state=%s operation=%s confidence=%.2f", logPrefixHandle, state, d.Operation, d.Confidence)

	var (
		res model.OperationResult
		err error
	)
	switch state {
	case model.StateEmailLatest:
		res = uc.emailLatest(d)
	case model.StateSummarize:
		res, err = uc.summarize(ctx, d)
	case model.StateFreeChat, model.StateLowConfidenceFallback:
		res, err = uc.freeChat(ctx, message, d)
	default:
		res, err = uc.answerQuestion(ctx, message, d, speculative)
	}
	if err != nil {
		return model.OperationResult{}, err
	}

	if speculative != nil && state != model.StateRAGQA {
		metrics.IncSpeculative(speculativeDiscarded)
	}

	res.State = state
	return res, nil
}

func (uc *implUseCase) answerQuestion(ctx context.Context, message string, d model.RouteDecision, speculative []model.RetrievalHit) (model.OperationResult, error) {
	keys := retrieval.Resolve(d)

	var hits []model.RetrievalHit
	if len(keys) == 1 && keys[0] == uc.opts.DefaultCollection && len(speculative) > 0 {
		metrics.IncSpeculative(speculativeReused)
		// Trimmed to the depth a regular search of the same collection returns.
		hits = speculative
		if len(hits) > uc.opts.PerCollectionK {
			hits = hits[:uc.opts.PerCollectionK]
		}
	} else {
		if speculative != nil {
			if len(speculative) == 0 {
				metrics.IncSpeculative(speculativeEmpty)
			} else {
				metrics.IncSpeculative(speculativeDiscarded)
			}
		}
		hits = uc.retrieval.SearchSources(ctx, keys, message, uc.opts.PerCollectionK, uc.opts.TotalCap)
	}
	if len(hits) > uc.opts.TotalCap {
		hits = hits[:uc.opts.TotalCap]
	}
	uc.l.Debugf(ctx, "%s: keys=%v hits=%d", logPrefixQA, keys, len(hits))

	answer, err := uc.generate(ctx, prompt.Assemble(message, hits, uc.opts.MaxContextChars))
	if err != nil {
		return model.OperationResult{}, err
	}

	return model.OperationResult{
		Answer:  answer,
		Sources: hits,
		Routing: d,
	}, nil
}

func (uc *implUseCase) summarize(ctx context.Context, d model.RouteDecision) (model.OperationResult, error) {
	summary, err := uc.summarizer.Summarize(ctx, uc.opts.SummarizeCollection)
	if err != nil {
		uc.l.Errorf(ctx, "%s: summarize %s: %v", logPrefixHandle, uc.opts.SummarizeCollection, err)
		return model.OperationResult{}, fmt.Errorf("summarize: %w", err)
	}
	return model.OperationResult{
		Answer:  summary,
		Sources: []model.RetrievalHit{},
		Routing: d,
	}, nil
}

// emailLatest never talks to the mail service; that lives behind its own endpoint.
func (uc *implUseCase) emailLatest(d model.RouteDecision) model.OperationResult {
	sender := d.Argument("sender")
	if sender == "" {
		sender = unknownSender
	}
	return model.OperationResult{
		Answer:  fmt.Sprintf(emailStubMessage, sender),
		Sources: []model.RetrievalHit{},
		Routing: d,
	}
}

func (uc *implUseCase) freeChat(ctx context.Context, message string, d model.RouteDecision) (model.OperationResult, error) {
	answer, err := uc.generate(ctx, prompt.FreeChat(message))
	if err != nil {
		return model.OperationResult{}, err
	}
	return model.OperationResult{
		Answer:  answer,
		Sources: []model.RetrievalHit{},
		Routing: d,
	}, nil
}

func (uc *implUseCase) generate(ctx context.Context, p string) (string, error) {
	start := time.Now()
	answer, err := uc.gen.Generate(ctx, p, uc.opts.QAModel)
	metrics.ObserveGeneration(uc.opts.QAModel, start)
	if err != nil {
		uc.l.Errorf(ctx, "%s: generate with %s: %v", logPrefixHandle, uc.opts.QAModel, err)
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}
