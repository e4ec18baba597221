package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"rag-assistant/internal/model"
	"rag-assistant/internal/orchestrator"
)

// Handle classifies the message and dispatches it using the configured mode.
func (uc *implUseCase) Handle(ctx context.Context, message string) (model.OperationResult, error) {
	if strings.TrimSpace(message) == "" {
		return model.OperationResult{}, orchestrator.ErrEmptyMessage
	}

	if uc.opts.Mode == orchestrator.ModeSequential {
		return uc.handleSequential(ctx, message)
	}
	return uc.handleConcurrent(ctx, message)
}

func (uc *implUseCase) handleSequential(ctx context.Context, message string) (model.OperationResult, error) {
	decision := uc.router.Classify(ctx, message)
	return uc.dispatch(ctx, message, decision, nil)
}

// handleConcurrent runs classification and a speculative search of the
// default collection side by side and waits for both. Neither unit can
// fail: the router falls back to a fixed decision and the search degrades
// to no hits.
func (uc *implUseCase) handleConcurrent(ctx context.Context, message string) (model.OperationResult, error) {
	var (
		decision    model.RouteDecision
		speculative []model.RetrievalHit
		g           errgroup.Group
	)

	g.Go(func() error {
		decision = uc.router.Classify(ctx, message)
		return nil
	})
	g.Go(func() error {
		speculative = uc.retrieval.Search(ctx, uc.opts.DefaultCollection, message, uc.opts.SpeculativeK)
		return nil
	})
	_ = g.Wait()

	return uc.dispatch(ctx, message, decision, speculative)
}
