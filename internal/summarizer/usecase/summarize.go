package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"rag-assistant/internal/model"
	"rag-assistant/internal/summarizer"
	"rag-assistant/pkg/metrics"
)

// Summarize loads every chunk of the collection, summarizes it batch by
// batch with the batch model, then merges the partial summaries with the
// final model. A single batch is returned as is when both models match.
func (uc *implUseCase) Summarize(ctx context.Context, collectionKey string) (string, error) {
	start := time.Now()

	hits := uc.retrieval.All(ctx, collectionKey)
	if len(hits) == 0 {
		return summarizer.EmptyCollectionAnswer, nil
	}
	uc.l.Infof(ctx, "summarizer.Summarize: loaded %d chunks from %q", len(hits), collectionKey)

	batches := makeBatches(hits, uc.opts.MaxCharsPerBatch)
	if len(batches) == 0 {
		return summarizer.EmptyCollectionAnswer, nil
	}
	uc.l.Infof(ctx, "summarizer.Summarize: created %d batches", len(batches))

	partials := make([]string, 0, len(batches))
	for i, batch := range batches {
		summary, err := uc.generate(ctx, fmt.Sprintf(batchPromptTemplate, batch), uc.opts.BatchModel)
		if err != nil {
			return "", fmt.Errorf("summarize batch %d/%d: %w", i+1, len(batches), err)
		}
		partials = append(partials, summary)
	}

	if len(partials) == 1 && uc.opts.BatchModel == uc.opts.FinalModel {
		uc.l.Infof(ctx, "summarizer.Summarize: single batch done in %s", time.Since(start))
		return partials[0], nil
	}

	final, err := uc.generate(ctx, fmt.Sprintf(finalPromptTemplate, joinPartials(partials)), uc.opts.FinalModel)
	if err != nil {
		return "", fmt.Errorf("summarize final merge: %w", err)
	}

	uc.l.Infof(ctx, "summarizer.Summarize: %d batches merged in %s", len(partials), time.Since(start))
	return final, nil
}

func (uc *implUseCase) generate(ctx context.Context, prompt, modelName string) (string, error) {
	start := time.Now()
	defer metrics.ObserveGeneration(modelName, start)
	return uc.gen.Generate(ctx, prompt, modelName)
}

// makeBatches groups trimmed chunk texts so each batch stays within
// maxChars, counting two characters per separator. A chunk longer than
// maxChars gets a batch of its own.
func makeBatches(hits []model.RetrievalHit, maxChars int) []string {
	var (
		batches []string
		current []string
		size    int
	)
	for _, h := range hits {
		text := strings.TrimSpace(h.Text)
		if text == "" {
			continue
		}
		n := utf8.RuneCountInString(text) + len(batchSeparator)
		if size+n > maxChars && len(current) > 0 {
			batches = append(batches, strings.Join(current, batchSeparator))
			current = nil
			size = 0
		}
		current = append(current, text)
		size += n
	}
	if len(current) > 0 {
		batches = append(batches, strings.Join(current, batchSeparator))
	}
	return batches
}

// joinPartials labels partial summaries for the merge prompt. A lone
// partial is passed through unlabeled.
func joinPartials(partials []string) string {
	if len(partials) == 1 {
		return partials[0]
	}
	parts := make([]string, len(partials))
	for i, p := range partials {
		parts[i] = fmt.Sprintf("Summary %d:\n%s", i+1, p)
	}
	return strings.Join(parts, batchSeparator)
}
