package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rag-assistant/internal/retrieval"
)

// Ingest loads every .txt, .md and .pdf file under req.Dir into the collection.
// A missing directory is logged and yields an empty result.
func (in *Ingester) Ingest(ctx context.Context, req Request) (Result, error) {
	if req.CollectionKey == "" || req.Dir == "" {
		return Result{}, ErrEmptyRequest
	}

	if _, err := os.Stat(req.Dir); errors.Is(err, fs.ErrNotExist) {
		in.l.Warnf(ctx, "ingest: directory %s does not exist, add files before ingesting", req.Dir)
		return Result{}, nil
	}

	if req.Clear {
		in.l.Infof(ctx, "ingest: clearing collection %s", req.CollectionKey)
		if err := in.writer.Clear(ctx, req.CollectionKey); err != nil {
			return Result{}, fmt.Errorf("clear %s: %w", req.CollectionKey, err)
		}
	}

	files, err := listFiles(req.Dir)
	if err != nil {
		return Result{}, fmt.Errorf("list %s: %w", req.Dir, err)
	}
	if len(files) == 0 {
		in.l.Warnf(ctx, "ingest: no files found under %s", req.Dir)
		return Result{}, nil
	}

	var res Result
	batch := make([]retrieval.Document, 0, in.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := in.writer.Upsert(ctx, req.CollectionKey, batch); err != nil {
			return fmt.Errorf("upsert into %s: %w", req.CollectionKey, err)
		}
		res.Chunks += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		docs, err := in.chunkFile(req.CollectionKey, req.Dir, path)
		if err != nil {
			in.l.Warnf(ctx, "ingest: skipping %s: %v", path, err)
			continue
		}
		if len(docs) == 0 {
			continue
		}
		in.l.Infof(ctx, "ingest: %s -> %d chunk(s)", path, len(docs))
		res.Files++

		for _, d := range docs {
			batch = append(batch, d)
			if len(batch) == in.opts.BatchSize {
				if err := flush(); err != nil {
					return res, err
				}
			}
		}
	}
	if err := flush(); err != nil {
		return res, err
	}

	in.l.Infof(ctx, "ingest: wrote %d chunk(s) from %d file(s) into %s", res.Chunks, res.Files, req.CollectionKey)
	return res, nil
}

// chunkFile splits one file into documents with ids "<source>:<relative path>#chunk<i>".
func (in *Ingester) chunkFile(source, root, path string) ([]retrieval.Document, error) {
	raw, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, nil
	}

	pieces, err := in.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)

	docs := make([]retrieval.Document, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		idx := len(docs)
		docs = append(docs, retrieval.Document{
			ID:   fmt.Sprintf("%s:%s#chunk%d", source, rel, idx),
			Text: piece,
			Metadata: map[string]any{
				"source":      source,
				"file":        filepath.Base(path),
				"filename":    filepath.Base(path),
				"filepath":    path,
				"chunk_index": idx,
				"filetype":    fileType(path),
			},
		})
	}
	return docs, nil
}
