package ingest

import (
	"context"
	"fmt"
	"log"
	"os"

	"collegefaq/pkg/kb/embedder"
	"collegefaq/pkg/kb/index"
	"collegefaq/pkg/kb/splitter"
)

// Store is the slice of the vector index the pipeline writes to.
type Store interface {
	Reset() error
	Add(ctx context.Context, entries []index.Entry) error
	StampModel(model string) error
}

// Pipeline is the offline document → chunks → embeddings → index run. It
// must not run concurrently with itself; it fully replaces the stored index.
type Pipeline struct {
	split splitter.Splitter
	emb   embedder.Embedder
	store Store
}

func New(split splitter.Splitter, emb embedder.Embedder, store Store) *Pipeline {
	return &Pipeline{split: split, emb: emb, store: store}
}

// Run ingests the UTF-8 document at path and returns the number of chunks
// written. Embedding happens before anything is written: an embedding failure
// aborts the run and leaves the previous index intact, so a partial index can
// never be observed.
func (p *Pipeline) Run(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read document: %w", err)
	}

	chunks := p.split.Split(string(raw))
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document %s produced no chunks", path)
	}
	log.Printf("[ingest] %s split into %d chunks (size=%d overlap=%d)",
		path, len(chunks), p.split.ChunkSize(), p.split.Overlap())

	vecs, err := p.emb.Embed(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}

	entries := make([]index.Entry, len(chunks))
	for i, text := range chunks {
		entries[i] = index.Entry{
			ID:        fmt.Sprintf("chunk-%04d", i),
			Text:      text,
			Ord:       i,
			Embedding: vecs[i],
		}
	}

	// Replace semantics: drop whatever a previous run wrote, then write the
	// whole batch.
	if err := p.store.Reset(); err != nil {
		return 0, fmt.Errorf("reset index: %w", err)
	}
	if err := p.store.Add(ctx, entries); err != nil {
		return 0, fmt.Errorf("write index: %w", err)
	}
	if err := p.store.StampModel(p.emb.Model()); err != nil {
		return 0, fmt.Errorf("stamp embedding model: %w", err)
	}
	return len(entries), nil
}
