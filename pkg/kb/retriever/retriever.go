package retriever

import (
	"context"
	"fmt"
	"strings"

	"collegefaq/pkg/kb/embedder"
	"collegefaq/pkg/kb/index"
)

// Searcher is the nearest-neighbour lookup the retriever runs against.
type Searcher interface {
	Search(ctx context.Context, vec []float32, k int) ([]index.Hit, error)
}

// Retriever wraps the embedder and the vector index into a single call:
// question in, top-k most relevant chunks out.
type Retriever struct {
	emb embedder.Embedder
	ix  Searcher
}

func New(emb embedder.Embedder, ix Searcher) *Retriever {
	return &Retriever{emb: emb, ix: ix}
}

// Retrieve embeds the question and returns up to k chunks ordered by
// descending similarity. Fewer than k entries in the index is not an error.
func (r *Retriever) Retrieve(ctx context.Context, question string, k int) ([]index.Hit, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d", k)
	}
	q := strings.TrimSpace(question)
	if q == "" {
		return nil, fmt.Errorf("question is empty")
	}
	vec, err := embedder.EmbedOne(ctx, r.emb, q)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	hits, err := r.ix.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	return hits, nil
}
