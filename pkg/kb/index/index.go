package index

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chromem "github.com/philippgille/chromem-go"
)

const (
	collectionName = "college_faq"
	modelStampFile = "embedding-model"
)

// ErrNotIngested is returned by OpenExisting when the index directory does
// not exist yet.
var ErrNotIngested = errors.New("vector index directory not found, run ingest first")

// Entry is one (chunk, embedding) pair written at ingestion time.
type Entry struct {
	ID        string
	Text      string
	Ord       int
	Embedding []float32
}

// Hit is one retrieval result, most similar first.
type Hit struct {
	Text  string
	Score float32
}

// Index is a persisted nearest-neighbour store backed by chromem-go. It is
// read-only during serving and safe for concurrent searches.
type Index struct {
	db  *chromem.DB
	col *chromem.Collection
	dir string
}

// Open opens (or creates) the index under dir. Used by ingestion.
func Open(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create index dir %s: %w", dir, err)
	}
	return open(dir)
}

// OpenExisting opens the index under dir and fails if it has never been
// ingested. Used by the server so it dies at startup instead of serving
// against nothing.
func OpenExisting(dir string) (*Index, error) {
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotIngested, dir)
	}
	return open(dir)
}

func open(dir string) (*Index, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open chromem db: %w", err)
	}
	col, err := db.GetOrCreateCollection(collectionName, nil, rejectEmbedding)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}
	return &Index{db: db, col: col, dir: dir}, nil
}

// rejectEmbedding guards against chromem ever embedding on our behalf; all
// vectors are computed upstream and passed in explicitly.
func rejectEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("index only accepts precomputed embeddings")
}

// Reset drops all entries so a fresh ingestion run fully replaces the index.
func (ix *Index) Reset() error {
	if err := ix.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	col, err := ix.db.GetOrCreateCollection(collectionName, nil, rejectEmbedding)
	if err != nil {
		return fmt.Errorf("recreate collection: %w", err)
	}
	ix.col = col
	return nil
}

// Add writes entries as one batch. chromem persists each document to disk as
// it is added, so the batch is durable once Add returns.
func (ix *Index) Add(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]chromem.Document, len(entries))
	for i, e := range entries {
		docs[i] = chromem.Document{
			ID:        e.ID,
			Content:   e.Text,
			Embedding: e.Embedding,
			Metadata:  map[string]string{"ord": fmt.Sprint(e.Ord)},
		}
	}
	if err := ix.col.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Search returns up to k entries nearest to vec by cosine similarity,
// descending. An under-populated index returns what it has; an empty index
// returns an empty slice, never an error.
func (ix *Index) Search(ctx context.Context, vec []float32, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	n := ix.col.Count()
	if n == 0 {
		return []Hit{}, nil
	}
	if k > n {
		k = n
	}
	results, err := ix.col.QueryEmbedding(ctx, vec, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	hits := make([]Hit, len(results))
	for i, r := range results {
		hits[i] = Hit{Text: r.Content, Score: r.Similarity}
	}
	return hits, nil
}

// Count reports how many entries the index holds.
func (ix *Index) Count() int { return ix.col.Count() }

// StampModel records which embedding model produced the stored vectors.
func (ix *Index) StampModel(model string) error {
	return os.WriteFile(filepath.Join(ix.dir, modelStampFile), []byte(model+"\n"), 0o644)
}

// ModelStamp returns the recorded embedding model, or "" when no stamp
// exists (index predates stamping).
func (ix *Index) ModelStamp() string {
	b, err := os.ReadFile(filepath.Join(ix.dir, modelStampFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
