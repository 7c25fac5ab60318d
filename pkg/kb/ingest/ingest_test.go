package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegefaq/pkg/kb/index"
	"collegefaq/pkg/kb/splitter"
)

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(i), 1}
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return "fake-model" }

type fakeStore struct {
	resets  int
	added   []index.Entry
	stamped string
}

func (f *fakeStore) Reset() error { f.resets++; return nil }
func (f *fakeStore) Add(ctx context.Context, entries []index.Entry) error {
	f.added = append(f.added, entries...)
	return nil
}
func (f *fakeStore) StampModel(model string) error { f.stamped = model; return nil }

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesAllChunks(t *testing.T) {
	store := &fakeStore{}
	p := New(splitter.New(40, 10), &fakeEmbedder{}, store)

	path := writeDoc(t, "Q: When is enrollment?\nA: Enrollment opens the first week of August every year.")
	n, err := p.Run(context.Background(), path)
	require.NoError(t, err)
	assert.Greater(t, n, 1)
	assert.Len(t, store.added, n)
	assert.Equal(t, 1, store.resets)
	assert.Equal(t, "fake-model", store.stamped)

	// ids and ordinals follow chunk order
	for i, e := range store.added {
		assert.Equal(t, i, e.Ord)
		assert.NotEmpty(t, e.Text)
		assert.NotEmpty(t, e.Embedding)
	}
}

func TestRunAbortsOnEmbedFailureWithoutTouchingIndex(t *testing.T) {
	store := &fakeStore{}
	emb := &fakeEmbedder{err: errors.New("rate limited")}
	p := New(splitter.New(600, 80), emb, store)

	path := writeDoc(t, "Some FAQ content about campus parking permits.")
	_, err := p.Run(context.Background(), path)
	require.ErrorContains(t, err, "embed chunks")

	// no partial index: nothing reset, nothing written
	assert.Zero(t, store.resets)
	assert.Empty(t, store.added)
}

func TestRunMissingDocument(t *testing.T) {
	p := New(splitter.New(600, 80), &fakeEmbedder{}, &fakeStore{})
	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorContains(t, err, "read document")
}

func TestRunEmptyDocument(t *testing.T) {
	p := New(splitter.New(600, 80), &fakeEmbedder{}, &fakeStore{})
	_, err := p.Run(context.Background(), writeDoc(t, "   \n\n "))
	assert.ErrorContains(t, err, "no chunks")
}
