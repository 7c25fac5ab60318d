package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegefaq/pkg/kb/index"
)

type fakeEmbedder struct {
	lastTexts []string
	vec       []float32
	err       error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.lastTexts = texts
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vec
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return "fake-model" }

type fakeSearcher struct {
	lastVec []float32
	lastK   int
	hits    []index.Hit
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, vec []float32, k int) ([]index.Hit, error) {
	f.lastVec = vec
	f.lastK = k
	return f.hits, f.err
}

func TestRetrieveHappyPath(t *testing.T) {
	emb := &fakeEmbedder{vec: []float32{0.1, 0.2}}
	ix := &fakeSearcher{hits: []index.Hit{
		{Text: "Library hours: 9am-9pm", Score: 0.93},
		{Text: "The gym opens at 6am", Score: 0.41},
	}}
	r := New(emb, ix)

	hits, err := r.Retrieve(context.Background(), "  What are the library hours? ", 3)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Library hours: 9am-9pm", hits[0].Text)
	assert.Equal(t, []string{"What are the library hours?"}, emb.lastTexts)
	assert.Equal(t, []float32{0.1, 0.2}, ix.lastVec)
	assert.Equal(t, 3, ix.lastK)
}

func TestRetrieveRejectsEmptyQuestion(t *testing.T) {
	r := New(&fakeEmbedder{vec: []float32{1}}, &fakeSearcher{})
	_, err := r.Retrieve(context.Background(), "   ", 3)
	assert.Error(t, err)
}

func TestRetrieveRejectsBadK(t *testing.T) {
	r := New(&fakeEmbedder{vec: []float32{1}}, &fakeSearcher{})
	_, err := r.Retrieve(context.Background(), "q", 0)
	assert.Error(t, err)
}

func TestRetrievePropagatesEmbedFailure(t *testing.T) {
	emb := &fakeEmbedder{err: errors.New("embedder unreachable")}
	r := New(emb, &fakeSearcher{})
	_, err := r.Retrieve(context.Background(), "q", 3)
	assert.ErrorContains(t, err, "embed question")
}

func TestRetrievePropagatesSearchFailure(t *testing.T) {
	ix := &fakeSearcher{err: errors.New("index corrupt")}
	r := New(&fakeEmbedder{vec: []float32{1}}, ix)
	_, err := r.Retrieve(context.Background(), "q", 3)
	assert.ErrorContains(t, err, "search index")
}

func TestRetrieveEmptyIndex(t *testing.T) {
	r := New(&fakeEmbedder{vec: []float32{1}}, &fakeSearcher{hits: []index.Hit{}})
	hits, err := r.Retrieve(context.Background(), "q", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
