package vectorstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lorewright/internal/model"
)

// stubEmbedder maps any text containing a known marker onto a fixed vector,
// so distance ranking in tests is fully deterministic.
type stubEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	for marker, vec := range s.vectors {
		if strings.Contains(text, marker) {
			return vec, nil
		}
	}
	return s.fallback, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newTestStore(t *testing.T, embedder *stubEmbedder) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "vectors.db"), embedder, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func characterBody(t *testing.T, id, name string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]string{
		"id":        id,
		"name":      name,
		"backstory": "Forged in the deep halls.",
	})
	require.NoError(t, err)
	return string(raw)
}

func TestRoundTrip(t *testing.T) {
	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			"char-1": {1, 0, 0, 0},
			"char-2": {0, 1, 0, 0},
		},
		fallback: []float32{0.1, 0.1, 0.1, 0.1},
	}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	body := characterBody(t, "char-1", "Elina")
	require.NoError(t, store.Add(ctx, CollectionCharacters, Document{ID: "char-1", Name: "Elina", Body: body}))
	require.NoError(t, store.Add(ctx, CollectionCharacters, Document{
		ID: "char-2", Name: "Borin", Body: characterBody(t, "char-2", "Borin"),
	}))

	matches, err := store.SearchSimilar(ctx, CollectionCharacters, "id: char-1", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "char-1", matches[0].ID)
	assert.Equal(t, "Elina", matches[0].Name)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(matches[0].Body), &decoded))
	assert.Equal(t, "char-1", decoded["id"])
	assert.Equal(t, "Elina", decoded["name"])
	assert.Equal(t, "Forged in the deep halls.", decoded["backstory"])
}

func TestGetByID(t *testing.T) {
	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			"char-1": {1, 0, 0, 0},
		},
		fallback: []float32{0.1, 0.1, 0.1, 0.1},
	}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, CollectionCharacters, Document{
		ID: "char-1", Name: "Elina", Body: characterBody(t, "char-1", "Elina"),
	}))

	doc, err := store.GetByID(ctx, CollectionCharacters, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Elina", doc.Name)

	// The nearest hit for an unknown id is still char-1; the id comparison
	// rejects it.
	_, err = store.GetByID(ctx, CollectionCharacters, "char-9")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetByIDEmptyIndex(t *testing.T) {
	store := newTestStore(t, &stubEmbedder{fallback: []float32{0.1, 0.1, 0.1, 0.1}})

	_, err := store.GetByID(context.Background(), CollectionCharacters, "char-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDuplicateStoreKeepsBoth(t *testing.T) {
	embedder := &stubEmbedder{
		vectors:  map[string][]float32{"char-1": {1, 0, 0, 0}},
		fallback: []float32{0.1, 0.1, 0.1, 0.1},
	}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	doc := Document{ID: "char-1", Name: "Elina", Body: characterBody(t, "char-1", "Elina")}
	require.NoError(t, store.Add(ctx, CollectionCharacters, doc))
	require.NoError(t, store.Add(ctx, CollectionCharacters, doc))

	matches, err := store.SearchSimilar(ctx, CollectionCharacters, "id: char-1", 10)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestCollectionsAreIsolated(t *testing.T) {
	embedder := &stubEmbedder{
		vectors:  map[string][]float32{"shared-id": {1, 0, 0, 0}},
		fallback: []float32{0.1, 0.1, 0.1, 0.1},
	}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, CollectionWorlds, Document{
		ID: "shared-id", Name: "Aethel", Body: `{"id":"shared-id","name":"Aethel"}`,
	}))

	matches, err := store.SearchSimilar(ctx, CollectionCharacters, "id: shared-id", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGetAllWorlds(t *testing.T) {
	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			"world-1": {1, 0, 0, 0},
			"world-2": {0, 1, 0, 0},
		},
		fallback: []float32{0.1, 0.1, 0.1, 0.1},
	}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, CollectionWorlds, Document{
		ID: "world-1", Name: "Aethel", Body: `{"id":"world-1","name":"Aethel"}`,
	}))
	require.NoError(t, store.Add(ctx, CollectionWorlds, Document{
		ID: "world-2", Name: "Doskvol", Body: `{"id":"world-2","name":"Doskvol"}`,
	}))

	docs, err := store.GetAllWorlds(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
