// Package vectorstore persists generated entities as embedded documents in a
// local SQLite database and retrieves them by embedding distance. There is no
// structured primary-key lookup: id lookups run a similarity search on an
// "id: <value>" query string and compare the deserialized id, which can miss.
// That weakness is kept on purpose; callers treat a miss as not found.
package vectorstore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"lorewright/internal/llm"
	"lorewright/internal/model"
)

// Collection names partition the document table per entity kind.
const (
	CollectionCharacters = "characters"
	CollectionWorlds     = "worlds"
	CollectionCampaigns  = "campaigns"
)

// listWorldsQuery and listWorldsLimit approximate "list all worlds" with a
// broad similarity search. Not a full scan and not guaranteed complete.
const (
	listWorldsQuery = "world"
	listWorldsLimit = 100
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	collection TEXT NOT NULL,
	doc_id     TEXT NOT NULL,
	name       TEXT NOT NULL,
	body       TEXT NOT NULL,
	embedding  BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection);
`

// Document is one stored entity: its serialized JSON body plus the indexing
// metadata that travels alongside the embedding.
type Document struct {
	ID   string `db:"doc_id"`
	Name string `db:"name"`
	Body string `db:"body"`
}

// Match is a search hit with its cosine distance to the query.
type Match struct {
	Document
	Distance float64 `db:"distance"`
}

// Store wraps the SQLite document table and the embedder that vectorizes
// bodies and queries.
type Store struct {
	db       *sql.DB
	embedder llm.Embedder
	logger   *zap.Logger
}

// New opens (or creates) the database at path and ensures the schema exists.
func New(path string, embedder llm.Embedder, logger *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create vector database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open vector database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply vector schema: %w", err)
	}
	return &Store{
		db:       db,
		embedder: embedder,
		logger:   logger.Named("VectorStore"),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add embeds the document body and inserts it into the collection. Duplicate
// ids are not rejected; storing twice creates two documents.
func (s *Store) Add(ctx context.Context, collection string, doc Document) error {
	embedding, err := s.embedder.Embed(ctx, doc.Body)
	if err != nil {
		return fmt.Errorf("embed document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, doc_id, name, body, embedding) VALUES (?, ?, ?, ?, ?)`,
		collection, doc.ID, doc.Name, doc.Body, encodeEmbedding(embedding),
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	s.logger.Debug("Stored document",
		zap.String("collection", collection),
		zap.String("id", doc.ID),
		zap.String("name", doc.Name))
	return nil
}

// SearchSimilar returns up to k documents from the collection ranked by
// cosine distance to the query text. Zero hits is not an error.
func (s *Store) SearchSimilar(ctx context.Context, collection, query string, k int) ([]Match, error) {
	if k <= 0 {
		k = 4
	}
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	var matches []Match
	err = sqlscan.Select(ctx, s.db, &matches, `
		SELECT doc_id, name, body, vec_distance_cosine(embedding, ?) AS distance
		FROM documents
		WHERE collection = ?
		ORDER BY distance ASC
		LIMIT ?`,
		encodeEmbedding(embedding), collection, k,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	s.logger.Debug("Similarity search",
		zap.String("collection", collection),
		zap.String("query", truncate(query, 64)),
		zap.Int("hits", len(matches)))
	return matches, nil
}

// GetByID looks a document up by id through the similarity heuristic: it
// searches for "id: <id>" and accepts the nearest hit only when its stored id
// matches. Returns model.ErrNotFound on a miss or an empty index.
func (s *Store) GetByID(ctx context.Context, collection, id string) (Document, error) {
	matches, err := s.SearchSimilar(ctx, collection, "id: "+id, 1)
	if err != nil {
		return Document{}, err
	}
	if len(matches) == 0 || matches[0].ID != id {
		return Document{}, model.ErrNotFound
	}
	return matches[0].Document, nil
}

// GetAllWorlds lists worlds through a broad similarity search.
func (s *Store) GetAllWorlds(ctx context.Context) ([]Document, error) {
	matches, err := s.SearchSimilar(ctx, CollectionWorlds, listWorldsQuery, listWorldsLimit)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, len(matches))
	for i, m := range matches {
		docs[i] = m.Document
	}
	return docs, nil
}

// encodeEmbedding packs the vector as the little-endian float32 blob
// sqlite-vec expects.
func encodeEmbedding(vec []float32) []byte {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, vec); err != nil {
		return nil
	}
	return buf.Bytes()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
