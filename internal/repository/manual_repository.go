package repository

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cob-engineering/plan-review-api/internal/models"
)

// ManualRepository stores manual passages alongside their embeddings in
// a sqlite-vec vec0 virtual table and answers nearest-neighbor queries.
type ManualRepository struct {
	db *sqlx.DB
}

// NewManualRepository constructs the repository.
func NewManualRepository(db *sqlx.DB) *ManualRepository {
	return &ManualRepository{db: db}
}

// ChunkMatch is a manual chunk scored against a query embedding.
// Similarity is 1 - cosine distance, so 1.0 is an exact match.
type ChunkMatch struct {
	Chunk      models.ManualChunk
	Similarity float64
}

// Insert stores a chunk and its embedding in one transaction.
func (r *ManualRepository) Insert(ctx context.Context, chunk *models.ManualChunk, embedding []float32) error {
	if chunk.CreatedAt.IsZero() {
		chunk.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin chunk insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`INSERT INTO manual_chunks (section, content, created_at) VALUES (?, ?, ?)`,
		chunk.Section, chunk.Content, chunk.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert manual chunk: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("chunk insert id: %w", err)
	}
	chunk.ID = id

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO vec_manual (chunk_id, embedding) VALUES (?, ?)`,
		id, encodeEmbedding(embedding),
	); err != nil {
		return fmt.Errorf("insert chunk embedding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chunk insert: %w", err)
	}
	return nil
}

// Search returns the topK chunks nearest to the query embedding by
// cosine distance.
func (r *ManualRepository) Search(ctx context.Context, embedding []float32, topK int) ([]ChunkMatch, error) {
	if topK <= 0 {
		topK = 5
	}

	const query = `SELECT c.id, c.section, c.content, c.created_at,
	vec_distance_cosine(v.embedding, ?) AS distance
FROM vec_manual v
JOIN manual_chunks c ON c.id = v.chunk_id
ORDER BY distance ASC
LIMIT ?`

	rows, err := r.db.QueryxContext(ctx, query, encodeEmbedding(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("search manual chunks: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	matches := make([]ChunkMatch, 0, topK)
	for rows.Next() {
		var (
			chunk    models.ManualChunk
			distance float64
		)
		if err := rows.Scan(&chunk.ID, &chunk.Section, &chunk.Content, &chunk.CreatedAt, &distance); err != nil {
			return nil, fmt.Errorf("scan manual chunk: %w", err)
		}
		matches = append(matches, ChunkMatch{Chunk: chunk, Similarity: 1 - distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manual chunks: %w", err)
	}
	return matches, nil
}

// Count reports how many chunks are indexed.
func (r *ManualRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM manual_chunks`); err != nil {
		return 0, fmt.Errorf("count manual chunks: %w", err)
	}
	return n, nil
}

// Clear removes every indexed chunk and embedding.
func (r *ManualRepository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM vec_manual`); err != nil {
		return fmt.Errorf("clear embeddings: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM manual_chunks`); err != nil {
		return fmt.Errorf("clear manual chunks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}

// encodeEmbedding encodes a float32 slice as the little-endian blob
// sqlite-vec expects.
func encodeEmbedding(embedding []float32) []byte {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, embedding); err != nil {
		return nil
	}
	return buf.Bytes()
}
