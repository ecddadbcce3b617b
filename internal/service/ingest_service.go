package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type chunkStore interface {
	Insert(ctx context.Context, chunk *models.ManualChunk, embedding []float32) error
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type batchEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type cacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// IngestService loads drainage manual text into the vector store. Chunks
// are paragraphs: blank-line separated blocks of the submitted text.
type IngestService struct {
	chunks   chunkStore
	embedder batchEmbedder
	cache    cacheInvalidator
	logger   *zap.Logger
}

// NewIngestService constructs the service.
func NewIngestService(chunks chunkStore, embedder batchEmbedder, cache cacheInvalidator, logger *zap.Logger) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		chunks:   chunks,
		embedder: embedder,
		cache:    cache,
		logger:   logger,
	}
}

// Available reports whether ingestion is wired up.
func (s *IngestService) Available() bool {
	return s.embedder != nil
}

// Ingest splits the submitted text into paragraph chunks, embeds them, and
// stores them. Replace drops all existing chunks first and invalidates
// cached answers, since they may cite passages that no longer exist.
func (s *IngestService) Ingest(ctx context.Context, req dto.IngestRequest) (*dto.IngestResponse, error) {
	if !s.Available() {
		return nil, appErrors.ErrQAUnavailable
	}
	section := strings.TrimSpace(req.Section)
	if section == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "section is required")
	}
	paragraphs := splitParagraphs(req.Text)
	if len(paragraphs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "text contains no content")
	}

	if req.Replace {
		if err := s.chunks.Clear(ctx); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear manual chunks")
		}
		if s.cache != nil {
			if err := s.cache.DeleteByPattern(ctx, "qa:*"); err != nil {
				s.logger.Sugar().Warnw("failed to invalidate cached answers", "error", err)
			}
		}
	}

	vectors, err := s.embedder.EmbedBatch(ctx, paragraphs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrQAUnavailable.Code, appErrors.ErrQAUnavailable.Status, "failed to embed manual chunks")
	}
	if len(vectors) != len(paragraphs) {
		return nil, appErrors.Clone(appErrors.ErrInternal, "embedding count mismatch")
	}

	for i, paragraph := range paragraphs {
		chunk := &models.ManualChunk{Section: section, Content: paragraph}
		if err := s.chunks.Insert(ctx, chunk, vectors[i]); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store manual chunk")
		}
	}
	s.logger.Sugar().Infow("manual section ingested", "section", section, "chunks", len(paragraphs))
	return &dto.IngestResponse{Section: section, Chunks: len(paragraphs)}, nil
}

// ChunkCount returns the number of stored manual chunks.
func (s *IngestService) ChunkCount(ctx context.Context) (int, error) {
	return s.chunks.Count(ctx)
}

func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	blocks := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paragraphs = append(paragraphs, block)
	}
	return paragraphs
}
