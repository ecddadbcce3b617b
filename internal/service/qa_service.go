package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/llm"
	"github.com/cob-engineering/plan-review-api/internal/models"
	"github.com/cob-engineering/plan-review-api/internal/repository"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type chunkSearcher interface {
	Search(ctx context.Context, embedding []float32, topK int) ([]repository.ChunkMatch, error)
}

type questionEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// QAServiceConfig tunes retrieval behaviour.
type QAServiceConfig struct {
	MaxChunks           int
	SimilarityThreshold float64
	CacheTTL            time.Duration
}

// QAService answers drainage manual questions by retrieving the closest
// manual passages and asking the language model to ground its answer in
// them.
type QAService struct {
	chunks   chunkSearcher
	embedder questionEmbedder
	llm      llm.Client
	cache    *repository.CacheRepository
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      QAServiceConfig
}

const noPassagesAnswer = "No relevant passages were found in the drainage design manual for this question. " +
	"Try rephrasing the question or check whether the manual has been ingested."

// NewQAService constructs the service. A nil embedder or llm client marks
// the service unavailable rather than failing construction, so the API can
// boot without GenAI credentials.
func NewQAService(chunks chunkSearcher, embedder questionEmbedder, client llm.Client, cache *repository.CacheRepository, metrics *MetricsService, cfg QAServiceConfig, logger *zap.Logger) *QAService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxChunks <= 0 {
		cfg.MaxChunks = 5
	}
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = 0.6
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &QAService{
		chunks:   chunks,
		embedder: embedder,
		llm:      client,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// Available reports whether question answering is wired up.
func (s *QAService) Available() bool {
	return s.embedder != nil && s.llm != nil
}

// Ask answers a question against the ingested manual.
func (s *QAService) Ask(ctx context.Context, req dto.QARequest) (*models.QAResult, error) {
	if !s.Available() {
		return nil, appErrors.ErrQAUnavailable
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "question is required")
	}

	s.metrics.ObserveQAQuestion()
	cacheKey := repository.QAKey(question)
	if s.cache != nil {
		var cached models.QAResult
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			s.metrics.RecordCacheOperation(true)
			cached.Cached = true
			return &cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Sugar().Warnw("qa cache read failed", "error", err)
		} else {
			s.metrics.RecordCacheOperation(false)
		}
	}

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrQAUnavailable.Code, appErrors.ErrQAUnavailable.Status, "failed to embed question")
	}
	matches, err := s.chunks.Search(ctx, vector, s.cfg.MaxChunks)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search manual chunks")
	}

	sources := make([]models.QASource, 0, len(matches))
	passages := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Similarity < s.cfg.SimilarityThreshold {
			continue
		}
		sources = append(sources, models.QASource{
			Section:    match.Chunk.Section,
			Snippet:    snippet(match.Chunk.Content, 240),
			Similarity: match.Similarity,
		})
		passages = append(passages, fmt.Sprintf("[%s]\n%s", match.Chunk.Section, match.Chunk.Content))
	}

	result := &models.QAResult{Question: question}
	if len(passages) == 0 {
		result.Answer = noPassagesAnswer
		return result, nil
	}

	answer, err := s.llm.Complete(ctx, buildPrompt(question, passages))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrQAUnavailable.Code, appErrors.ErrQAUnavailable.Status, "failed to generate answer")
	}
	result.Answer = answer
	result.Sources = sources

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cfg.CacheTTL); err != nil {
			s.logger.Sugar().Warnw("qa cache write failed", "error", err)
		}
	}
	return result, nil
}

func buildPrompt(question string, passages []string) string {
	var b strings.Builder
	b.WriteString("You are an assistant for municipal drainage plan reviewers. ")
	b.WriteString("Answer the question using only the drainage design manual passages below. ")
	b.WriteString("If the passages do not contain the answer, say so.\n\n")
	b.WriteString("Manual passages:\n")
	for _, passage := range passages {
		b.WriteString(passage)
		b.WriteString("\n\n")
	}
	b.WriteString("Question: ")
	b.WriteString(question)
	return b.String()
}

func snippet(content string, max int) string {
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}
