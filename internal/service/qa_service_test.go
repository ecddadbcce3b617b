package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/models"
	"github.com/cob-engineering/plan-review-api/internal/repository"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type searcherStub struct {
	matches []repository.ChunkMatch
}

func (s searcherStub) Search(ctx context.Context, embedding []float32, topK int) ([]repository.ChunkMatch, error) {
	return s.matches, nil
}

type embedderStub struct{}

func (embedderStub) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

type llmStub struct {
	prompt string
}

func (l *llmStub) Complete(ctx context.Context, prompt string) (string, error) {
	l.prompt = prompt
	return "Detention is required for additions over 1,000 sq ft.", nil
}

func TestQAServiceUnavailableWithoutEngine(t *testing.T) {
	svc := NewQAService(searcherStub{}, nil, nil, nil, nil, QAServiceConfig{}, zap.NewNop())

	_, err := svc.Ask(context.Background(), dto.QARequest{Question: "When is detention required?"})
	require.ErrorIs(t, err, appErrors.ErrQAUnavailable)
}

func TestQAServiceAnswersWithSources(t *testing.T) {
	matches := []repository.ChunkMatch{
		{Chunk: models.ManualChunk{Section: "5.2 Detention", Content: "Detention is required when impervious cover increases by more than 1,000 square feet."}, Similarity: 0.91},
		{Chunk: models.ManualChunk{Section: "1.1 Scope", Content: "This manual governs drainage design within city limits."}, Similarity: 0.35},
	}
	client := &llmStub{}
	svc := NewQAService(searcherStub{matches: matches}, embedderStub{}, client, nil, nil, QAServiceConfig{SimilarityThreshold: 0.6}, zap.NewNop())

	result, err := svc.Ask(context.Background(), dto.QARequest{Question: "When is detention required?"})
	require.NoError(t, err)
	require.False(t, result.Cached)
	require.Len(t, result.Sources, 1)
	require.Equal(t, "5.2 Detention", result.Sources[0].Section)
	require.Contains(t, result.Answer, "Detention")

	// The low-similarity chunk must not reach the prompt.
	require.Contains(t, client.prompt, "5.2 Detention")
	require.NotContains(t, client.prompt, "1.1 Scope")
	require.True(t, strings.HasSuffix(client.prompt, "When is detention required?"))
}

func TestQAServiceNoRelevantPassages(t *testing.T) {
	client := &llmStub{}
	svc := NewQAService(searcherStub{}, embedderStub{}, client, nil, nil, QAServiceConfig{}, zap.NewNop())

	result, err := svc.Ask(context.Background(), dto.QARequest{Question: "What is the airspeed of a swallow?"})
	require.NoError(t, err)
	require.Empty(t, result.Sources)
	require.Contains(t, result.Answer, "No relevant passages")
	require.Empty(t, client.prompt)
}
