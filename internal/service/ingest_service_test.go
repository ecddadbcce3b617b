package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type chunkStoreStub struct {
	inserted []models.ManualChunk
	cleared  bool
}

func (s *chunkStoreStub) Insert(ctx context.Context, chunk *models.ManualChunk, embedding []float32) error {
	s.inserted = append(s.inserted, *chunk)
	return nil
}

func (s *chunkStoreStub) Count(ctx context.Context) (int, error) {
	return len(s.inserted), nil
}

func (s *chunkStoreStub) Clear(ctx context.Context) error {
	s.cleared = true
	s.inserted = nil
	return nil
}

type batchEmbedderStub struct{}

func (batchEmbedderStub) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(i), 1}
	}
	return out, nil
}

func TestIngestServiceSplitsParagraphs(t *testing.T) {
	store := &chunkStoreStub{}
	svc := NewIngestService(store, batchEmbedderStub{}, nil, zap.NewNop())

	resp, err := svc.Ingest(context.Background(), dto.IngestRequest{
		Section: "5.2 Detention",
		Text:    "First paragraph about detention.\r\n\r\nSecond paragraph.\n\n\n\nThird.",
	})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Chunks)
	require.Len(t, store.inserted, 3)
	require.Equal(t, "5.2 Detention", store.inserted[0].Section)
	require.Equal(t, "Second paragraph.", store.inserted[1].Content)
	require.False(t, store.cleared)
}

func TestIngestServiceReplaceClearsStore(t *testing.T) {
	store := &chunkStoreStub{inserted: []models.ManualChunk{{Section: "old"}}}
	svc := NewIngestService(store, batchEmbedderStub{}, nil, zap.NewNop())

	_, err := svc.Ingest(context.Background(), dto.IngestRequest{
		Section: "1.1 Scope",
		Text:    "Fresh content.",
		Replace: true,
	})
	require.NoError(t, err)
	require.True(t, store.cleared)
	require.Len(t, store.inserted, 1)
}

func TestIngestServiceRejectsEmptyText(t *testing.T) {
	svc := NewIngestService(&chunkStoreStub{}, batchEmbedderStub{}, nil, zap.NewNop())

	_, err := svc.Ingest(context.Background(), dto.IngestRequest{Section: "1.1", Text: "  \n\n  "})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Ingest(context.Background(), dto.IngestRequest{Text: "content"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
