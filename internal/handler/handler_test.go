package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/models"
	"github.com/cob-engineering/plan-review-api/internal/repository"
	"github.com/cob-engineering/plan-review-api/internal/service"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
	"github.com/cob-engineering/plan-review-api/pkg/response"
	"github.com/cob-engineering/plan-review-api/pkg/storage"
)

type memoryReviewStore struct {
	sessions map[string]*models.ReviewSession
	answers  map[string]models.ReviewAnswer
}

func newMemoryReviewStore() *memoryReviewStore {
	return &memoryReviewStore{
		sessions: make(map[string]*models.ReviewSession),
		answers:  make(map[string]models.ReviewAnswer),
	}
}

func (s *memoryReviewStore) CreateSession(ctx context.Context, session *models.ReviewSession) error {
	if session.ID == "" {
		session.ID = "session-1"
	}
	session.CreatedAt = time.Now().UTC()
	session.UpdatedAt = session.CreatedAt
	s.sessions[session.ID] = session
	return nil
}

func (s *memoryReviewStore) GetSession(ctx context.Context, id string) (*models.ReviewSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return session, nil
}

func (s *memoryReviewStore) ListSessions(ctx context.Context, page, pageSize int) ([]models.ReviewSession, int, error) {
	out := make([]models.ReviewSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, *session)
	}
	return out, len(out), nil
}

func (s *memoryReviewStore) DeleteSession(ctx context.Context, id string) error {
	if _, ok := s.sessions[id]; !ok {
		return appErrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *memoryReviewStore) UpsertAnswer(ctx context.Context, answer *models.ReviewAnswer) error {
	answer.UpdatedAt = time.Now().UTC()
	s.answers[answer.ItemID] = *answer
	return nil
}

func (s *memoryReviewStore) ListAnswers(ctx context.Context, sessionID string) (map[string]models.ReviewAnswer, error) {
	out := make(map[string]models.ReviewAnswer, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out, nil
}

func newTestReviewService() *service.ReviewService {
	return service.NewReviewService(
		newMemoryReviewStore(),
		repository.NewChecklistRepository(),
		repository.NewCommentRepository(),
		nil,
		zap.NewNop(),
	)
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestChecklistHandlerSections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewChecklistHandler(repository.NewChecklistRepository())
	r := gin.New()
	r.GET("/checklist", h.Sections)

	w := performRequest(r, http.MethodGet, "/checklist?review_type=Fence+Permit", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "fence_specific")
	require.NotContains(t, body, "pool_specific")

	w = performRequest(r, http.MethodGet, "/checklist?review_type=Patio+Permit", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandlerGetUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(repository.NewCommentRepository())
	r := gin.New()
	r.GET("/comments/:id", h.Get)

	w := performRequest(r, http.MethodGet, "/comments/BB-0001", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/comments/BB-9999", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	require.Equal(t, appErrors.ErrUnknownComment.Code, envelope.Error.Code)
}

func TestReviewHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(newTestReviewService())
	r := gin.New()
	r.POST("/reviews", h.Create)

	w := performRequest(r, http.MethodPost, "/reviews", `{
		"review_type": "Standard Lot",
		"permit_number": "BP-2024-0117",
		"address": "413 W Elm St",
		"reviewer": "KB"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "BP-2024-0117")

	w = performRequest(r, http.MethodPost, "/reviews", `{"review_type": "Standard Lot"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/reviews", "not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandlerAnswerAndSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(newTestReviewService())
	r := gin.New()
	r.POST("/reviews", h.Create)
	r.PUT("/reviews/:id/answers", h.Answer)
	r.GET("/reviews/:id/summary", h.Summary)

	w := performRequest(r, http.MethodPost, "/reviews", `{
		"review_type": "Standard Lot",
		"permit_number": "BP-2024-0117",
		"address": "413 W Elm St"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	session, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	id, _ := session["id"].(string)
	require.NotEmpty(t, id)

	w = performRequest(r, http.MethodPut, "/reviews/"+id+"/answers", `{
		"item_id": "0.3",
		"status": "no",
		"custom_note": "Resubmit with a north arrow."
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodPut, "/reviews/"+id+"/answers", `{
		"item_id": "0.3",
		"status": "maybe"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet, "/reviews/"+id+"/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Resubmit with a north arrow.")
}

func TestExportHandlerDownloadInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	generator := service.NewExportGenerator(newTestReviewService(), store, signer, service.GeneratorConfig{}, zap.NewNop())
	exports := service.NewExportService(repository.NewExportRepository(nil), newTestReviewService(), nil, generator, zap.NewNop(), service.ExportServiceConfig{})

	h := NewExportHandler(exports)
	r := gin.New()
	r.GET("/export/:token", h.Download)

	w := performRequest(r, http.MethodGet, "/export/bogus", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestQAHandlerUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	qa := service.NewQAService(repository.NewManualRepository(nil), nil, nil, nil, nil, service.QAServiceConfig{}, zap.NewNop())
	ingest := service.NewIngestService(repository.NewManualRepository(nil), nil, nil, zap.NewNop())
	h := NewQAHandler(qa, ingest)
	r := gin.New()
	r.POST("/qa", h.Ask)

	w := performRequest(r, http.MethodPost, "/qa", `{"question": "When is detention required?"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
