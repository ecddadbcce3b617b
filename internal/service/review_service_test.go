package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type checklistStub struct {
	sections []models.ChecklistSection
}

func (s checklistStub) SectionsForReviewType(rt models.ReviewType) []models.ChecklistSection {
	return s.sections
}

func (s checklistStub) Item(id string) (models.ChecklistItem, error) {
	for _, section := range s.sections {
		for _, item := range section.Items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return models.ChecklistItem{}, appErrors.ErrNotFound
}

func (s checklistStub) ReviewTypes() []models.ReviewType { return models.AllReviewTypes }

func (s checklistStub) ReviewerInitials() []string { return []string{"KB", "JD"} }

type commentStub struct {
	texts map[string]string
}

func (s commentStub) Get(id string) (models.Comment, error) {
	text, ok := s.texts[id]
	if !ok {
		return models.Comment{}, appErrors.ErrUnknownComment
	}
	return models.Comment{ID: id, Text: text}, nil
}

type reviewStoreStub struct {
	sessions map[string]*models.ReviewSession
	answers  map[string]models.ReviewAnswer
}

func newReviewStoreStub() *reviewStoreStub {
	return &reviewStoreStub{
		sessions: make(map[string]*models.ReviewSession),
		answers:  make(map[string]models.ReviewAnswer),
	}
}

func (s *reviewStoreStub) CreateSession(ctx context.Context, session *models.ReviewSession) error {
	if session.ID == "" {
		session.ID = "session-1"
	}
	session.CreatedAt = time.Now().UTC()
	session.UpdatedAt = session.CreatedAt
	s.sessions[session.ID] = session
	return nil
}

func (s *reviewStoreStub) GetSession(ctx context.Context, id string) (*models.ReviewSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return session, nil
}

func (s *reviewStoreStub) ListSessions(ctx context.Context, page, pageSize int) ([]models.ReviewSession, int, error) {
	out := make([]models.ReviewSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, *session)
	}
	return out, len(out), nil
}

func (s *reviewStoreStub) DeleteSession(ctx context.Context, id string) error {
	if _, ok := s.sessions[id]; !ok {
		return appErrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *reviewStoreStub) UpsertAnswer(ctx context.Context, answer *models.ReviewAnswer) error {
	answer.UpdatedAt = time.Now().UTC()
	s.answers[answer.ItemID] = *answer
	return nil
}

func (s *reviewStoreStub) ListAnswers(ctx context.Context, sessionID string) (map[string]models.ReviewAnswer, error) {
	out := make(map[string]models.ReviewAnswer, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out, nil
}

func testChecklist() checklistStub {
	return checklistStub{sections: []models.ChecklistSection{
		{
			ID:   "grading",
			Name: "1. Grading",
			Items: []models.ChecklistItem{
				{ID: "1.1", Description: "Drainage arrows shown", CommentIDs: []string{"BB-0001", "BB-0002"}},
				{ID: "1.2", Description: "Spot elevations provided", CommentIDs: []string{"BB-0003", "BB-0099"}},
			},
		},
		{
			ID:   "easements",
			Name: "2. Easements",
			Items: []models.ChecklistItem{
				{ID: "2.1", Description: "Easements labeled", CommentIDs: []string{"BB-0004"}},
			},
		},
	}}
}

func testComments() commentStub {
	return commentStub{texts: map[string]string{
		"BB-0001": "Show drainage arrows on the grading plan.",
		"BB-0002": "Provide flow direction at all lot corners.",
		"BB-0003": "Add spot elevations at high points.",
		"BB-0004": "Label all drainage easements.",
	}}
}

func newReviewServiceForTest(t *testing.T) (*ReviewService, *reviewStoreStub) {
	t.Helper()
	store := newReviewStoreStub()
	svc := NewReviewService(store, testChecklist(), testComments(), nil, zap.NewNop())
	return svc, store
}

func seedSession(t *testing.T, svc *ReviewService) *models.ReviewSession {
	t.Helper()
	session, err := svc.CreateSession(context.Background(), dto.CreateReviewRequest{
		ReviewType:   models.ReviewTypeStandard,
		PermitNumber: "BP-2024-0117",
		Address:      "413 W Elm St",
		Reviewer:     "KB",
	})
	require.NoError(t, err)
	return session
}

func TestReviewServiceCreateSessionValidation(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)

	_, err := svc.CreateSession(context.Background(), dto.CreateReviewRequest{
		ReviewType: models.ReviewTypeStandard,
		Address:    "413 W Elm St",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.CreateSession(context.Background(), dto.CreateReviewRequest{
		ReviewType:   models.ReviewType("Patio Permit"),
		PermitNumber: "BP-2024-0117",
		Address:      "413 W Elm St",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReviewServiceAnswerItemUnknownItem(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)
	session := seedSession(t, svc)

	_, err := svc.AnswerItem(context.Background(), session.ID, dto.AnswerItemRequest{
		ItemID: "99.1",
		Status: models.ItemStatusYes,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrUnknownItem.Code, appErrors.FromError(err).Code)
}

func TestReviewServiceAnswerItemRejectsUnsuggestedComment(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)
	session := seedSession(t, svc)

	// BB-0004 exists but belongs to item 2.1, not 1.1.
	_, err := svc.AnswerItem(context.Background(), session.ID, dto.AnswerItemRequest{
		ItemID:     "1.1",
		Status:     models.ItemStatusNo,
		CommentIDs: []string{"BB-0004"},
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrUnknownComment.Code, appErrors.FromError(err).Code)
}

func TestReviewServiceAnswerItemRejectsCommentsOnYes(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)
	session := seedSession(t, svc)

	_, err := svc.AnswerItem(context.Background(), session.ID, dto.AnswerItemRequest{
		ItemID:     "1.1",
		Status:     models.ItemStatusYes,
		CommentIDs: []string{"BB-0001"},
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReviewServiceSummaryOrdersComments(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)
	session := seedSession(t, svc)
	ctx := context.Background()

	// Answer out of checklist order; resolution must follow section and
	// item order regardless.
	_, err := svc.AnswerItem(ctx, session.ID, dto.AnswerItemRequest{
		ItemID:     "2.1",
		Status:     models.ItemStatusNo,
		CommentIDs: []string{"BB-0004"},
		CustomNote: "Easement width does not match the plat.",
	})
	require.NoError(t, err)
	_, err = svc.AnswerItem(ctx, session.ID, dto.AnswerItemRequest{
		ItemID:     "1.2",
		Status:     models.ItemStatusNo,
		CommentIDs: []string{"BB-0099", "BB-0003"},
	})
	require.NoError(t, err)
	_, err = svc.AnswerItem(ctx, session.ID, dto.AnswerItemRequest{
		ItemID: "1.1",
		Status: models.ItemStatusYes,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, summary.YesCount)
	require.Equal(t, 2, summary.NoCount)
	require.Equal(t, 0, summary.NACount)
	require.Equal(t, 3, summary.Answered)
	require.Equal(t, 3, summary.TotalItem)

	// BB-0099 has no text in the comment table and is skipped. The custom
	// note for 2.1 lands after its selected comment.
	require.Equal(t, []string{
		"Add spot elevations at high points.",
		"Label all drainage easements.",
		"Easement width does not match the plat.",
	}, summary.Comments)
}

func TestReviewServiceSummarySessionNotFound(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)

	_, err := svc.Summary(context.Background(), "missing")
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}
