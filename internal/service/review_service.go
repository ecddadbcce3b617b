package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

type checklistStore interface {
	SectionsForReviewType(rt models.ReviewType) []models.ChecklistSection
	Item(id string) (models.ChecklistItem, error)
	ReviewTypes() []models.ReviewType
	ReviewerInitials() []string
}

type commentStore interface {
	Get(id string) (models.Comment, error)
}

type reviewStore interface {
	CreateSession(ctx context.Context, session *models.ReviewSession) error
	GetSession(ctx context.Context, id string) (*models.ReviewSession, error)
	ListSessions(ctx context.Context, page, pageSize int) ([]models.ReviewSession, int, error)
	DeleteSession(ctx context.Context, id string) error
	UpsertAnswer(ctx context.Context, answer *models.ReviewAnswer) error
	ListAnswers(ctx context.Context, sessionID string) (map[string]models.ReviewAnswer, error)
}

// ReviewService drives the checklist wizard: sessions, item verdicts,
// and the resolved comment list that feeds the exports.
type ReviewService struct {
	reviews    reviewStore
	checklists checklistStore
	comments   commentStore
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewReviewService constructs the service.
func NewReviewService(reviews reviewStore, checklists checklistStore, comments commentStore, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ReviewService{
		reviews:    reviews,
		checklists: checklists,
		comments:   comments,
		validator:  validate,
		logger:     logger,
	}
	svc.validator.RegisterValidation("item_status", func(fl validator.FieldLevel) bool {
		return models.ItemStatus(fl.Field().String()).Valid()
	})
	return svc
}

// CreateSession validates the request and persists a new review session.
func (s *ReviewService) CreateSession(ctx context.Context, req dto.CreateReviewRequest) (*models.ReviewSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if !req.ReviewType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported review type")
	}

	session := &models.ReviewSession{
		ReviewType:   req.ReviewType,
		PermitNumber: strings.TrimSpace(req.PermitNumber),
		Address:      strings.TrimSpace(req.Address),
		Reviewer:     strings.TrimSpace(req.Reviewer),
	}
	if err := s.reviews.CreateSession(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review session")
	}
	s.logger.Sugar().Infow("review session created", "session_id", session.ID, "review_type", session.ReviewType)
	return session, nil
}

// GetSession loads one review session.
func (s *ReviewService) GetSession(ctx context.Context, id string) (*models.ReviewSession, error) {
	return s.reviews.GetSession(ctx, id)
}

// ListSessions pages through review sessions newest first.
func (s *ReviewService) ListSessions(ctx context.Context, page, pageSize int) ([]models.ReviewSession, *models.Pagination, error) {
	sessions, total, err := s.reviews.ListSessions(ctx, page, pageSize)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list review sessions")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return sessions, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// DeleteSession removes a session and its answers.
func (s *ReviewService) DeleteSession(ctx context.Context, id string) error {
	return s.reviews.DeleteSession(ctx, id)
}

// Checklist returns the sections applicable to the session's review type.
func (s *ReviewService) Checklist(ctx context.Context, sessionID string) ([]models.ChecklistSection, error) {
	session, err := s.reviews.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.checklists.SectionsForReviewType(session.ReviewType), nil
}

// AnswerItem records the verdict for one checklist item. The item must
// apply to the session's review type, and selected comments must be both
// known and suggested by the item.
func (s *ReviewService) AnswerItem(ctx context.Context, sessionID string, req dto.AnswerItemRequest) (*models.ReviewAnswer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	session, err := s.reviews.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.checklists.Item(req.ItemID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnknownItem, "unknown checklist item "+req.ItemID)
	}
	if !item.AppliesToType(session.ReviewType) {
		return nil, appErrors.ErrUnknownItem
	}

	if req.Status != models.ItemStatusNo && (len(req.CommentIDs) > 0 || strings.TrimSpace(req.CustomNote) != "") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "comments are only recorded for items marked no")
	}
	// Selections are limited to the item's suggested comments. A suggested
	// ID with no text in the comment table is still accepted; resolution
	// skips it.
	for _, cid := range req.CommentIDs {
		if !containsID(item.CommentIDs, cid) {
			return nil, appErrors.Clone(appErrors.ErrUnknownComment, "comment "+cid+" is not suggested for item "+item.ID)
		}
	}

	answer := &models.ReviewAnswer{
		SessionID:  sessionID,
		ItemID:     req.ItemID,
		Status:     req.Status,
		CommentIDs: models.StringList(req.CommentIDs),
		CustomNote: req.CustomNote,
	}
	if err := s.reviews.UpsertAnswer(ctx, answer); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record answer")
	}
	return answer, nil
}

// Summary aggregates verdict counts and the resolved comment list.
func (s *ReviewService) Summary(ctx context.Context, sessionID string) (*models.ReviewSummary, error) {
	session, err := s.reviews.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answers, err := s.reviews.ListAnswers(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load answers")
	}

	summary := &models.ReviewSummary{Session: *session}
	sections := s.checklists.SectionsForReviewType(session.ReviewType)
	for _, section := range sections {
		summary.TotalItem += len(section.Items)
		for _, item := range section.Items {
			answer, ok := answers[item.ID]
			if !ok {
				continue
			}
			summary.Answered++
			switch answer.Status {
			case models.ItemStatusYes:
				summary.YesCount++
			case models.ItemStatusNo:
				summary.NoCount++
			case models.ItemStatusNA:
				summary.NACount++
			}
		}
	}
	summary.Comments = s.resolveComments(sections, answers)
	return summary, nil
}

// ResolveComments returns the ordered comment list for a session: section
// order, then item order, then the item's selected comment texts followed
// by its custom note. Only items marked "no" contribute.
func (s *ReviewService) ResolveComments(ctx context.Context, sessionID string) ([]string, error) {
	session, err := s.reviews.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answers, err := s.reviews.ListAnswers(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load answers")
	}
	return s.resolveComments(s.checklists.SectionsForReviewType(session.ReviewType), answers), nil
}

func (s *ReviewService) resolveComments(sections []models.ChecklistSection, answers map[string]models.ReviewAnswer) []string {
	comments := make([]string, 0)
	for _, section := range sections {
		for _, item := range section.Items {
			answer, ok := answers[item.ID]
			if !ok || answer.Status != models.ItemStatusNo {
				continue
			}
			for _, cid := range answer.CommentIDs {
				comment, err := s.comments.Get(cid)
				if err != nil || comment.Text == "" {
					continue
				}
				comments = append(comments, comment.Text)
			}
			if strings.TrimSpace(answer.CustomNote) != "" {
				comments = append(comments, answer.CustomNote)
			}
		}
	}
	return comments
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
