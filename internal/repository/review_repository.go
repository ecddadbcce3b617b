package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

// ReviewRepository persists review sessions and their item answers.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs the repository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateSession inserts a new review session row with generated defaults.
func (r *ReviewRepository) CreateSession(ctx context.Context, session *models.ReviewSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = session.CreatedAt

	const query = `INSERT INTO review_sessions (id, review_type, permit_number, address, reviewer, created_at, updated_at)
VALUES (:id, :review_type, :permit_number, :address, :reviewer, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create review session: %w", err)
	}
	return nil
}

// GetSession returns a session row by its identifier.
func (r *ReviewRepository) GetSession(ctx context.Context, id string) (*models.ReviewSession, error) {
	const query = `SELECT id, review_type, permit_number, address, reviewer, created_at, updated_at
FROM review_sessions WHERE id = ?`
	var session models.ReviewSession
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get review session: %w", err)
	}
	return &session, nil
}

// ListSessions returns sessions newest first with total count for paging.
func (r *ReviewRepository) ListSessions(ctx context.Context, page, pageSize int) ([]models.ReviewSession, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM review_sessions`); err != nil {
		return nil, 0, fmt.Errorf("count review sessions: %w", err)
	}

	const query = `SELECT id, review_type, permit_number, address, reviewer, created_at, updated_at
FROM review_sessions ORDER BY created_at DESC LIMIT ? OFFSET ?`
	sessions := make([]models.ReviewSession, 0, pageSize)
	if err := r.db.SelectContext(ctx, &sessions, query, pageSize, (page-1)*pageSize); err != nil {
		return nil, 0, fmt.Errorf("list review sessions: %w", err)
	}
	return sessions, total, nil
}

// DeleteSession removes a session and, via cascade, its answers.
func (r *ReviewRepository) DeleteSession(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete review session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}

// UpsertAnswer stores or replaces the verdict for one checklist item and
// touches the session's updated_at.
func (r *ReviewRepository) UpsertAnswer(ctx context.Context, answer *models.ReviewAnswer) error {
	if answer.UpdatedAt.IsZero() {
		answer.UpdatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin answer upsert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const upsert = `INSERT INTO review_answers (session_id, item_id, status, comment_ids, custom_note, updated_at)
VALUES (:session_id, :item_id, :status, :comment_ids, :custom_note, :updated_at)
ON CONFLICT (session_id, item_id) DO UPDATE SET
	status = excluded.status,
	comment_ids = excluded.comment_ids,
	custom_note = excluded.custom_note,
	updated_at = excluded.updated_at`
	if _, err := tx.NamedExecContext(ctx, upsert, answer); err != nil {
		return fmt.Errorf("upsert review answer: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE review_sessions SET updated_at = ? WHERE id = ?`, answer.UpdatedAt, answer.SessionID); err != nil {
		return fmt.Errorf("touch review session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit answer upsert: %w", err)
	}
	return nil
}

// ListAnswers returns all answers recorded for a session keyed by item ID.
func (r *ReviewRepository) ListAnswers(ctx context.Context, sessionID string) (map[string]models.ReviewAnswer, error) {
	const query = `SELECT session_id, item_id, status, comment_ids, custom_note, updated_at
FROM review_answers WHERE session_id = ?`
	var answers []models.ReviewAnswer
	if err := r.db.SelectContext(ctx, &answers, query, sessionID); err != nil {
		return nil, fmt.Errorf("list review answers: %w", err)
	}
	byItem := make(map[string]models.ReviewAnswer, len(answers))
	for _, a := range answers {
		byItem[a.ItemID] = a
	}
	return byItem, nil
}
