package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestReviewRepositoryCreateAndGetSession(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReviewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO review_sessions")).
		WithArgs(sqlmock.AnyArg(), "Pool Permit", "SW2025-014", "101 Maple Ln", "KB", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	session := &models.ReviewSession{
		ReviewType:   models.ReviewTypePool,
		PermitNumber: "SW2025-014",
		Address:      "101 Maple Ln",
		Reviewer:     "KB",
	}
	require.NoError(t, repo.CreateSession(context.Background(), session))
	require.NotEmpty(t, session.ID)
	require.False(t, session.CreatedAt.IsZero())

	rows := sqlmock.NewRows([]string{"id", "review_type", "permit_number", "address", "reviewer", "created_at", "updated_at"}).
		AddRow(session.ID, "Pool Permit", "SW2025-014", "101 Maple Ln", "KB", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, review_type, permit_number, address, reviewer, created_at, updated_at FROM review_sessions WHERE id = ?")).
		WithArgs(session.ID).
		WillReturnRows(rows)

	fetched, err := repo.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReviewTypePool, fetched.ReviewType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryGetSessionNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReviewRepository(db)
	mock.ExpectQuery("SELECT id, review_type").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetSession(context.Background(), "missing")
	require.ErrorIs(t, err, appErrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryUpsertAnswer(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReviewRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO review_answers")).
		WithArgs("sess-1", "2.1", "no", sqlmock.AnyArg(), "fix the silt fence detail", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE review_sessions SET updated_at = ? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	answer := &models.ReviewAnswer{
		SessionID:  "sess-1",
		ItemID:     "2.1",
		Status:     models.ItemStatusNo,
		CommentIDs: models.StringList{"BB-0062", "BB-0025"},
		CustomNote: "fix the silt fence detail",
	}
	require.NoError(t, repo.UpsertAnswer(context.Background(), answer))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryListAnswers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReviewRepository(db)
	rows := sqlmock.NewRows([]string{"session_id", "item_id", "status", "comment_ids", "custom_note", "updated_at"}).
		AddRow("sess-1", "2.1", "no", `["BB-0062"]`, "", time.Now()).
		AddRow("sess-1", "3.1", "yes", `[]`, "", time.Now())
	mock.ExpectQuery("SELECT session_id, item_id, status").
		WithArgs("sess-1").
		WillReturnRows(rows)

	answers, err := repo.ListAnswers(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	require.Equal(t, models.ItemStatusNo, answers["2.1"].Status)
	require.Equal(t, models.StringList{"BB-0062"}, answers["2.1"].CommentIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryDeleteSessionNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReviewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM review_sessions WHERE id = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.DeleteSession(context.Background(), "missing"), appErrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
