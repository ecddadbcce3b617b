package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/cob-engineering/plan-review-api/internal/models"
)

func TestExportRepositoryCreateDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExportRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO export_jobs")).
		WithArgs(sqlmock.AnyArg(), "sess-1", "bax", "QUEUED", nil, nil, sqlmock.AnyArg(), nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	job := &models.ExportJob{SessionID: "sess-1", Format: models.ExportFormatBAX}
	require.NoError(t, repo.Create(context.Background(), job))
	require.NotEmpty(t, job.ID)
	require.Equal(t, models.ExportStatusQueued, job.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExportRepository(db)
	now := time.Now()
	status := models.ExportStatusFinished
	filename := "bax/sess-1.bax"
	url := "/api/v1/exports/download/token"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE export_jobs SET status = ?, filename = ?, download_url = ?, finished_at = ? WHERE id = ?")).
		WithArgs(status, filename, url, now, "exp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "exp-1", UpdateExportJobParams{
		Status:      &status,
		Filename:    &filename,
		DownloadURL: &url,
		FinishedAt:  &now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportRepositoryListFinishedBefore(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExportRepository(db)
	rows := sqlmock.NewRows([]string{"id", "session_id", "format", "status", "filename", "download_url", "created_at", "finished_at", "error_message"}).
		AddRow("exp-1", "sess-1", "csv", "FINISHED", "csv/sess-1.csv", nil, time.Now().Add(-48*time.Hour), time.Now().Add(-25*time.Hour), nil)
	mock.ExpectQuery("SELECT id, session_id, format, status").
		WithArgs(sqlmock.AnyArg(), 50).
		WillReturnRows(rows)

	jobs, err := repo.ListFinishedBefore(context.Background(), time.Now(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, models.ExportFormatCSV, jobs[0].Format)
	require.NoError(t, mock.ExpectationsWereMet())
}
