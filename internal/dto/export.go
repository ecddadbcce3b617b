package dto

import "github.com/cob-engineering/plan-review-api/internal/models"

// ExportRequest captures POST /reviews/:id/exports payload.
type ExportRequest struct {
	Format models.ExportFormat `json:"format" validate:"required"`
}

// ExportJobResponse is returned after enqueueing an export.
type ExportJobResponse struct {
	ID     string              `json:"id"`
	Status models.ExportStatus `json:"status"`
}

// ExportStatusResponse exposes export job metadata.
type ExportStatusResponse struct {
	ID          string              `json:"id"`
	SessionID   string              `json:"session_id"`
	Format      models.ExportFormat `json:"format"`
	Status      models.ExportStatus `json:"status"`
	DownloadURL *string             `json:"download_url,omitempty"`
	Error       *string             `json:"error,omitempty"`
}
