package models

import "time"

// ExportFormat enumerates supported export artifact formats.
type ExportFormat string

const (
	ExportFormatBAX     ExportFormat = "bax"
	ExportFormatCSV     ExportFormat = "csv"
	ExportFormatPDF     ExportFormat = "pdf"
	ExportFormatSummary ExportFormat = "summary"
)

// Valid reports whether the format is supported.
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportFormatBAX, ExportFormatCSV, ExportFormatPDF, ExportFormatSummary:
		return true
	}
	return false
}

// ExportStatus captures background export lifecycle states.
type ExportStatus string

const (
	ExportStatusQueued     ExportStatus = "QUEUED"
	ExportStatusProcessing ExportStatus = "PROCESSING"
	ExportStatusFinished   ExportStatus = "FINISHED"
	ExportStatusFailed     ExportStatus = "FAILED"
)

// ExportJob is persisted background export metadata. Filename is the
// path of the generated artifact relative to the export storage root.
type ExportJob struct {
	ID           string       `db:"id" json:"id"`
	SessionID    string       `db:"session_id" json:"session_id"`
	Format       ExportFormat `db:"format" json:"format"`
	Status       ExportStatus `db:"status" json:"status"`
	Filename     *string      `db:"filename" json:"filename,omitempty"`
	DownloadURL  *string      `db:"download_url" json:"download_url,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	FinishedAt   *time.Time   `db:"finished_at" json:"finished_at,omitempty"`
	ErrorMessage *string      `db:"error_message" json:"error_message,omitempty"`
}
