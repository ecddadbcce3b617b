package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cob-engineering/plan-review-api/internal/models"
	"github.com/cob-engineering/plan-review-api/pkg/bax"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
	"github.com/cob-engineering/plan-review-api/pkg/export"
	"github.com/cob-engineering/plan-review-api/pkg/storage"
)

type reviewSummarizer interface {
	Summary(ctx context.Context, sessionID string) (*models.ReviewSummary, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type commentsCSVRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type summaryPDFRenderer interface {
	Render(summary export.ReviewSummary, comments []string) ([]byte, error)
}

// GeneratorConfig tunes export generation behaviour.
type GeneratorConfig struct {
	APIPrefix            string
	ResultTTL            time.Duration
	PDFDateOffsetMinutes int
	AuthorFallback       string
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Filename     string
	ExpiresAt    time.Time
}

// ExportGenerator renders review data to the requested format and persists
// the resulting file behind a signed download token.
type ExportGenerator struct {
	reviews reviewSummarizer
	storage fileStorage
	encoder *bax.Encoder
	csv     commentsCSVRenderer
	pdf     summaryPDFRenderer
	signer  *storage.SignedURLSigner
	logger  *zap.Logger
	cfg     GeneratorConfig
}

// NewExportGenerator constructs a generator.
func NewExportGenerator(reviews reviewSummarizer, files fileStorage, signer *storage.SignedURLSigner, cfg GeneratorConfig, logger *zap.Logger) *ExportGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportGenerator{
		reviews: reviews,
		storage: files,
		encoder: bax.NewEncoder(bax.Config{
			AuthorFallback:   cfg.AuthorFallback,
			UTCOffsetMinutes: cfg.PDFDateOffsetMinutes,
		}, nil, nil),
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		signer: signer,
		logger: logger,
		cfg:    cfg,
	}
}

// Generate renders the job's format and stores the file.
func (g *ExportGenerator) Generate(ctx context.Context, job *models.ExportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	summary, err := g.reviews.Summary(ctx, job.SessionID)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Format {
	case models.ExportFormatBAX:
		if len(summary.Comments) == 0 {
			return nil, appErrors.ErrNothingToExport
		}
		payload, err = g.encoder.Encode(summary.Comments, summary.Session.Reviewer)
	case models.ExportFormatCSV:
		if len(summary.Comments) == 0 {
			return nil, appErrors.ErrNothingToExport
		}
		payload = export.CommentsCSV(summary.Comments)
	case models.ExportFormatPDF:
		payload, err = g.pdf.Render(pdfSummary(summary), summary.Comments)
	case models.ExportFormatSummary:
		payload, err = g.csv.Render(summaryDataset(summary))
	default:
		err = appErrors.Clone(appErrors.ErrUnsupportedExport, fmt.Sprintf("unsupported export format %s", job.Format))
	}
	if err != nil {
		return nil, err
	}

	filename := g.buildFilename(job, summary.Session.PermitNumber)
	relPath, err := g.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := g.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(g.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          fmt.Sprintf("%s/export/%s", prefix, token),
		Filename:     filename,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (g *ExportGenerator) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return g.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (g *ExportGenerator) Open(relPath string) (*os.File, error) {
	return g.storage.Open(relPath)
}

// Delete removes a stored export file.
func (g *ExportGenerator) Delete(relPath string) error {
	return g.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (g *ExportGenerator) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = g.cfg.ResultTTL
	}
	return g.storage.CleanupOlderThan(ttl)
}

func (g *ExportGenerator) buildFilename(job *models.ExportJob, permitNumber string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	permitPart := sanitizeFilename(permitNumber)
	return fmt.Sprintf("%s_%s_%s.%s", job.Format, permitPart, timestamp, exportExtension(job.Format))
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func exportExtension(format models.ExportFormat) string {
	switch format {
	case models.ExportFormatBAX:
		return "bax"
	case models.ExportFormatPDF:
		return "pdf"
	default:
		return "csv"
	}
}

// ContentType maps an export format to its download MIME type.
func ContentType(format models.ExportFormat) string {
	switch format {
	case models.ExportFormatBAX:
		return "application/octet-stream"
	case models.ExportFormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

func pdfSummary(summary *models.ReviewSummary) export.ReviewSummary {
	return export.ReviewSummary{
		ReviewType:   string(summary.Session.ReviewType),
		PermitNumber: summary.Session.PermitNumber,
		Address:      summary.Session.Address,
		Reviewer:     summary.Session.Reviewer,
		ReviewDate:   summary.Session.CreatedAt.Format("January 2, 2006"),
		YesCount:     summary.YesCount,
		NoCount:      summary.NoCount,
		NACount:      summary.NACount,
	}
}

func summaryDataset(summary *models.ReviewSummary) export.Dataset {
	session := summary.Session
	rows := []map[string]string{
		{"Field": "Review Type", "Value": string(session.ReviewType)},
		{"Field": "Permit Number", "Value": session.PermitNumber},
		{"Field": "Address", "Value": session.Address},
		{"Field": "Reviewer", "Value": session.Reviewer},
		{"Field": "Review Date", "Value": session.CreatedAt.UTC().Format(time.RFC3339)},
		{"Field": "Items Answered", "Value": fmt.Sprintf("%d of %d", summary.Answered, summary.TotalItem)},
		{"Field": "Yes", "Value": fmt.Sprintf("%d", summary.YesCount)},
		{"Field": "No", "Value": fmt.Sprintf("%d", summary.NoCount)},
		{"Field": "N/A", "Value": fmt.Sprintf("%d", summary.NACount)},
		{"Field": "Comments", "Value": fmt.Sprintf("%d", len(summary.Comments))},
	}
	return export.Dataset{
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}
}
