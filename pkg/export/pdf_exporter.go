package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReviewSummary carries the header block of a review summary document.
type ReviewSummary struct {
	ReviewType   string
	PermitNumber string
	Address      string
	Reviewer     string
	ReviewDate   string
	YesCount     int
	NoCount      int
	NACount      int
}

// PDFExporter renders a review summary and its comments into a PDF, the
// printable artifact reviewers hand to applicants.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a Letter-format PDF with the project header, the review
// tally and the numbered comment list.
func (e *PDFExporter) Render(summary ReviewSummary, comments []string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(54, 54, 54)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, "Engineering Plan Review Comments", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 16, "Project Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range [][2]string{
		{"Review Type", orNotSpecified(summary.ReviewType)},
		{"Permit Number", orNotSpecified(summary.PermitNumber)},
		{"Address", orNotSpecified(summary.Address)},
		{"Reviewer", orNotSpecified(summary.Reviewer)},
		{"Review Date", summary.ReviewDate},
	} {
		pdf.CellFormat(120, 14, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 14, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 16, "Review Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	total := summary.YesCount + summary.NoCount + summary.NACount
	pdf.CellFormat(0, 14, fmt.Sprintf("Total Items Reviewed: %d", total), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Compliant (Yes): %d", summary.YesCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Issues Found (No): %d", summary.NoCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Not Applicable: %d", summary.NACount), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 16, "Review Comments", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(comments) == 0 {
		pdf.CellFormat(0, 14, "No issues found - all items compliant or not applicable.", "", 1, "L", false, 0, "")
	} else {
		for i, comment := range comments {
			pdf.MultiCell(0, 13, fmt.Sprintf("%d. %s", i+1, comment), "", "L", false)
			pdf.Ln(4)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
