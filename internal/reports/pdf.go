package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"embox/internal/core/services"
)

// PDFRenderer renders reports as PDF documents
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// ContentType returns the PDF MIME type
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// FileExtension returns the file extension
func (r *PDFRenderer) FileExtension() string {
	return "pdf"
}

// RenderFinancial writes one month of ledger rows plus totals
func (r *PDFRenderer) RenderFinancial(report *services.FinancialReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Financial report %s", report.Month))
	pdf.Ln(12)

	widths := []float64{30, 25, 90, 30}
	headers := []string{"Date", "Type", "Concept", "Amount"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range report.Rows {
		pdf.CellFormat(widths[0], 7, line.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, line.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, line.Concept, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	for _, total := range []struct {
		label string
		value float64
	}{
		{"Income", report.Income},
		{"Expense", report.Expense},
		{"Net", report.Net},
	} {
		pdf.CellFormat(145, 7, total.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", total.value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderMembers writes annotated customer rows plus status counts
func (r *PDFRenderer) RenderMembers(report *services.MembersReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Members report %s", report.GeneratedAt))
	pdf.Ln(12)

	widths := []float64{55, 35, 30, 30, 30, 25, 25, 35}
	headers := []string{"Full Name", "Phone", "Plan", "Inscription", "Due Date", "Fee", "Lifecycle", "Member Status"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, member := range report.Rows {
		pdf.CellFormat(widths[0], 7, member.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, member.Phone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, member.PlanName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, member.InscriptionDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, member.DueDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", member.MonthlyFee), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 7, member.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[7], 7, member.MemberStatus, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(0, 7, fmt.Sprintf("Due today: %d   Due tomorrow: %d   Overdue: %d   Active: %d",
		report.DueToday, report.DueTomorrow, report.Overdue, report.Active))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
