package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"embox/internal/core/services"
)

// ExcelRenderer renders reports as xlsx workbooks
type ExcelRenderer struct{}

// NewExcelRenderer creates a new Excel renderer
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// ContentType returns the xlsx MIME type
func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the file extension
func (r *ExcelRenderer) FileExtension() string {
	return "xlsx"
}

// RenderFinancial writes one month of ledger rows plus totals
func (r *ExcelRenderer) RenderFinancial(report *services.FinancialReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Financial"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Type", "Concept", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, line := range report.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Concept)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.Amount)
		row++
	}

	row++ // blank line before totals
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Income")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.Income)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Expense")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.Expense)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Net")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.Net)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderMembers writes annotated customer rows plus status counts
func (r *ExcelRenderer) RenderMembers(report *services.MembersReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Members"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Full Name", "Phone", "Plan", "Inscription", "Due Date", "Fee", "Lifecycle", "Member Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, member := range report.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), member.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), member.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), member.PlanName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), member.InscriptionDate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), member.DueDate)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), member.MonthlyFee)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), member.Status)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), member.MemberStatus)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Due today")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.DueToday)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Due tomorrow")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.DueTomorrow)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Overdue")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.Overdue)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Active")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.Active)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
