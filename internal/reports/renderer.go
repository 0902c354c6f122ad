// Package reports renders computed report rows and totals into
// downloadable files. The core report service knows nothing about file
// formats; it hands this package finished rows.
package reports

import "embox/internal/core/services"

// Renderer writes a report into a file format
type Renderer interface {
	RenderFinancial(report *services.FinancialReport) ([]byte, error)
	RenderMembers(report *services.MembersReport) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ForFormat returns the renderer for a format query value, or nil for
// formats served as plain JSON.
func ForFormat(format string) Renderer {
	switch format {
	case "xlsx":
		return NewExcelRenderer()
	case "pdf":
		return NewPDFRenderer()
	default:
		return nil
	}
}
