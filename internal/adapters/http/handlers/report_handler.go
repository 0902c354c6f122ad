package handlers

import (
	"fmt"

	"embox/internal/core/services"
	"embox/internal/pkg/response"
	"embox/internal/reports"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Financial handles the financial report
// @Summary Financial report
// @Description Monthly ledger rows plus income/expense/net totals, as json, xlsx or pdf
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param month query string true "Month (YYYY-MM)"
// @Param format query string false "json|xlsx|pdf" default(json)
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return response.BadRequest(c, "month query parameter is required")
	}

	report, err := h.reportService.Financial(c.Context(), month)
	if err != nil {
		return response.FromError(c, err, "Failed to build report")
	}

	renderer := reports.ForFormat(c.Query("format", "json"))
	if renderer == nil {
		return response.Success(c, "", report)
	}

	data, err := renderer.RenderFinancial(report)
	if err != nil {
		return response.FromError(c, err, "Failed to render report")
	}

	return sendFile(c, renderer, fmt.Sprintf("financial-%s", month), data)
}

// Members handles the membership report
// @Summary Members report
// @Description Customer rows with computed membership status plus per-status counts
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param format query string false "json|xlsx|pdf" default(json)
// @Success 200 {object} response.Body
// @Router /reports/members [get]
func (h *ReportHandler) Members(c *fiber.Ctx) error {
	report, err := h.reportService.Members(c.Context())
	if err != nil {
		return response.FromError(c, err, "Failed to build report")
	}

	renderer := reports.ForFormat(c.Query("format", "json"))
	if renderer == nil {
		return response.Success(c, "", report)
	}

	data, err := renderer.RenderMembers(report)
	if err != nil {
		return response.FromError(c, err, "Failed to render report")
	}

	return sendFile(c, renderer, fmt.Sprintf("members-%s", report.GeneratedAt), data)
}

func sendFile(c *fiber.Ctx, renderer reports.Renderer, name string, data []byte) error {
	filename := fmt.Sprintf("%s.%s", name, renderer.FileExtension())
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
