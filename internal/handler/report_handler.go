package handler

import (
	"time"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

const dateLayout = "2006-01-02"

// GetSalesReport returns the sales report for a date range
// GET /api/v1/reports/sales?start_date=2025-01-01&end_date=2025-01-31&branch_id=...
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")
	if startRaw == "" || endRaw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start_date and end_date are required"})
	}

	startDate, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date, use YYYY-MM-DD"})
	}
	endDate, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date, use YYYY-MM-DD"})
	}
	if endDate.Before(startDate) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must not be before start_date"})
	}
	// Make the range inclusive of the whole end day.
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}

	report, err := h.service.GetSalesReport(c.Context(), startDate, endDate, branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sales report generated", "data": report})
}

// GetDailySummary returns today's sales (or a specific day via ?date=)
// GET /api/v1/reports/daily
func (h *ReportHandler) GetDailySummary(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, use YYYY-MM-DD"})
		}
		day = parsed
	}

	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}

	report, err := h.service.GetDailySummary(c.Context(), day, branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Daily summary generated", "data": report})
}
