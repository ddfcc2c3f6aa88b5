package handler

import (
	"time"

	"go-bakery-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetDailySummary returns today's totals for the dashboard.
func (h *ReportHandler) GetDailySummary(c *fiber.Ctx) error {
	summary, err := h.service.GetDailySummary(time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute daily summary"})
	}
	return c.JSON(summary)
}

func (h *ReportHandler) GetCashBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.service.GetCashBreakdown()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute cash breakdown"})
	}
	return c.JSON(breakdown)
}

// GetLicenseExpiry serves both the notification scheduler and the reports
// screen: the classified list plus the counts.
func (h *ReportHandler) GetLicenseExpiry(c *fiber.Ctx) error {
	now := time.Now()
	statuses, err := h.service.GetLicenseStatuses(now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to classify licenses"})
	}
	stats, err := h.service.GetLicenseExpiryStats(now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute license stats"})
	}
	return c.JSON(fiber.Map{"stats": stats, "licenses": statuses})
}

func (h *ReportHandler) GetDiskExpiry(c *fiber.Ctx) error {
	now := time.Now()
	statuses, err := h.service.GetDiskStatuses(now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to classify license disks"})
	}
	stats, err := h.service.GetDiskExpiryStats(now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute disk stats"})
	}
	return c.JSON(fiber.Map{"stats": stats, "vehicles": statuses})
}
