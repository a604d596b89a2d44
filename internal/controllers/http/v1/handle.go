package http

import (
	"github.com/gofiber/fiber/v2"

	"agro-advisor/internal/models"
)

// AdvisoriesResponse represents the structured advisory response
type AdvisoriesResponse struct {
	ReportID string           `json:"report_id" example:"7b6f31c4-6f1d-4f8e-9a6a-0a9a3a1d3a7f"`
	Crop     string           `json:"crop" example:"maize"`
	Region   string           `json:"region" example:"Nyanza"`
	Insights []models.Insight `json:"insights"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to generate advisories"`
}

// GetAdvisories godoc
// @Summary Get daily crop advisories
// @Description Aggregates the multi-day forecast for the configured region into daily summaries and evaluates crop-specific advisory rules
// @Tags Advisories
// @Accept json
// @Produce json
// @Param crop query string false "Crop name (maize, tea, beans); unknown names fall back to the default crop" example(maize)
// @Success 200 {object} AdvisoriesResponse "Successful response"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /advisories [get]
func (r *routes) handleAdvisories(c *fiber.Ctx) error {
	crop := c.Query("crop")

	report, err := r.service.GenerateReport(c.Context(), crop)
	if err != nil {
		r.l.Error(err, map[string]any{"crop": crop})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to generate advisories",
		})
	}

	return c.JSON(AdvisoriesResponse{
		ReportID: report.ID,
		Crop:     report.Crop,
		Region:   report.Region,
		Insights: report.Insights,
	})
}

// GetAdvisoryReport godoc
// @Summary Get the rendered farmer report
// @Description Returns the advisory report as the plain-text message sent to farmers
// @Tags Advisories
// @Produce plain
// @Param crop query string false "Crop name (maize, tea, beans); unknown names fall back to the default crop" example(maize)
// @Success 200 {string} string "Rendered report"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /advisories/report [get]
func (r *routes) handleReport(c *fiber.Ctx) error {
	crop := c.Query("crop")

	report, err := r.service.GenerateReport(c.Context(), crop)
	if err != nil {
		r.l.Error(err, map[string]any{"crop": crop})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to generate advisories",
		})
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(report.Message)
}
