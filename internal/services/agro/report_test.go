package agro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agro-advisor/internal/models"
	"agro-advisor/internal/services/agro"
)

func TestRenderReport_NoData(t *testing.T) {
	message := agro.RenderReport(nil, "maize", "Nyanza")

	assert.Equal(t, "No weather data available. Please try again later.", message)
}

func TestRenderReport_HeaderNamesCropAndRegion(t *testing.T) {
	insights := []models.Insight{
		{
			Date:           "2025-07-25",
			AvgTemp:        24.3,
			MinTemp:        18.2,
			MaxTemp:        31.0,
			TotalRainMM:    10.0,
			AvgHumidityPct: 68.5,
			Conditions:     "Clouds, Rain",
		},
	}

	message := agro.RenderReport(insights, "maize", "Nyanza")

	assert.Contains(t, message, "🌱 Weather Forecast for Maize Farmers in Nyanza 🌱")
	assert.Contains(t, message, "📅 2025-07-25")
	assert.Contains(t, message, "🌡️ Temp: 18.2°C - 31.0°C (Avg: 24.3°C)")
	assert.Contains(t, message, "💧 Rain: 10.0mm | Humidity: 68.5%")
	assert.Contains(t, message, "⛅ Conditions: Clouds, Rain")
}

func TestRenderReport_FavorableNoticeWhenNoAdvisories(t *testing.T) {
	insights := []models.Insight{
		{Date: "2025-07-25", Conditions: "Clear"},
	}

	message := agro.RenderReport(insights, "tea", "Nyanza")

	assert.Contains(t, message, "✅ Conditions look favorable for your crops!")
	assert.NotContains(t, message, "🔍 Recommendations:")
}

func TestRenderReport_ListsAdvisories(t *testing.T) {
	insights := []models.Insight{
		{
			Date:       "2025-07-25",
			Advisories: []string{agro.AdvisoryHeatStress, agro.AdvisoryIrrigation},
		},
	}

	message := agro.RenderReport(insights, "beans", "Nyanza")

	assert.Contains(t, message, "🔍 Recommendations:")
	assert.Contains(t, message, "- "+agro.AdvisoryHeatStress)
	assert.Contains(t, message, "- "+agro.AdvisoryIrrigation)
	assert.NotContains(t, message, "✅")
}

func TestRenderReport_OneBlockPerDay(t *testing.T) {
	insights := []models.Insight{
		{Date: "2025-07-25"},
		{Date: "2025-07-26"},
	}

	message := agro.RenderReport(insights, "maize", "Nyanza")

	assert.Contains(t, message, "📅 2025-07-25")
	assert.Contains(t, message, "📅 2025-07-26")
}
