package agro

import (
	"fmt"
	"strings"

	"agro-advisor/internal/models"
)

// NoDataMessage is rendered when the forecast returned no observations.
const NoDataMessage = "No weather data available. Please try again later."

// RenderReport formats insights into the farmer-facing text message.
// Insights must already be in chronological order.
func RenderReport(insights []models.Insight, crop, region string) string {
	if len(insights) == 0 {
		return NoDataMessage
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🌱 Weather Forecast for %s Farmers in %s 🌱\n", capitalize(crop), region)

	for _, day := range insights {
		fmt.Fprintf(&b, "\n📅 %s\n", day.Date)
		fmt.Fprintf(&b, "🌡️ Temp: %.1f°C - %.1f°C (Avg: %.1f°C)\n", day.MinTemp, day.MaxTemp, day.AvgTemp)
		fmt.Fprintf(&b, "💧 Rain: %.1fmm | Humidity: %.1f%%\n", day.TotalRainMM, day.AvgHumidityPct)
		fmt.Fprintf(&b, "⛅ Conditions: %s\n", day.Conditions)

		if len(day.Advisories) > 0 {
			b.WriteString("\n🔍 Recommendations:\n")
			for _, advisory := range day.Advisories {
				fmt.Fprintf(&b, "- %s\n", advisory)
			}
		} else {
			b.WriteString("\n✅ Conditions look favorable for your crops!\n")
		}
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
