package agro

import (
	"math"

	"agro-advisor/internal/models"
)

// Advisory messages, verbatim what farmers receive. The renderer only lays
// them out; it never rewrites them.
const (
	AdvisoryHeatStress = "⚠️ High temperature warning! Consider shading crops."
	AdvisoryColdStress = "❄️ Low temperatures may slow growth."
	AdvisoryIrrigation = "🌧️ Little rain expected. Consider irrigation."
	AdvisoryDrainage   = "🌊 Heavy rain expected. Ensure proper drainage."
	AdvisoryStorm      = "⚡ Thunderstorm expected. Secure equipment and harvest if possible."
)

const conditionThunderstorm = "Thunderstorm"

// Advise evaluates the advisory rules for one day against a crop profile.
// Rules are independent and their output order is fixed; the two temperature
// rules are mutually exclusive, heat stress taking precedence. Rain
// thresholds are strict inequalities: a day sitting exactly on a threshold
// triggers nothing.
func Advise(summary *models.DailySummary, profile models.CropProfile) models.Insight {
	advisories := make([]string, 0, 3)

	avgTemp := summary.AvgTemp()

	if summary.MaxTemp > profile.RiskTempC {
		advisories = append(advisories, AdvisoryHeatStress)
	} else if avgTemp < profile.OptimalTempLow {
		advisories = append(advisories, AdvisoryColdStress)
	}

	if summary.RainSum < profile.RainLowMM {
		advisories = append(advisories, AdvisoryIrrigation)
	} else if summary.RainSum > profile.RainHighMM {
		advisories = append(advisories, AdvisoryDrainage)
	}

	if summary.Conditions.Has(conditionThunderstorm) {
		advisories = append(advisories, AdvisoryStorm)
	}

	return models.Insight{
		Date:           summary.Date.Format(models.DateLayout),
		AvgTemp:        round1(avgTemp),
		MaxTemp:        round1(summary.MaxTemp),
		MinTemp:        round1(summary.MinTemp),
		TotalRainMM:    round1(summary.RainSum),
		AvgHumidityPct: round1(summary.AvgHumidity()),
		Conditions:     summary.Conditions.Join(", "),
		Advisories:     advisories,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
