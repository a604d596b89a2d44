package models

// Insight is a finalized daily summary annotated with crop-specific advisory
// messages. Immutable once created; values are rounded to one decimal.
type Insight struct {
	Date           string   `json:"date" example:"2025-07-25"`
	AvgTemp        float64  `json:"avg_temp" example:"24.3"`
	MaxTemp        float64  `json:"max_temp" example:"31.0"`
	MinTemp        float64  `json:"min_temp" example:"18.2"`
	TotalRainMM    float64  `json:"total_rain_mm" example:"3.4"`
	AvgHumidityPct float64  `json:"avg_humidity_pct" example:"68.5"`
	Conditions     string   `json:"conditions" example:"Clouds, Rain"`
	Advisories     []string `json:"advisories"`
}
