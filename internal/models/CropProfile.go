package models

// CropProfile holds the static agronomic parameters for one crop type.
// Rainfall thresholds are part of the profile so deployments can tune them
// per crop without code changes.
type CropProfile struct {
	Name            string  `json:"name" example:"maize"`
	OptimalTempLow  float64 `json:"optimal_temp_low" example:"20"`
	OptimalTempHigh float64 `json:"optimal_temp_high" example:"30"`
	WaterNeedMM     float64 `json:"water_need_mm" example:"500"`
	RiskTempC       float64 `json:"risk_temp_c" example:"35"`
	RainLowMM       float64 `json:"rain_low_mm" example:"5"`
	RainHighMM      float64 `json:"rain_high_mm" example:"20"`
}
