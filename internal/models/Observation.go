package models

import "time"

// Observation is a single timestamped weather reading from a forecast
// provider. Timestamp, temperature and humidity are pointers so that a
// missing field is distinguishable from a zero value; precipitation is the
// one field providers commonly omit, so it defaults to zero at decode time.
type Observation struct {
	Timestamp       *time.Time `json:"timestamp" example:"2025-07-25T12:00:00Z"`
	TemperatureC    *float64   `json:"temperature_c" example:"26.4"`
	HumidityPct     *float64   `json:"humidity_pct" example:"72"`
	PrecipitationMM float64    `json:"precipitation_mm" example:"1.2"`
	Conditions      []string   `json:"conditions" example:"Rain,Clouds"`
}
