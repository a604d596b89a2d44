package agro

import (
	"time"

	"github.com/pkg/errors"

	"agro-advisor/internal/models"
)

// Aggregate folds observations into per-day summaries, keyed by the
// region-local calendar date (models.DateLayout). It is a pure function:
// the same input always produces the same output.
//
// An empty input yields an empty map, not an error. A missing timestamp,
// temperature or humidity is a fatal validation failure; only precipitation
// may be absent, and the decode layer has already defaulted it to zero.
func Aggregate(observations []models.Observation, loc *time.Location) (map[string]*models.DailySummary, error) {
	if loc == nil {
		loc = time.UTC
	}

	daily := make(map[string]*models.DailySummary)

	for i, obs := range observations {
		switch {
		case obs.Timestamp == nil || obs.Timestamp.IsZero():
			return nil, errors.Errorf("observation %d: missing timestamp", i)
		case obs.TemperatureC == nil:
			return nil, errors.Errorf("observation %d: missing temperature", i)
		case obs.HumidityPct == nil:
			return nil, errors.Errorf("observation %d: missing humidity", i)
		}

		local := obs.Timestamp.In(loc)
		key := local.Format(models.DateLayout)

		summary, ok := daily[key]
		if !ok {
			midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
			summary = models.NewDailySummary(midnight)
			daily[key] = summary
		}

		temp := *obs.TemperatureC
		summary.TempSum += temp
		summary.TempCount++
		if temp < summary.MinTemp {
			summary.MinTemp = temp
		}
		if temp > summary.MaxTemp {
			summary.MaxTemp = temp
		}

		summary.RainSum += obs.PrecipitationMM
		summary.HumiditySum += *obs.HumidityPct
		summary.Conditions.Add(obs.Conditions...)
	}

	return daily, nil
}
