package models

import (
	"math"
	"time"
)

// DateLayout is the canonical calendar-date format used as the grouping key
// for daily aggregation.
const DateLayout = "2006-01-02"

// DailySummary accumulates statistics for all observations sharing one
// region-local calendar date. Sums and counts are folded incrementally;
// averages are computed at finalization via AvgTemp/AvgHumidity.
type DailySummary struct {
	Date        time.Time
	TempSum     float64
	TempCount   int
	MinTemp     float64
	MaxTemp     float64
	RainSum     float64
	HumiditySum float64
	Conditions  *ConditionSet
}

func NewDailySummary(date time.Time) *DailySummary {
	return &DailySummary{
		Date:       date,
		MinTemp:    math.Inf(1),
		MaxTemp:    math.Inf(-1),
		Conditions: NewConditionSet(),
	}
}

func (d *DailySummary) AvgTemp() float64 {
	if d.TempCount == 0 {
		return 0
	}
	return d.TempSum / float64(d.TempCount)
}

func (d *DailySummary) AvgHumidity() float64 {
	if d.TempCount == 0 {
		return 0
	}
	return d.HumiditySum / float64(d.TempCount)
}
