package stats

import (
	"math"

	"github.com/rileyhilliard/bikeshare/internal/trips"
)

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	Trips       int
	TotalHours  float64
	MeanMinutes float64
}

// Durations sums and averages Trip Duration (seconds). MeanMinutes is NaN
// when no trip has a duration.
func Durations(ds *trips.Dataset) DurationStats {
	raw, _ := ds.Floats(trips.ColTripDuration)
	secs := finite(raw)

	var total float64
	for _, s := range secs {
		total += s
	}

	mean := math.NaN()
	if len(secs) > 0 {
		mean = total / float64(len(secs))
	}

	return DurationStats{
		Trips:       len(secs),
		TotalHours:  total / 60 / 60,
		MeanMinutes: mean / 60,
	}
}
