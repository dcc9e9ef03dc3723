package stats

import "github.com/rileyhilliard/bikeshare/internal/trips"

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start Popular[string]
	End   Popular[string]
	Route Popular[string]
}

// Route names a trip from start to end.
func Route(start, end string) string {
	return "from " + start + " to " + end
}

// Stations computes the popular start station, end station and route.
// A route needs both stations; rows missing either are skipped.
func Stations(ds *trips.Dataset) StationStats {
	starts, _ := ds.Strings(trips.ColStartStation)
	ends, _ := ds.Strings(trips.ColEndStation)

	routes := make([]string, 0, len(starts))
	for i := range starts {
		if i >= len(ends) || starts[i] == "" || ends[i] == "" {
			continue
		}
		routes = append(routes, Route(starts[i], ends[i]))
	}

	return StationStats{
		Start: Mode(nonEmpty(starts)),
		End:   Mode(nonEmpty(ends)),
		Route: Mode(routes),
	}
}
