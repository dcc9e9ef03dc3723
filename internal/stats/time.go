package stats

import "github.com/rileyhilliard/bikeshare/internal/trips"

// TimeStats holds the most frequent travel times. Month and Day are only
// computed when the filter leaves them open; a filtered dimension already
// determines the answer.
type TimeStats struct {
	Month Popular[int]
	Day   Popular[int]
	Hour  Popular[int]

	MonthFiltered bool
	DayFiltered   bool
}

// Times computes the popular month, day of week and start hour.
func Times(ds *trips.Dataset, f trips.Filter) TimeStats {
	st := TimeStats{
		MonthFiltered: !f.AllMonths(),
		DayFiltered:   !f.AllDays(),
	}

	if !st.MonthFiltered {
		if months, ok := ds.Ints(trips.ColMonth); ok {
			st.Month = Mode(months)
		}
	}
	if !st.DayFiltered {
		if days, ok := ds.Ints(trips.ColDayOfWeek); ok {
			st.Day = Mode(days)
		}
	}
	if hours, ok := ds.Ints(trips.ColHour); ok {
		st.Hour = Mode(hours)
	}
	return st
}
