// Package report prints the four statistics sections for a dataset.
package report

import (
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rileyhilliard/bikeshare/internal/stats"
	"github.com/rileyhilliard/bikeshare/internal/trips"
	"github.com/rileyhilliard/bikeshare/internal/ui"
)

const emptySelection = "No trips match your filter."

// Reporter writes statistics sections to w.
type Reporter struct {
	w      io.Writer
	timing bool
	now    func() time.Time
}

// New creates a reporter. When timing is set each section ends with the
// time it took.
func New(w io.Writer, timing bool) *Reporter {
	return &Reporter{w: w, timing: timing, now: time.Now}
}

// All prints every section in order: times, stations, durations, users.
func (r *Reporter) All(ds *trips.Dataset, f trips.Filter) {
	r.Times(ds, f)
	r.Stations(ds)
	r.Durations(ds)
	r.Users(ds)
}

// Times prints the most frequent month, day of week and start hour.
func (r *Reporter) Times(ds *trips.Dataset, f trips.Filter) stats.TimeStats {
	start := r.now()
	s := ui.NewSection(r.w, "Calculating The Most Frequent Times of Travel")
	st := stats.Times(ds, f)

	switch {
	case st.MonthFiltered:
		idx, _ := trips.MonthIndex(f.Month)
		s.Stat("You filtered data for %s, so that's the most common month in the dataset.", trips.MonthName(idx))
	case st.Month.Found:
		s.Stat("The most frequent month for travelling is %s.", trips.MonthName(st.Month.Value))
	}

	switch {
	case st.DayFiltered:
		idx, _ := trips.DayIndex(f.Day)
		s.Stat("You filtered data for %s, so that's the most common day of week in the dataset.", trips.DayName(idx))
	case st.Day.Found:
		s.Stat("The most frequent day of week for travelling is %s.", trips.DayName(st.Day.Value))
	}

	if st.Hour.Found {
		s.Stat("The most frequent start hour for travelling is %d o'clock.", st.Hour.Value)
	} else {
		s.Note(emptySelection)
	}

	s.End(r.now().Sub(start), r.timing)
	return st
}

// Stations prints the most popular start station, end station and route.
func (r *Reporter) Stations(ds *trips.Dataset) stats.StationStats {
	start := r.now()
	s := ui.NewSection(r.w, "Calculating The Most Popular Stations and Trip")
	st := stats.Stations(ds)

	if st.Start.Found {
		s.Stat("The most popular start station is %s.", st.Start.Value)
	}
	if st.End.Found {
		s.Stat("The most popular end station is %s.", st.End.Value)
	}
	if st.Route.Found {
		s.Stat("The most popular route is %s.", st.Route.Value)
	}
	if !st.Start.Found && !st.End.Found {
		s.Note(emptySelection)
	}

	s.End(r.now().Sub(start), r.timing)
	return st
}

// Durations prints total travel time in hours and mean travel time in
// minutes.
func (r *Reporter) Durations(ds *trips.Dataset) stats.DurationStats {
	start := r.now()
	s := ui.NewSection(r.w, "Calculating Trip Duration")
	st := stats.Durations(ds)

	if st.Trips > 0 {
		s.Stat("The total travel time is %s hours.", formatFloat(st.TotalHours))
		s.Stat("The mean travel time is %s minutes.", formatFloat(st.MeanMinutes))
	} else {
		s.Note(emptySelection)
	}

	s.End(r.now().Sub(start), r.timing)
	return st
}

// Users prints user type counts and, where the city records them, gender
// counts and birth years.
func (r *Reporter) Users(ds *trips.Dataset) stats.UserStats {
	start := r.now()
	s := ui.NewSection(r.w, "Calculating User Stats")
	st := stats.Users(ds)

	if len(st.UserTypes) > 0 {
		s.Block(ui.RenderCountTable("User Type", countRows(st.UserTypes)))
	} else {
		s.Note("No user type data in the selection.")
	}

	if !st.HasDemographics() {
		s.Note("There is no data available for statistics about gender and birth years.")
		s.End(r.now().Sub(start), r.timing)
		return st
	}

	d := st.Demographics
	if len(d.Genders) > 0 {
		s.Block(ui.RenderCountTable("Gender", countRows(d.Genders)))
	} else {
		s.Note("No gender data in the selection.")
	}

	if d.BirthYears.Found {
		s.Stat("The earliest year of birth is %d.", d.BirthYears.Earliest)
		s.Stat("The most recent year of birth is %d.", d.BirthYears.Latest)
		s.Stat("The most common year of birth is %d.", d.BirthYears.Common)
	} else {
		s.Note("No birth year data in the selection.")
	}

	s.End(r.now().Sub(start), r.timing)
	return st
}

func countRows(counts []stats.Count) []ui.CountRow {
	rows := make([]ui.CountRow, len(counts))
	for i, c := range counts {
		rows[i] = ui.CountRow{Key: c.Key, Count: c.N}
	}
	return rows
}

// formatFloat prints v with as many digits as it needs.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
