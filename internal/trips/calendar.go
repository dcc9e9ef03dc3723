package trips

import "time"

// All is the filter token that disables month or day filtering.
const All = "all"

var (
	monthTokens = []string{"jan", "feb", "mar", "apr", "may", "jun"}
	dayTokens   = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	dayNames    = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// MonthOptions returns the accepted month tokens, ending with All.
func MonthOptions() []string {
	return append(append([]string(nil), monthTokens...), All)
}

// DayOptions returns the accepted day tokens, ending with All.
func DayOptions() []string {
	return append(append([]string(nil), dayTokens...), All)
}

// MonthIndex maps a month token to its 1-based calendar month.
func MonthIndex(token string) (int, bool) {
	for i, t := range monthTokens {
		if t == token {
			return i + 1, true
		}
	}
	return 0, false
}

// DayIndex maps a day token to its 0-based weekday, Monday first.
func DayIndex(token string) (int, bool) {
	for i, t := range dayTokens {
		if t == token {
			return i, true
		}
	}
	return 0, false
}

// MonthName returns the English name of a 1-based month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return time.Month(month).String()
}

// DayName returns the English name of a Monday-first weekday index.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "Unknown"
	}
	return dayNames[day]
}

// Weekday converts a time.Weekday (Sunday=0) to the Monday-first index.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
