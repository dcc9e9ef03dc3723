package trips

// Columns read from the city CSV files.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Columns derived from Start Time at load.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
	ColHour      = "hour"
)

// requiredColumns must be present in every city file.
var requiredColumns = []string{
	ColStartTime,
	ColStartStation,
	ColEndStation,
	ColTripDuration,
	ColUserType,
}

// nanValues are cells treated as missing.
var nanValues = []string{"", "NA", "NaN", "<nil>"}
