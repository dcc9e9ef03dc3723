package trips_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/bikeshare/internal/errors"
	"github.com/rileyhilliard/bikeshare/internal/logger"
	"github.com/rileyhilliard/bikeshare/internal/trips"
	tripstest "github.com/rileyhilliard/bikeshare/internal/trips/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_DerivesCalendarColumns(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})

	require.Equal(t, 6, ds.Len())

	months, ok := ds.Ints(trips.ColMonth)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 1, 2, 3, 6}, months)

	days, ok := ds.Ints(trips.ColDayOfWeek)
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 6, 1, 4, 5}, days)

	hours, ok := ds.Ints(trips.ColHour)
	require.True(t, ok)
	assert.Equal(t, []int{9, 17, 17, 8, 17, 12}, hours)
}

func TestRead_KeepsSourceColumns(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})

	for _, col := range []string{
		trips.ColStartTime, trips.ColStartStation, trips.ColEndStation,
		trips.ColTripDuration, trips.ColUserType, trips.ColGender, trips.ColBirthYear,
		"End Time",
	} {
		assert.True(t, ds.Has(col), "missing column %q", col)
	}
	assert.False(t, ds.Has("Nope"))
}

func TestRead_MissingCellsAreNA(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})

	genders, ok := ds.Strings(trips.ColGender)
	require.True(t, ok)
	assert.Equal(t, []string{"Male", "Female", "", "Male", "", "Female"}, genders)

	years, ok := ds.Floats(trips.ColBirthYear)
	require.True(t, ok)
	assert.Equal(t, 1984.0, years[0])
	assert.True(t, years[2] != years[2], "missing birth year should be NaN")
}

func TestRead_OptionalColumnsAbsent(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.WashingtonCSV, trips.Filter{})

	assert.False(t, ds.Has(trips.ColGender))
	assert.False(t, ds.Has(trips.ColBirthYear))

	_, ok := ds.Strings(trips.ColGender)
	assert.False(t, ok)
	_, ok = ds.Floats(trips.ColBirthYear)
	assert.False(t, ok)
}

func TestApply_MatchesDerivedColumns(t *testing.T) {
	full := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})
	allMonths, _ := full.Ints(trips.ColMonth)
	allDays, _ := full.Ints(trips.ColDayOfWeek)

	for _, month := range trips.MonthOptions() {
		for _, day := range trips.DayOptions() {
			f := trips.Filter{Month: month, Day: day}
			t.Run(month+"/"+day, func(t *testing.T) {
				ds, err := trips.Apply(full, f)
				require.NoError(t, err)

				wantMonth, filterMonth := trips.MonthIndex(month)
				wantDay, filterDay := trips.DayIndex(day)

				expected := 0
				for i := range allMonths {
					if (!filterMonth || allMonths[i] == wantMonth) && (!filterDay || allDays[i] == wantDay) {
						expected++
					}
				}
				assert.Equal(t, expected, ds.Len())

				months, _ := ds.Ints(trips.ColMonth)
				days, _ := ds.Ints(trips.ColDayOfWeek)
				for i := range months {
					if filterMonth {
						assert.Equal(t, wantMonth, months[i])
					}
					if filterDay {
						assert.Equal(t, wantDay, days[i])
					}
				}
			})
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	f := trips.Filter{Month: "jan", Day: trips.All}
	once := tripstest.Dataset(t, tripstest.ChicagoCSV, f)

	twice, err := trips.Apply(once, f)
	require.NoError(t, err)

	assert.Equal(t, once.Len(), twice.Len())
	for i := 0; i < once.Len(); i++ {
		a, _ := once.Row(i)
		b, _ := twice.Row(i)
		assert.Equal(t, a, b)
	}
}

func TestApply_EmptyResultCanBeFilteredAgain(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{Month: "apr"})
	assert.Equal(t, 0, ds.Len())

	again, err := trips.Apply(ds, trips.Filter{Month: "apr", Day: "mon"})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Len())
}

func TestApply_RejectsUnknownTokens(t *testing.T) {
	full := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})

	_, err := trips.Apply(full, trips.Filter{Month: "july"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))

	_, err = trips.Apply(full, trips.Filter{Day: "funday"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		code string
		msg  string
	}{
		{
			name: "malformed timestamp",
			csv:  "Start Time,Trip Duration,Start Station,End Station,User Type\n2017-01-02 09:00:00,60,A,B,Subscriber\nyesterday,60,A,B,Subscriber\n",
			code: errors.ErrParse,
			msg:  "line 3",
		},
		{
			name: "empty timestamp",
			csv:  "Start Time,Trip Duration,Start Station,End Station,User Type\n,60,A,B,Subscriber\n",
			code: errors.ErrParse,
			msg:  "empty",
		},
		{
			name: "missing required column",
			csv:  "Start Time,Trip Duration,Start Station,User Type\n2017-01-02 09:00:00,60,A,Subscriber\n",
			code: errors.ErrDataSource,
			msg:  "'End Station'",
		},
		{
			name: "header only",
			csv:  "Start Time,Trip Duration,Start Station,End Station,User Type\n",
			code: errors.ErrDataSource,
			msg:  "readable CSV",
		},
		{
			name: "empty input",
			csv:  "",
			code: errors.ErrDataSource,
			msg:  "readable CSV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := trips.NewLoader(trips.Registry{}, logger.Noop())
			_, err := loader.Read(strings.NewReader(tt.csv), trips.Filter{})

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_FromRegistry(t *testing.T) {
	reg, _ := tripstest.WriteCities(t)
	log := logger.NewBufferLogger()
	loader := trips.NewLoader(reg, log)

	ds, err := loader.Load("chicago", trips.Filter{Month: "jan", Day: trips.All})
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.True(t, log.Contains("loaded chicago"))

	ds, err = loader.Load("washington", trips.Filter{Month: "mar", Day: "sat"})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	reg, _ := tripstest.WriteCities(t)
	loader := trips.NewLoader(reg, nil)

	_, err := loader.Load("new york city", trips.Filter{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDataSource))
	assert.Contains(t, err.Error(), "new york city")
}

func TestLoad_UnknownCity(t *testing.T) {
	reg, _ := tripstest.WriteCities(t)
	loader := trips.NewLoader(reg, nil)

	_, err := loader.Load("boston", trips.Filter{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDataSource))
	assert.Contains(t, err.Error(), "chicago, new york city, washington")
}

func TestLoad_BadTimestampIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("Start Time,Trip Duration,Start Station,End Station,User Type\nnot a date,60,A,B,Subscriber\n"), 0o644))

	loader := trips.NewLoader(trips.NewRegistry(dir, map[string]string{"chicago": "broken.csv"}), nil)
	_, err := loader.Load("chicago", trips.Filter{})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrParse))
}

func TestDataset_Row(t *testing.T) {
	ds := tripstest.Dataset(t, tripstest.ChicagoCSV, trips.Filter{})

	row, ok := ds.Row(2)
	require.True(t, ok)

	values := make(map[string]string, len(row))
	for _, f := range row {
		values[f.Name] = f.Value
	}
	assert.Equal(t, "2017-01-08 17:05:00", values[trips.ColStartTime])
	assert.Equal(t, "300", values[trips.ColTripDuration])
	assert.Equal(t, "Customer", values[trips.ColUserType])
	assert.Equal(t, "NaN", values[trips.ColGender])
	assert.Equal(t, "NaN", values[trips.ColBirthYear])
	assert.Equal(t, "1", values[trips.ColMonth])
	assert.Equal(t, "6", values[trips.ColDayOfWeek])

	assert.Equal(t, trips.ColHour, row[len(row)-1].Name)

	_, ok = ds.Row(6)
	assert.False(t, ok)
	_, ok = ds.Row(-1)
	assert.False(t, ok)
}
