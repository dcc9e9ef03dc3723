// Package testing provides trip data fixtures for tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/bikeshare/internal/logger"
	"github.com/rileyhilliard/bikeshare/internal/trips"
	"github.com/stretchr/testify/require"
)

// ChicagoCSV has demographics columns and a leading unnamed index column,
// like the real chicago.csv. Rows by month/day:
//
//	1: Jan, Monday, 09h    4: Feb, Tuesday, 08h
//	2: Jan, Monday, 17h    5: Mar, Friday, 17h
//	3: Jan, Sunday, 17h    6: Jun, Saturday, 12h
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 09:07:57,2017-01-02 09:20:53,776.0,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1984.0
2,2017-01-02 17:40:00,2017-01-02 17:50:00,600.0,Canal St & Adams St,Clinton St & Madison St,Subscriber,Female,1990.0
3,2017-01-08 17:05:00,2017-01-08 17:10:00,300.0,Lake Shore Dr & Monroe St,Canal St & Adams St,Customer,,
4,2017-02-14 08:15:00,2017-02-14 08:35:00,1200.0,Canal St & Adams St,Lake Shore Dr & Monroe St,Subscriber,Male,1984.0
5,2017-03-03 17:30:00,2017-03-03 17:37:30,450.0,Clinton St & Madison St,Canal St & Adams St,Customer,,
6,2017-06-24 12:00:00,2017-06-24 12:15:00,900.0,Lake Shore Dr & Monroe St,Lake Shore Dr & Monroe St,Subscriber,Female,1975.0
`

// WashingtonCSV has no Gender or Birth Year columns.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
2,2017-03-11 10:40:00,2017-03-11 10:46:00,360.0,Lincoln Memorial,Jefferson Memorial,Customer
3,2017-03-11 11:00:00,2017-03-11 11:30:00,1800.0,Lincoln Memorial,Jefferson Memorial,Customer
`

// RowsCSV builds a CSV of n trips, all on Monday 2 January 2017, one
// minute apart. Trip i goes from "Station i" to "Station i+1".
func RowsCSV(n int) string {
	base := time.Date(2017, time.January, 2, 10, 0, 0, 0, time.UTC)
	var b strings.Builder
	b.WriteString("Start Time,Trip Duration,Start Station,End Station,User Type\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%s,60.0,Station %d,Station %d,Subscriber\n",
			base.Add(time.Duration(i)*time.Minute).Format(time.DateTime), i, i+1)
	}
	return b.String()
}

// Dataset parses csv and applies f, failing the test on error.
func Dataset(t testing.TB, csv string, f trips.Filter) *trips.Dataset {
	t.Helper()
	ds, err := trips.NewLoader(trips.Registry{}, logger.Noop()).Read(strings.NewReader(csv), f)
	require.NoError(t, err)
	return ds
}

// WriteCities writes chicago and washington fixtures into a temp dir and
// returns a registry over them. new york city points at a missing file.
func WriteCities(t testing.TB) (trips.Registry, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(ChicagoCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(WashingtonCSV), 0o644))

	reg := trips.NewRegistry(dir, map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	})
	return reg, dir
}
