package trips

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rileyhilliard/bikeshare/internal/errors"
	"github.com/rileyhilliard/bikeshare/internal/logger"
	"github.com/rileyhilliard/bikeshare/internal/util"
	"github.com/spf13/cast"
)

// Filter restricts a dataset to one month and/or one day of week.
// Empty fields mean All.
type Filter struct {
	Month string
	Day   string
}

func (f Filter) month() string {
	if f.Month == "" {
		return All
	}
	return f.Month
}

func (f Filter) day() string {
	if f.Day == "" {
		return All
	}
	return f.Day
}

// AllMonths reports whether f leaves months unfiltered.
func (f Filter) AllMonths() bool { return f.month() == All }

// AllDays reports whether f leaves days unfiltered.
func (f Filter) AllDays() bool { return f.day() == All }

// Validate checks both tokens against the accepted sets.
func (f Filter) Validate() error {
	if m := f.month(); m != All {
		if _, ok := MonthIndex(m); !ok {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("'%s' isn't a month we have data for", m),
				"Use one of: "+strings.Join(MonthOptions(), ", "))
		}
	}
	if d := f.day(); d != All {
		if _, ok := DayIndex(d); !ok {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("'%s' isn't a day of the week", d),
				"Use one of: "+strings.Join(DayOptions(), ", "))
		}
	}
	return nil
}

// Loader reads city CSV files into filtered datasets.
type Loader struct {
	registry Registry
	log      logger.Logger
}

// NewLoader creates a loader over the given registry.
func NewLoader(registry Registry, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Noop()
	}
	return &Loader{registry: registry, log: log}
}

// Load reads the CSV registered for city and applies f.
func (l *Loader) Load(city string, f Filter) (*Dataset, error) {
	path, ok := l.registry.Path(city)
	if !ok {
		return nil, errors.New(errors.ErrDataSource,
			fmt.Sprintf("No data file registered for '%s'", city),
			"Supported cities: "+util.JoinOrNone(l.registry.Cities()))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDataSource,
			fmt.Sprintf("Can't read trip data for %s", city),
			"Check that the file exists, or point cities."+city+" in .bikeshare.yaml at it")
	}
	defer file.Close()

	start := time.Now()
	ds, err := l.Read(file, f)
	if err != nil {
		return nil, err
	}
	l.log.Debug("loaded %s (%s): %d rows after filter month=%s day=%s in %s",
		city, path, ds.Len(), f.month(), f.day(), time.Since(start))
	return ds, nil
}

// Read parses CSV trip data from r, derives the calendar columns, and
// applies f.
func (l *Loader) Read(r io.Reader, f Filter) (*Dataset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColTripDuration: series.Float,
			ColBirthYear:    series.Float,
		}),
		dataframe.NaNValues(nanValues),
	)
	if df.Err == nil && df.Nrow() == 0 {
		df.Err = fmt.Errorf("no trips after the header row")
	}
	if df.Err != nil {
		return nil, errors.WrapWithCode(df.Err, errors.ErrDataSource,
			"Trip data isn't a readable CSV table",
			"The file needs a header row and at least one trip")
	}

	ds := &Dataset{df: df}
	for _, col := range requiredColumns {
		if !ds.Has(col) {
			return nil, errors.New(errors.ErrDataSource,
				fmt.Sprintf("Trip data is missing the '%s' column", col),
				"Expected columns: "+strings.Join(requiredColumns, ", "))
		}
	}

	ds, err := derive(ds)
	if err != nil {
		return nil, err
	}
	l.log.Debug("read %d rows, columns: %s", ds.Len(), strings.Join(ds.Columns(), ", "))

	return Apply(ds, f)
}

// derive parses Start Time and adds month, day_of_week and hour columns.
func derive(ds *Dataset) (*Dataset, error) {
	col := ds.df.Col(ColStartTime)
	n := col.Len()

	months := make([]int, n)
	days := make([]int, n)
	hours := make([]int, n)

	for i := 0; i < n; i++ {
		e := col.Elem(i)
		if e.IsNA() {
			return nil, errors.New(errors.ErrParse,
				fmt.Sprintf("Start Time on line %d is empty", i+2),
				"Every trip needs a start timestamp like 2017-01-01 09:07:57")
		}
		ts, err := cast.ToTimeE(e.String())
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Start Time on line %d isn't a timestamp: %q", i+2, e.String()),
				"Use a standard date-time such as 2017-01-01 09:07:57")
		}
		months[i] = int(ts.Month())
		days[i] = Weekday(ts)
		hours[i] = ts.Hour()
	}

	df := ds.df.
		Mutate(series.New(months, series.Int, ColMonth)).
		Mutate(series.New(days, series.Int, ColDayOfWeek)).
		Mutate(series.New(hours, series.Int, ColHour))
	if df.Err != nil {
		return nil, errors.WrapWithCode(df.Err, errors.ErrDataSource,
			"Couldn't add calendar columns to trip data",
			"This is unexpected - please report it.")
	}
	return &Dataset{df: df}, nil
}

// Apply keeps the rows matching f. Filtering an already filtered dataset
// with the same f returns the same rows.
func Apply(ds *Dataset, f Filter) (*Dataset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	df := ds.df
	if idx, ok := MonthIndex(f.month()); ok && df.Nrow() > 0 {
		df = df.Filter(dataframe.F{Colname: ColMonth, Comparator: series.Eq, Comparando: idx})
	}
	if idx, ok := DayIndex(f.day()); ok && df.Nrow() > 0 {
		df = df.Filter(dataframe.F{Colname: ColDayOfWeek, Comparator: series.Eq, Comparando: idx})
	}
	if df.Err != nil {
		return nil, errors.WrapWithCode(df.Err, errors.ErrDataSource,
			"Couldn't filter trip data",
			"Check that the file has a Start Time column")
	}
	return &Dataset{df: df}, nil
}
