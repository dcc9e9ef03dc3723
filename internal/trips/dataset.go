package trips

import (
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is a read-only table of trip records, usually already filtered.
type Dataset struct {
	df dataframe.DataFrame
}

// Field is one named cell of a row.
type Field struct {
	Name  string
	Value string
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// Columns returns the column names in file order, derived columns last.
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// Has reports whether the dataset carries col.
func (d *Dataset) Has(col string) bool {
	for _, name := range d.df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

func (d *Dataset) column(col string) (series.Series, bool) {
	if !d.Has(col) {
		return series.Series{}, false
	}
	s := d.df.Col(col)
	return s, s.Err == nil
}

// Strings returns col as text. Missing cells come back as "".
func (d *Dataset) Strings(col string) ([]string, bool) {
	s, ok := d.column(col)
	if !ok {
		return nil, false
	}
	out := make([]string, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.String()
	}
	return out, true
}

// Floats returns col as numbers. Missing or non-numeric cells are NaN.
func (d *Dataset) Floats(col string) ([]float64, bool) {
	s, ok := d.column(col)
	if !ok {
		return nil, false
	}
	out := make([]float64, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			out[i] = math.NaN()
			continue
		}
		out[i] = e.Float()
	}
	return out, true
}

// Ints returns an integer column such as the derived month or hour.
func (d *Dataset) Ints(col string) ([]int, bool) {
	s, ok := d.column(col)
	if !ok {
		return nil, false
	}
	vals, err := s.Int()
	if err != nil {
		return nil, false
	}
	return vals, true
}

// Row returns every cell of row i, in column order.
func (d *Dataset) Row(i int) ([]Field, bool) {
	if i < 0 || i >= d.df.Nrow() {
		return nil, false
	}
	names := d.df.Names()
	fields := make([]Field, len(names))
	for c, name := range names {
		e := d.df.Elem(i, c)
		fields[c] = Field{Name: name, Value: formatElement(e)}
	}
	return fields, true
}

func formatElement(e series.Element) string {
	if e.IsNA() {
		return "NaN"
	}
	if e.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'f', -1, 64)
	}
	return e.String()
}
