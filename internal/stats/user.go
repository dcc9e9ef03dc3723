package stats

import (
	"math"

	"github.com/rileyhilliard/bikeshare/internal/trips"
)

// UserStats holds user type counts and, when the city records them,
// gender and birth year figures.
type UserStats struct {
	UserTypes []Count

	// Demographics is nil when the dataset has no Gender or no Birth Year
	// column.
	Demographics *Demographics
}

// Demographics holds the gender and birth year figures.
type Demographics struct {
	Genders    []Count
	BirthYears BirthYears
}

// BirthYears summarizes the Birth Year column. Found is false when the
// selection holds no birth years.
type BirthYears struct {
	Earliest int
	Latest   int
	Common   int
	Found    bool
}

// HasDemographics reports whether gender and birth year data exist.
func (u UserStats) HasDemographics() bool {
	return u.Demographics != nil
}

// Users computes user statistics. Cities without demographics columns
// yield a nil Demographics, not an error.
func Users(ds *trips.Dataset) UserStats {
	types, _ := ds.Strings(trips.ColUserType)
	st := UserStats{UserTypes: CountBy(types)}

	genders, hasGender := ds.Strings(trips.ColGender)
	years, hasYears := ds.Floats(trips.ColBirthYear)
	if !hasGender || !hasYears {
		return st
	}

	st.Demographics = &Demographics{
		Genders:    CountBy(genders),
		BirthYears: birthYears(years),
	}
	return st
}

func birthYears(raw []float64) BirthYears {
	vals := finite(raw)
	if len(vals) == 0 {
		return BirthYears{}
	}

	ints := make([]int, len(vals))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range vals {
		ints[i] = int(v)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return BirthYears{
		Earliest: int(lo),
		Latest:   int(hi),
		Common:   Mode(ints).Value,
		Found:    true,
	}
}
