package trips

import (
	"path/filepath"
	"sort"
)

var cityNames = []string{"chicago", "new york city", "washington"}

// CityNames returns the supported cities in display order.
func CityNames() []string {
	return append([]string(nil), cityNames...)
}

// Registry maps a city name to its CSV path. It is built once from
// configuration and never mutated afterwards.
type Registry struct {
	paths map[string]string
}

// NewRegistry resolves each city's file against dataDir. Absolute paths
// are kept as they are.
func NewRegistry(dataDir string, cities map[string]string) Registry {
	paths := make(map[string]string, len(cities))
	for city, file := range cities {
		if !filepath.IsAbs(file) && dataDir != "" {
			file = filepath.Join(dataDir, file)
		}
		paths[city] = file
	}
	return Registry{paths: paths}
}

// Path returns the CSV path for city.
func (r Registry) Path(city string) (string, bool) {
	p, ok := r.paths[city]
	return p, ok
}

// Cities lists registered cities, known ones first in display order.
func (r Registry) Cities() []string {
	out := make([]string, 0, len(r.paths))
	seen := make(map[string]bool, len(r.paths))
	for _, c := range cityNames {
		if _, ok := r.paths[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}
	var extra []string
	for c := range r.paths {
		if !seen[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
