package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/bikeshare/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config hasn't been loaded yet",
			"This is unexpected - load a config before validating it.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but bikeshare only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade bikeshare or lower the version in .bikeshare.yaml.")
	}

	if err := validateCities(cfg.Cities); err != nil {
		return err
	}

	if cfg.Browse.PageSize <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("browse.page_size must be positive, got %d", cfg.Browse.PageSize),
			fmt.Sprintf("Remove it to use the default of %d rows per page.", DefaultPageSize))
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color '%s' isn't recognized", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateCities(cities map[string]string) error {
	known := DefaultCities()
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)

	for name, path := range cities {
		if _, ok := known[name]; !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown city '%s' in config", name),
				"Supported cities: "+strings.Join(names, ", "))
		}
		if strings.TrimSpace(path) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("City '%s' has an empty data path", name),
				"Point it at a CSV file or remove the entry to use "+known[name])
		}
	}

	for _, name := range names {
		if _, ok := cities[name]; !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("City '%s' is missing a data path", name),
				"Add it under 'cities:' or remove the 'cities:' block entirely.")
		}
	}

	return nil
}
