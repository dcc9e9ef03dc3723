package config

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/bikeshare/internal/errors"
	"gopkg.in/yaml.v3"
)

const configHeader = `# bikeshare configuration
# Paths under 'cities' are relative to data_dir.
`

// Marshal renders cfg as YAML with a short explanatory header.
func Marshal(cfg *Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}

// Write saves cfg to path. It refuses to replace an existing file
// unless overwrite is set.
func Write(path string, cfg *Config, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", path),
			"Use --force to overwrite")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to build config file",
			"This is unexpected - please report it.")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check directory permissions")
	}
	return nil
}
