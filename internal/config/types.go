package config

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Default CSV file names, relative to DataDir.
const (
	DefaultChicagoFile    = "chicago.csv"
	DefaultNewYorkFile    = "new_york_city.csv"
	DefaultWashingtonFile = "washington.csv"
)

// DefaultPageSize is how many trip rows the browser shows per page.
const DefaultPageSize = 5

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete .bikeshare.yaml configuration file.
type Config struct {
	Version int    `yaml:"version" mapstructure:"version"`
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Cities maps a city name to its CSV path. Only the three known cities
	// are accepted; entries here override their default paths.
	Cities map[string]string `yaml:"cities" mapstructure:"cities"`

	Browse BrowseConfig `yaml:"browse" mapstructure:"browse"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// BrowseConfig controls the raw trip browser.
type BrowseConfig struct {
	PageSize int `yaml:"page_size" mapstructure:"page_size"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Color is auto, always, or never.
	Color string `yaml:"color" mapstructure:"color"`

	// Timing prints how long each report took.
	Timing bool `yaml:"timing" mapstructure:"timing"`
}

// DefaultCities returns the built-in city to file mapping.
func DefaultCities() map[string]string {
	return map[string]string{
		"chicago":       DefaultChicagoFile,
		"new york city": DefaultNewYorkFile,
		"washington":    DefaultWashingtonFile,
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		DataDir: ".",
		Cities:  DefaultCities(),
		Browse: BrowseConfig{
			PageSize: DefaultPageSize,
		},
		Output: OutputConfig{
			Color:  ColorAuto,
			Timing: true,
		},
	}
}
