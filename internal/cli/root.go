package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/bikeshare/internal/config"
	"github.com/rileyhilliard/bikeshare/internal/logger"
	"github.com/rileyhilliard/bikeshare/internal/prompt"
	"github.com/rileyhilliard/bikeshare/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	dataDirFlag string
	noColor     bool
	plainFlag   bool
)

// rootCmd runs the interactive session when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `Interactively explore bikeshare trips for Chicago, New York City and
Washington.

You pick a city, a month and a day of week; bikeshare then prints the most
frequent travel times, the most popular stations and trip, trip durations and
user statistics, and lets you page through the raw trips.

Examples:
  bikeshare
  bikeshare --data-dir ~/data/bikeshare
  bikeshare --plain < answers.txt`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.bikeshare.yaml, then ~/.config/bikeshare/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding the city CSV files")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "use line prompts even on a terminal")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}

	mode := cfg.Output.Color
	if noColor {
		mode = config.ColorNever
	}
	ui.ApplyColorMode(mode)

	return cfg, nil
}

func sessionCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out, !plainFlag)
	log := logger.NewEnvLogger("[bikeshare]")

	return NewSession(cfg, p, out, log).Run()
}
