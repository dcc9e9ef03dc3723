package cli

import (
	"github.com/rileyhilliard/bikeshare/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var initForce bool

// initCmd writes a .bikeshare.yaml with the defaults
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .bikeshare.yaml configuration",
	Long: `Write a .bikeshare.yaml file in the current directory with the default
city files, page size and output settings.

Examples:
  bikeshare init
  bikeshare init --data-dir ./data
  bikeshare init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Dir:     ".",
			DataDir: dataDirFlag,
			Force:   initForce,
			Out:     cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for bikeshare.

Examples:
  # Bash
  bikeshare completion bash > /etc/bash_completion.d/bikeshare

  # Zsh
  bikeshare completion zsh > "${fpath[1]}/_bikeshare"

  # Fish
  bikeshare completion fish > ~/.config/fish/completions/bikeshare.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
