package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bikeshare/internal/config"
	"github.com/rileyhilliard/bikeshare/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir     string    // Directory to write .bikeshare.yaml into
	DataDir string    // Optional data_dir to record instead of "."
	Force   bool      // Overwrite an existing config
	Out     io.Writer // Where to report; stdout when nil
}

// Init writes a default .bikeshare.yaml into opts.Dir.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	cfg := config.DefaultConfig()
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	path := filepath.Join(opts.Dir, config.ConfigFileName)
	if err := config.Write(path, cfg, opts.Force); err != nil {
		return err
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	fmt.Fprintf(out, "%s Created %s\n", successStyle.Render(ui.SymbolSuccess), path)
	fmt.Fprintln(out, mutedStyle.Render("  City files are read from "+cfg.DataDir+". Run 'bikeshare' to start exploring."))
	return nil
}
