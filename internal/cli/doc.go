// Package cli implements the bikeshare command-line interface.
//
// # Command Structure
//
//	bikeshare             - Interactive session (default)
//	bikeshare init        - Create .bikeshare.yaml
//	bikeshare version     - Print version information
//	bikeshare completion  - Generate shell completions
//
// # Session Loop
//
// The root command builds a Session from the loaded config and runs it:
//
//  1. Print the header and ask for city, month and day
//  2. Load and filter the city's CSV
//  3. Print the time, station, duration and user reports
//  4. Offer the raw trip browser
//  5. Ask whether to restart
//
// A load failure prints the error and skips to step 5. End of input at any
// prompt ends the session normally.
//
// # Flag Handling
//
// Global flags (--config, --data-dir, --no-color) are defined on the root
// command and available to all subcommands. --plain only applies to the
// session and forces line prompts on a terminal.
package cli
