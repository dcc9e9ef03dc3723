// Package ui provides the terminal output pieces for bikeshare's CLI.
//
// Everything renders through Lip Gloss so --no-color (or output.color:
// never) turns the whole program monochrome with one DisableColors call.
//
// # Components Overview
//
//	RenderHeader   - Session greeting with version and tagline
//	PhaseDisplay   - Status lines for steps such as loading a city
//	Section        - One statistics report: heading, results, timing
//	RenderCountTable - Key/count tables built on the Bubbles table
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Completed steps
//	ColorError     (red)    - Failures
//	ColorMuted     (gray)   - Timing, dividers, notes
//	ColorSecondary (blue)   - In-progress indicators
//
// ColorAccent and ColorHighlight are truecolor and used only for headings.
//
// # Section Usage
//
//	s := ui.NewSection(os.Stdout, "Calculating Trip Duration")
//	s.Stat("Total travel time: %v hours", hours)
//	s.End(time.Since(start), cfg.Output.Timing)
package ui
