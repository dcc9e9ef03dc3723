package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title capitalizes each word: "new york city" -> "New York City".
func Title(s string) string {
	return titleCaser.String(s)
}

// Section renders one report block: a heading, result lines, an optional
// timing line, and a closing divider.
type Section struct {
	w io.Writer
}

// NewSection writes the heading and returns the section.
func NewSection(w io.Writer, heading string) *Section {
	style := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	fmt.Fprintf(w, "\n%s\n\n", style.Render(heading+"..."))
	return &Section{w: w}
}

// Stat writes a computed result.
func (s *Section) Stat(format string, args ...interface{}) {
	style := lipgloss.NewStyle().Foreground(ColorHighlight)
	fmt.Fprintf(s.w, "%s %s\n", style.Render(SymbolComplete), fmt.Sprintf(format, args...))
}

// Note writes an informational line, used when a value wasn't computed.
func (s *Section) Note(format string, args ...interface{}) {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(s.w, "%s %s\n", style.Render(SymbolPending), fmt.Sprintf(format, args...))
}

// Block writes pre-rendered multi-line content such as a table.
func (s *Section) Block(content string) {
	if content == "" {
		return
	}
	fmt.Fprintln(s.w, strings.TrimRight(content, "\n"))
}

// End closes the section. The elapsed time is only printed when timing
// is set.
func (s *Section) End(elapsed time.Duration, timing bool) {
	if timing {
		style := lipgloss.NewStyle().Foreground(ColorMuted)
		secs := strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64)
		fmt.Fprintf(s.w, "\n%s\n", style.Render("This took "+secs+" seconds."))
	}
	fmt.Fprintln(s.w, FormatDivider(DividerWidth))
}
