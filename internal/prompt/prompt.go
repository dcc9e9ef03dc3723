// Package prompt asks the user to pick from a fixed set of answers.
//
// Two implementations share the Prompter interface: Line reads plain lines
// from any reader, Form draws huh inputs on a terminal.
package prompt

import (
	stderrors "errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rileyhilliard/bikeshare/internal/util"
	"golang.org/x/term"
)

// maxSuggestDistance is the edit distance below which an option is offered
// as a correction.
const maxSuggestDistance = 3

// ErrClosed is returned when input ends or the user aborts a prompt.
var ErrClosed = stderrors.New("input closed")

// Choice describes one question with a closed set of answers.
type Choice struct {
	Title   string   // First prompt
	Retry   string   // Prompt after an invalid answer; Title when empty
	Invalid string   // Printed when an answer isn't in Options
	Options []string // Accepted answers, lowercase
}

// Match normalizes answer and reports whether it is one of c's options.
func (c Choice) Match(answer string) (string, bool) {
	token := Normalize(answer)
	if !slices.Contains(c.Options, token) {
		return "", false
	}
	return token, true
}

// Hint suggests the option closest to an invalid answer, or "" when none
// is close.
func (c Choice) Hint(answer string) string {
	suggestions := util.SuggestSimilar(Normalize(answer), c.Options, maxSuggestDistance)
	if len(suggestions) == 0 {
		return ""
	}
	return "Did you mean '" + suggestions[0] + "'?"
}

func (c Choice) retry() string {
	if c.Retry == "" {
		return c.Title
	}
	return c.Retry
}

// Prompter asks questions. Choose only ever returns one of c.Options.
type Prompter interface {
	Choose(c Choice) (string, error)
	Confirm(question string) (bool, error)
}

// Normalize trims whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsYes reports whether answer is "yes", ignoring case and whitespace.
func IsYes(answer string) bool {
	return Normalize(answer) == "yes"
}

// New returns a Form prompter when in is a terminal and interactive is
// set, otherwise a Line prompter.
func New(in io.Reader, out io.Writer, interactive bool) Prompter {
	if interactive && isTerminal(in) {
		return NewForm(in, out)
	}
	return NewLine(in, out)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
