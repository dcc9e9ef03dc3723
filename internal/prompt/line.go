package prompt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rileyhilliard/bikeshare/internal/errors"
)

// Line prompts on out and reads one answer per line from in.
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLine creates a line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{scanner: bufio.NewScanner(in), out: out}
}

// Choose asks until an answer matches one of c.Options.
func (l *Line) Choose(c Choice) (string, error) {
	question := c.Title
	for {
		answer, err := l.ask(question)
		if err != nil {
			return "", err
		}
		if token, ok := c.Match(answer); ok {
			return token, nil
		}
		if c.Invalid != "" {
			fmt.Fprintln(l.out, c.Invalid)
		}
		if hint := c.Hint(answer); hint != "" {
			fmt.Fprintln(l.out, hint)
		}
		question = c.retry()
	}
}

// Confirm asks a yes/no question. Anything but "yes" is no.
func (l *Line) Confirm(question string) (bool, error) {
	answer, err := l.ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

func (l *Line) ask(question string) (string, error) {
	fmt.Fprint(l.out, question+" ")
	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}
	// The answer never arrived, so end the prompt line ourselves.
	fmt.Fprintln(l.out)
	if err := l.scanner.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"Failed to read input",
			"Check that stdin is readable")
	}
	return "", ErrClosed
}
