package prompt

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/bikeshare/internal/errors"
)

// Form prompts with huh fields. Invalid answers are rejected in place by
// the field's validation, so Choice.Retry is never shown.
type Form struct {
	in  io.Reader
	out io.Writer
}

// NewForm creates a huh-backed prompter.
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: in, out: out}
}

// Choose shows a text input with the options as tab-completions.
func (f *Form) Choose(c Choice) (string, error) {
	var answer string
	field := huh.NewInput().
		Title(c.Title).
		Suggestions(c.Options).
		Value(&answer).
		Validate(func(s string) error {
			if _, ok := c.Match(s); !ok {
				msg := strings.TrimSpace(c.Invalid + " " + c.Hint(s))
				return stderrors.New(msg)
			}
			return nil
		})

	if err := f.run(field); err != nil {
		return "", err
	}
	token, _ := c.Match(answer)
	return token, nil
}

// Confirm shows a yes/no toggle.
func (f *Form) Confirm(question string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := f.run(field); err != nil {
		return false, err
	}
	return ok, nil
}

func (f *Form) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(f.in).
		WithOutput(f.out)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return ErrClosed
		}
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Check terminal compatibility or use --plain")
	}
	return nil
}
