// Package browse pages through the raw rows of a filtered dataset.
package browse

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bikeshare/internal/config"
	"github.com/rileyhilliard/bikeshare/internal/prompt"
	"github.com/rileyhilliard/bikeshare/internal/trips"
	"github.com/rileyhilliard/bikeshare/internal/ui"
)

const (
	startQuestion = "Do you want to see individual trip data according to your filter? (Type yes or no):"
	moreQuestion  = "Do you want to see more individual trip data according to your filter? (Type yes or no):"
	noMoreData    = "No more data available."
)

// State is where the browser is in its walk through the rows.
type State int

const (
	// Idle has not asked anything yet.
	Idle State = iota
	// Paginating shows a page on the next step.
	Paginating
	// Done is terminal.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paginating:
		return "paginating"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Browser shows rows PageSize at a time for as long as the user asks.
type Browser struct {
	ds       *trips.Dataset
	prompter prompt.Prompter
	w        io.Writer
	pageSize int

	state  State
	cursor int
	pages  int
}

// New creates a browser over ds. A non-positive pageSize uses the default.
func New(ds *trips.Dataset, p prompt.Prompter, w io.Writer, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	return &Browser{ds: ds, prompter: p, w: w, pageSize: pageSize}
}

// State returns the current state.
func (b *Browser) State() State { return b.state }

// Pages returns how many pages have been shown.
func (b *Browser) Pages() int { return b.pages }

// Run steps until Done. Prompt errors, including prompt.ErrClosed, are
// returned as is.
func (b *Browser) Run() error {
	for b.state != Done {
		if err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one transition.
func (b *Browser) Step() error {
	switch b.state {
	case Idle:
		yes, err := b.prompter.Confirm(startQuestion)
		if err != nil {
			return err
		}
		if yes {
			b.state = Paginating
		} else {
			b.state = Done
		}

	case Paginating:
		b.showPage()
		b.cursor += b.pageSize
		if b.cursor >= b.ds.Len() {
			b.state = Done
			return nil
		}
		yes, err := b.prompter.Confirm(moreQuestion)
		if err != nil {
			return err
		}
		if !yes {
			b.state = Done
		}
	}
	return nil
}

func (b *Browser) showPage() {
	b.pages++
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headStyle := lipgloss.NewStyle().Foreground(ui.ColorHighlight).Bold(true)

	for row := b.cursor; row < b.cursor+b.pageSize; row++ {
		fields, ok := b.ds.Row(row)
		if !ok {
			fmt.Fprintln(b.w, noMoreData)
			return
		}

		width := 0
		for _, f := range fields {
			width = max(width, lipgloss.Width(f.Name))
		}

		fmt.Fprintln(b.w, headStyle.Render(fmt.Sprintf("Data from line %d:", row+1)))
		for _, f := range fields {
			fmt.Fprintf(b.w, "%s %s\n", nameStyle.Render(fmt.Sprintf("%-*s", width+1, f.Name+":")), f.Value)
		}
		fmt.Fprintln(b.w)
	}
}
