package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rileyhilliard/bikeshare/internal/browse"
	"github.com/rileyhilliard/bikeshare/internal/config"
	"github.com/rileyhilliard/bikeshare/internal/logger"
	"github.com/rileyhilliard/bikeshare/internal/prompt"
	"github.com/rileyhilliard/bikeshare/internal/report"
	"github.com/rileyhilliard/bikeshare/internal/trips"
	"github.com/rileyhilliard/bikeshare/internal/ui"
	"github.com/rileyhilliard/bikeshare/internal/util"
)

const (
	tagline         = "Hello! Let's explore some US bikeshare data!"
	restartQuestion = "Would you like to restart? Enter yes or no."
)

var (
	cityChoice = prompt.Choice{
		Title:   "Please enter the city you wish to analyse (Chicago, New York City, Washington):",
		Retry:   "Please try again (Chicago, New York City, Washington):",
		Invalid: "Sorry, we couldn't find that city.",
		Options: trips.CityNames(),
	}
	monthChoice = prompt.Choice{
		Title:   "Do you want to analyse only one month? Then enter 'Jan', 'Feb', 'Mar', 'Apr', 'May' or 'Jun'. If you want to analyse all months, type 'all':",
		Retry:   "Please try again ('Jan', 'Feb', 'Mar', 'Apr', 'May', 'Jun' or 'all'):",
		Invalid: "Sorry, we couldn't find that month.",
		Options: trips.MonthOptions(),
	}
	dayChoice = prompt.Choice{
		Title:   "Do you want to analyse only one day of week? Then enter 'Mon', 'Tue', 'Wed', 'Thu', 'Fri', 'Sat' or 'Sun'. If you want to analyse all days of the week, type 'all':",
		Retry:   "Please try again ('Mon', 'Tue', 'Wed', 'Thu', 'Fri', 'Sat', 'Sun' or 'all'):",
		Invalid: "Sorry, we couldn't find that day. Did you spell it correctly?",
		Options: trips.DayOptions(),
	}
)

// Session runs the ask / load / report / browse loop until the user stops.
type Session struct {
	cfg      *config.Config
	loader   *trips.Loader
	prompter prompt.Prompter
	reporter *report.Reporter
	out      io.Writer
	log      logger.Logger
}

// NewSession wires a session over cfg. A nil log discards debug output.
func NewSession(cfg *config.Config, p prompt.Prompter, out io.Writer, log logger.Logger) *Session {
	if log == nil {
		log = logger.Noop()
	}
	registry := trips.NewRegistry(cfg.DataDir, cfg.Cities)
	return &Session{
		cfg:      cfg,
		loader:   trips.NewLoader(registry, log),
		prompter: p,
		reporter: report.New(out, cfg.Output.Timing),
		out:      out,
		log:      log,
	}
}

// Run loops until the user declines to restart or input ends. Closed input
// is a normal exit.
func (s *Session) Run() error {
	for {
		restart, err := s.iterate()
		if stderrors.Is(err, prompt.ErrClosed) {
			s.log.Debug("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// iterate runs one pass and reports whether the user asked to restart.
// A load failure is printed and skips straight to the restart question.
func (s *Session) iterate() (bool, error) {
	id := uuid.NewString()
	start := time.Now()
	s.log.Debug("session %s started", id)

	ui.PrintHeader(s.out, ui.HeaderInfo{Version: formatVersion(version), Tagline: tagline})

	city, f, err := s.askFilters()
	if err != nil {
		return false, err
	}
	s.log.Debug("session %s: city=%s month=%s day=%s", id, city, f.Month, f.Day)

	ds, err := s.load(city, f)
	if err == nil {
		s.reporter.All(ds, f)

		b := browse.New(ds, s.prompter, s.out, s.cfg.Browse.PageSize)
		if err := b.Run(); err != nil {
			return false, err
		}
		s.log.Debug("session %s: browsed %d pages", id, b.Pages())
	}

	fmt.Fprintln(s.out)
	restart, err := s.prompter.Confirm(restartQuestion)
	if err != nil {
		return false, err
	}
	s.log.Debug("session %s finished in %s, restart=%t", id, time.Since(start), restart)
	return restart, nil
}

func (s *Session) askFilters() (string, trips.Filter, error) {
	city, err := s.prompter.Choose(cityChoice)
	if err != nil {
		return "", trips.Filter{}, err
	}
	s.confirmed(ui.Title(city))

	month, err := s.prompter.Choose(monthChoice)
	if err != nil {
		return "", trips.Filter{}, err
	}
	s.confirmed(describeMonth(month))

	day, err := s.prompter.Choose(dayChoice)
	if err != nil {
		return "", trips.Filter{}, err
	}
	s.confirmed(describeDay(day))

	fmt.Fprintln(s.out, ui.FormatDivider(ui.DividerWidth))
	return city, trips.Filter{Month: month, Day: day}, nil
}

func (s *Session) confirmed(what string) {
	fmt.Fprintf(s.out, "Great! You will get information about %s!\n", what)
}

func (s *Session) load(city string, f trips.Filter) (*trips.Dataset, error) {
	pd := ui.NewPhaseDisplay(s.out)
	name := "Loading " + ui.Title(city)

	pd.RenderProgress(name)
	start := time.Now()
	ds, err := s.loader.Load(city, f)
	if err != nil {
		pd.RenderFailed(name, time.Since(start), err)
		s.log.Debug("load %s failed: %v", city, strings.TrimSpace(err.Error()))
		return nil, err
	}

	pd.RenderSuccess(fmt.Sprintf("Loaded %s %s from %s", humanize.Comma(int64(ds.Len())), util.Pluralize(ds.Len(), "trip", "trips"), ui.Title(city)),
		time.Since(start))
	return ds, nil
}

func describeMonth(token string) string {
	if idx, ok := trips.MonthIndex(token); ok {
		return trips.MonthName(idx)
	}
	return "all months"
}

func describeDay(token string) string {
	if idx, ok := trips.DayIndex(token); ok {
		return trips.DayName(idx)
	}
	return "all days of the week"
}
