// Package menu implements the interactive roster menu: it prints the menu,
// reads whitespace-delimited tokens, dispatches to the team registry, and
// prints results until the exit choice is made or input ends.
package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/Iron-Ham/clubhouse/internal/errors"
	"github.com/Iron-Ham/clubhouse/internal/logging"
	"github.com/Iron-Ham/clubhouse/internal/styles"
	"github.com/Iron-Ham/clubhouse/internal/team"
	"github.com/charmbracelet/lipgloss"
)

// WelcomeText is printed above the menu when the welcome banner is enabled.
const WelcomeText = "Welcome to the Football Team Management System"

// Loop drives one interactive session over a registry.
type Loop struct {
	in     *tokenReader
	out    io.Writer
	reg    *team.Registry
	logger *logging.Logger
	styles *styles.Styles

	welcome        bool
	showStatistics bool
	showKind       bool
	width          int
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for operation and error logs.
func WithLogger(l *logging.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithStyles sets the styles used for output.
func WithStyles(s *styles.Styles) Option {
	return func(lp *Loop) {
		if s != nil {
			lp.styles = s
		}
	}
}

// WithWelcome controls the welcome banner printed before every menu.
func WithWelcome(show bool) Option {
	return func(lp *Loop) { lp.welcome = show }
}

// WithStatistics controls the "Record:" line in the team display.
func WithStatistics(show bool) Option {
	return func(lp *Loop) { lp.showStatistics = show }
}

// WithKind controls the "Kind:" line in the team display.
func WithKind(show bool) Option {
	return func(lp *Loop) { lp.showKind = show }
}

// WithWidth truncates display lines to width columns; 0 disables truncation.
func WithWidth(width int) Option {
	return func(lp *Loop) { lp.width = width }
}

// New creates a Loop reading from in and writing to out.
func New(in io.Reader, out io.Writer, reg *team.Registry, opts ...Option) *Loop {
	lp := &Loop{
		in:             newTokenReader(in),
		out:            out,
		reg:            reg,
		logger:         logging.NopLogger(),
		welcome:        true,
		showStatistics: true,
		showKind:       true,
	}
	for _, opt := range opts {
		opt(lp)
	}
	if lp.styles == nil {
		lp.styles = styles.New(lipgloss.NewRenderer(out), styles.DefaultPalette())
	}
	return lp
}

// Run shows the menu and handles selections until the exit choice is made,
// input ends, or ctx is canceled between selections; all three return nil.
// A failure of the input stream is returned as an *errors.InputError.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("session canceled", "reason", err.Error())
			return nil
		}

		l.printMenu()

		token, err := l.in.next("choice")
		if err != nil {
			return l.finish(err)
		}

		choice, err := ParseChoice(token)
		if err != nil {
			l.report("choose", err)
			continue
		}

		if choice == ChoiceExit {
			l.println("Exit")
			l.logger.Info("session ended", "reason", "exit")
			return nil
		}

		if err := l.dispatch(choice); err != nil {
			if isFatal(err) {
				return l.finish(err)
			}
			l.report(choice.operation(), err)
		}
	}
}

func (l *Loop) dispatch(c Choice) error {
	switch c {
	case ChoiceCreateProfessional:
		return l.createTeam(team.KindProfessional)
	case ChoiceCreateAmateur:
		return l.createTeam(team.KindAmateur)
	case ChoiceAddPlayer:
		return l.addPlayer()
	case ChoiceRemovePlayer:
		return l.removePlayer()
	case ChoiceDisplayTeams:
		l.displayTeams()
		return nil
	case ChoiceSetStatistics:
		return l.setStatistics()
	}
	return errors.ErrInvalidChoice
}

// isFatal reports whether err ends the session rather than the operation.
func isFatal(err error) bool {
	if errors.Is(err, errors.ErrInputClosed) {
		return true
	}
	var ie *errors.InputError
	return errors.As(err, &ie)
}

// finish converts the terminating error into Run's result.
func (l *Loop) finish(err error) error {
	if errors.Is(err, errors.ErrInputClosed) {
		l.logger.Info("session ended", "reason", "end of input")
		return nil
	}
	l.logger.Error("session aborted", "error", err.Error())
	return err
}

// report prints a recoverable error and logs it at a level matching its
// severity.
func (l *Loop) report(op string, err error) {
	log := l.logger.WithOperation(op)
	switch errors.GetSeverity(err) {
	case errors.SeverityDebug:
		log.Debug("operation failed", "error", err.Error())
	case errors.SeverityInfo:
		log.Info("operation failed", "error", err.Error())
	case errors.SeverityWarning:
		log.Warn("operation failed", "error", err.Error())
	default:
		log.Error("operation failed", "error", err.Error())
	}

	switch {
	case errors.Is(err, errors.ErrInvalidChoice):
		l.println(l.styles.Error.Render("Invalid choice"))
	case errors.IsUserFacing(err):
		l.println(l.styles.Error.Render("Error: " + err.Error()))
	default:
		l.println(l.styles.Error.Render("Error: operation failed"))
	}
}

func (l *Loop) printMenu() {
	if l.welcome {
		l.println(l.styles.Banner.Render(WelcomeText))
	}
	for _, c := range Choices {
		l.println(l.styles.MenuItem.Render(c.String()))
	}
	l.prompt("Enter your choice: ")
}

func (l *Loop) prompt(text string) {
	fmt.Fprint(l.out, l.styles.Prompt.Render(text))
}

func (l *Loop) println(line string) {
	fmt.Fprintln(l.out, line)
}
