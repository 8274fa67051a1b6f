package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Iron-Ham/clubhouse/internal/config"
	"github.com/Iron-Ham/clubhouse/internal/errors"
	"github.com/Iron-Ham/clubhouse/internal/event"
	"github.com/Iron-Ham/clubhouse/internal/logging"
	"github.com/Iron-Ham/clubhouse/internal/menu"
	"github.com/Iron-Ham/clubhouse/internal/styles"
	"github.com/Iron-Ham/clubhouse/internal/team"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger, err := newSessionLogger(cfg)
	if err != nil {
		// The menu still works without a log file.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
		logger = logging.NopLogger()
	}
	defer func() { _ = logger.Close() }()

	watchConfig(logger)

	out := cmd.OutOrStdout()
	st := sessionStyles(cmd.ErrOrStderr(), out, cfg.Display.Theme, logger)

	bus := event.NewBus(event.WithPanicHandler(func(e event.Event, r any, stack []byte) {
		logger.Error("event handler panicked", "event", e.EventType(), "panic", fmt.Sprint(r), "stack", string(stack))
	}))
	subscribeRosterLog(bus, logger)

	reg := team.NewRegistry(team.NewIDGenerator(), team.WithBus(bus))

	loop := menu.New(cmd.InOrStdin(), out, reg,
		menu.WithLogger(logger),
		menu.WithStyles(st),
		menu.WithWelcome(cfg.Menu.Welcome),
		menu.WithStatistics(cfg.Display.ShowStatistics),
		menu.WithKind(cfg.Display.ShowKind),
		menu.WithWidth(resolveWidth(cfg.Display.Width, out)),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return loop.Run(ctx)
}

// newSessionLogger opens the rotating log file described by cfg.
func newSessionLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.ResolveFile(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   true,
	})
}

// sessionStyles loads custom themes and resolves the configured one. Problems
// are reported on stderr and the default theme is used instead.
func sessionStyles(stderr, out io.Writer, theme string, logger *logging.Logger) *styles.Styles {
	loaded, errs := styles.DiscoverCustomThemes()
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", loaded)
	}

	st, err := styles.ForWriter(out, theme)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v; using default theme\n", err)
		logger.Warn("theme fallback", "theme", theme, "error", err.Error())
	}
	return st
}

// resolveWidth returns the configured width, or the terminal width when out
// is a terminal. Otherwise it returns 0 so piped output is never truncated.
func resolveWidth(configured int, out io.Writer) int {
	if configured > 0 {
		return configured
	}
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	return 0
}
