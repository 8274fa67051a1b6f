package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/clubhouse/internal/config"
	"github.com/Iron-Ham/clubhouse/internal/logging"
	"github.com/Iron-Ham/clubhouse/internal/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the session log",
	Long: `View and filter the clubhouse session log.

Examples:
  # Show the last 50 entries
  clubhouse logs

  # Show everything
  clubhouse logs -n 0

  # Follow the log while another terminal runs a session
  clubhouse logs -f

  # Only warnings and errors from the last hour
  clubhouse logs --level warn --since 1h

  # Search messages and fields
  clubhouse logs --grep "not found"`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsFile   string
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVar(&logsFile, "file", "", "Log file (default: logging.file from config)")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter entries matching pattern (regex)")
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time  time.Time      `json:"time"`
	Level string         `json:"level"`
	Msg   string         `json:"msg"`
	Extra map[string]any `json:"-"` // Captures additional fields
}

// UnmarshalJSON implements custom unmarshaling to capture extra fields
func (e *logEntry) UnmarshalJSON(data []byte) error {
	// Unmarshal known fields using a type alias to avoid recursion
	type Alias logEntry
	aux := &struct{ *Alias }{Alias: (*Alias)(e)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	delete(all, "time")
	delete(all, "level")
	delete(all, "msg")

	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// logFilter holds the parsed --level, --since and --grep flags.
type logFilter struct {
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

func newLogFilter(level, since, grep string, now time.Time) (logFilter, error) {
	f := logFilter{minLevel: -1}

	if level != "" {
		f.minLevel = levelPriority(logging.ParseLevel(level))
	}
	if since != "" {
		d, err := time.ParseDuration(since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = now.Add(-d)
	}
	if grep != "" {
		re, err := regexp.Compile(grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.grep = re
	}
	return f, nil
}

// match checks if a log entry passes all filter criteria
func (f logFilter) match(e *logEntry) bool {
	if f.minLevel >= 0 && levelPriority(e.Level) < f.minLevel {
		return false
	}
	if !f.since.IsZero() && e.Time.Before(f.since) {
		return false
	}
	if f.grep != nil {
		searchText := e.Msg
		for _, v := range e.Extra {
			searchText += " " + fmt.Sprint(v)
		}
		if !f.grep.MatchString(searchText) {
			return false
		}
	}
	return true
}

// logStyles colors entries when writing to a terminal.
type logStyles struct {
	time   lipgloss.Style
	key    lipgloss.Style
	levels map[string]lipgloss.Style
}

func newLogStyles(w io.Writer) logStyles {
	r := lipgloss.NewRenderer(w)
	p := styles.DefaultPalette()
	return logStyles{
		time: r.NewStyle().Foreground(p.Muted),
		key:  r.NewStyle().Foreground(p.JerseyNumber),
		levels: map[string]lipgloss.Style{
			logging.LevelDebug: r.NewStyle().Foreground(p.Muted),
			logging.LevelInfo:  r.NewStyle().Foreground(p.Primary),
			logging.LevelWarn:  r.NewStyle().Foreground(p.Warning),
			logging.LevelError: r.NewStyle().Bold(true).Foreground(p.Error),
		},
	}
}

// format renders an entry as "[15:04:05.000] [LEVEL] msg key=value ...",
// with extra fields in key order.
func (s logStyles) format(e *logEntry) string {
	var sb strings.Builder

	sb.WriteString(s.time.Render("[" + e.Time.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")

	level := strings.ToUpper(e.Level)
	if st, ok := s.levels[level]; ok {
		sb.WriteString(st.Render("[" + level + "]"))
	} else {
		sb.WriteString("[" + level + "]")
	}

	sb.WriteString(" ")
	sb.WriteString(e.Msg)

	keys := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(s.key.Render(k + "="))
		sb.WriteString(fmt.Sprint(e.Extra[k]))
	}

	return sb.String()
}

// renderLine formats one raw log line. Lines that are not JSON are passed
// through unchanged; filtered entries report false.
func (s logStyles) renderLine(line string, f logFilter) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !f.match(&entry) {
		return "", false
	}
	return s.format(&entry), true
}

func runLogs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	logPath := logsFile
	if logPath == "" {
		logPath = config.Get().Logging.ResolveFile()
	}

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintf(out, "No log found at %s\n", logPath)
		return nil
	}

	filter, err := newLogFilter(logsLevel, logsSince, logsGrep, time.Now())
	if err != nil {
		return err
	}
	st := newLogStyles(out)

	if logsFollow {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		fmt.Fprintf(out, "Following %s... (Ctrl+C to stop)\n\n", logPath)
		return followLogs(ctx, out, logPath, filter, st)
	}

	return displayLogs(out, logPath, logsTail, filter, st)
}

// displayLogs prints the last tail matching entries of the log file.
func displayLogs(w io.Writer, logPath string, tail int, f logFilter, st logStyles) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if line, ok := st.renderLine(scanner.Text(), f); ok {
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	for _, entry := range entries {
		fmt.Fprintln(w, entry)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No matching log entries found.")
	}
	return nil
}

// followLogs prints entries appended to the log file until ctx is done. The
// directory is watched so a rotated log is reopened.
func followLogs(ctx context.Context, w io.Writer, logPath string, f logFilter, st logStyles) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(logPath), err)
	}

	emit := func(line string) {
		if out, ok := st.renderLine(line, f); ok {
			fmt.Fprintln(w, out)
		}
	}

	tailer := &lineTailer{reader: bufio.NewReader(file)}
	for {
		if err := tailer.drain(emit); err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(logPath) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// Rotated: finish the old file, then switch to the new one
				if err := tailer.drain(emit); err != nil {
					return fmt.Errorf("error reading log file: %w", err)
				}
				next, err := os.Open(logPath)
				if err != nil {
					return fmt.Errorf("reopening log file: %w", err)
				}
				_ = file.Close()
				file = next
				tailer.reset(file)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching log file: %w", err)
		}
	}
}

// lineTailer reads complete lines, holding back a trailing partial line
// until its newline arrives.
type lineTailer struct {
	reader  *bufio.Reader
	pending string
}

func (t *lineTailer) drain(emit func(string)) error {
	for {
		chunk, err := t.reader.ReadString('\n')
		t.pending += chunk
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		emit(t.pending)
		t.pending = ""
	}
}

func (t *lineTailer) reset(r io.Reader) {
	t.reader.Reset(r)
	t.pending = ""
}
