package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/Iron-Ham/clubhouse/internal/logging"
)

// Display width bounds. 0 is also accepted and means "detect".
const (
	minWidth = 20
	maxWidth = 1000
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string // dotted key, e.g. "display.width"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is returned by Load when any setting is invalid.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err)
	}
	return sb.String()
}

// themeNameRegex matches built-in names and custom theme file stems.
var themeNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidThemeName reports whether name can be used as a theme file stem.
func ValidThemeName(name string) bool {
	return themeNameRegex.MatchString(name)
}

// ValidLogLevels lists the accepted logging.level values, lowercased.
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	for i, l := range levels {
		levels[i] = strings.ToLower(l)
	}
	return levels
}

// Validate reports every invalid setting, in key order. Whether a theme name
// refers to an installed theme is checked when styles are built, not here.
func (c *Config) Validate() []ValidationError {
	var errs ValidationErrors
	c.validateDisplay(&errs)
	c.validateLogging(&errs)
	return errs
}

func (e *ValidationErrors) add(field string, value any, format string, args ...any) {
	*e = append(*e, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (c *Config) validateDisplay(errs *ValidationErrors) {
	d := c.Display

	if d.Theme != "" && !ValidThemeName(d.Theme) {
		errs.add("display.theme", d.Theme, "must be lowercase letters, digits, '-' or '_'")
	}

	switch {
	case d.Width == 0:
	case d.Width < minWidth:
		errs.add("display.width", d.Width, "must be 0 or at least %d columns", minWidth)
	case d.Width > maxWidth:
		errs.add("display.width", d.Width, "exceeds maximum of %d columns", maxWidth)
	}
}

func (c *Config) validateLogging(errs *ValidationErrors) {
	l := c.Logging

	if l.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(l.Level)) {
		errs.add("logging.level", l.Level, "must be one of: %s", strings.Join(ValidLogLevels(), ", "))
	}
	if l.MaxSizeMB < 0 {
		errs.add("logging.max_size_mb", l.MaxSizeMB, "must be non-negative")
	}
	if l.MaxBackups < 0 {
		errs.add("logging.max_backups", l.MaxBackups, "must be non-negative")
	}
}
