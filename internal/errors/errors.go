// Package errors defines the error vocabulary of clubhouse.
//
// Roster lookups fail with [ErrTeamNotFound], bad numeric or menu input with
// [ErrInvalidNumber] or [ErrInvalidChoice], and the end of the input stream
// is [ErrInputClosed]. The typed errors below wrap those sentinels with the
// context the interactive loop needs:
//
//   - [NotFoundError]: a team ID that is not registered
//   - [ValidationError]: a prompted field whose text could not be used
//   - [InputError]: the input stream failed; the session cannot go on
//
// Each typed error carries a [Severity] and a user-facing flag. The loop
// prints user-facing messages verbatim and logs everything at the level
// [GetSeverity] reports:
//
//	err := errors.NewNotFoundError("team", "7").WithCause(errors.ErrTeamNotFound)
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintln(out, "Error: "+err.Error())
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard library helpers, re-exported so callers need a single import.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

var (
	// ErrTeamNotFound reports a team ID with no registered team.
	ErrTeamNotFound = New("team not found")

	// ErrInvalidInput is matched by every ValidationError.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidNumber reports non-integer text where an integer was prompted.
	ErrInvalidNumber = New("invalid number")
	// ErrInvalidChoice reports a menu selection that names no operation.
	ErrInvalidChoice = New("invalid choice")
	// ErrInputClosed reports that the input stream ended.
	ErrInputClosed = New("input closed")
)

// Severity ranks errors for logging.
type Severity int

// Severities from least to most serious. SeverityCritical ends the session.
const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

var severityNames = [...]string{
	SeverityDebug:    "debug",
	SeverityInfo:     "info",
	SeverityWarning:  "warning",
	SeverityError:    "error",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// ClubhouseError is implemented by every typed error in this package.
type ClubhouseError interface {
	error
	Unwrap() error
	Severity() Severity
	// IsUserFacing reports whether Error() may be shown to the user as is.
	IsUserFacing() bool
}

// baseError holds the state shared by the typed errors.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *baseError) Unwrap() error        { return e.cause }
func (e *baseError) Severity() Severity   { return e.severity }
func (e *baseError) IsUserFacing() bool   { return e.userFacing }
func (e *baseError) setCause(cause error) { e.cause = cause }

// NotFoundError reports a missing resource, formatted as "team '3' not found".
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError returns a user-facing warning for the given resource.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	e := &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
	e.message = fmt.Sprintf("%s '%s' not found", resourceType, resourceID)
	e.severity = SeverityWarning
	e.userFacing = true
	return e
}

// WithCause sets the wrapped error, usually ErrTeamNotFound.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.setCause(cause)
	return e
}

// Error leaves out a cause that would only repeat "not found".
func (e *NotFoundError) Error() string {
	if e.cause == nil || errors.Is(e.cause, ErrTeamNotFound) {
		return e.message
	}
	return e.baseError.Error()
}

// Is matches any *NotFoundError target.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError reports prompted text that could not be used. Field and
// Value identify what was read:
//
//	errors.NewValidationError("expected an integer").WithField("team ID").WithValue("abc")
//	// expected an integer [team ID "abc"]
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError returns a user-facing warning with the given message.
func NewValidationError(message string) *ValidationError {
	e := &ValidationError{}
	e.message = message
	e.severity = SeverityWarning
	e.userFacing = true
	return e
}

// WithField records which prompted field was being read.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the rejected text. It is quoted in Error.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause sets the wrapped sentinel, e.g. ErrInvalidNumber.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.setCause(cause)
	return e
}

// Error appends the field and value, when set, to the message.
func (e *ValidationError) Error() string {
	var context []string
	if e.Field != "" {
		context = append(context, e.Field)
	}
	if e.Value != nil {
		context = append(context, fmt.Sprintf("%q", fmt.Sprint(e.Value)))
	}
	if len(context) == 0 {
		return e.message
	}
	return e.message + " [" + strings.Join(context, " ") + "]"
}

// Is matches any *ValidationError target and ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// InputError wraps a failed read of the input stream. It is critical and
// never user facing.
type InputError struct {
	baseError
	// Operation names what was being read, e.g. "choice" or "team ID".
	Operation string
}

// NewInputError returns a critical error for a read of operation that
// failed with cause. The loop ends the session on it.
func NewInputError(operation string, cause error) *InputError {
	e := &InputError{Operation: operation}
	e.message = "reading input"
	e.cause = cause
	e.severity = SeverityCritical
	return e
}

// Error formats as "input error [op=choice]: reading input: <cause>".
func (e *InputError) Error() string {
	prefix := "input error"
	if e.Operation != "" {
		prefix += " [op=" + e.Operation + "]"
	}
	return prefix + ": " + e.baseError.Error()
}

// IsUserFacing reports whether err, or an error it wraps, is a
// ClubhouseError that may be shown to the user.
func IsUserFacing(err error) bool {
	var ce ClubhouseError
	return err != nil && As(err, &ce) && ce.IsUserFacing()
}

// GetSeverity returns the severity of the first ClubhouseError in err's
// chain. Other errors count as SeverityError; nil is SeverityDebug.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var ce ClubhouseError
	if As(err, &ce) {
		return ce.Severity()
	}
	return SeverityError
}

// Wrap prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
