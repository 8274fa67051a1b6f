package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("team", "3").WithCause(ErrTeamNotFound)

	if got, want := err.Error(), "team '3' not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrTeamNotFound) {
		t.Error("errors.Is(err, ErrTeamNotFound) = false, want true")
	}
	if !errors.Is(err, &NotFoundError{}) {
		t.Error("errors.Is(err, &NotFoundError{}) = false, want true")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityWarning)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestNotFoundError_OtherCause(t *testing.T) {
	err := NewNotFoundError("player", "Alice").WithCause(New("roster empty"))

	if got, want := err.Error(), "player 'Alice' not found: roster empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(err, ErrTeamNotFound) {
		t.Error("errors.Is(err, ErrTeamNotFound) = true, want false")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("expected an integer"),
			want: "expected an integer",
		},
		{
			name: "field and value",
			err:  NewValidationError("expected an integer").WithField("team ID").WithValue("abc"),
			want: `expected an integer [team ID "abc"]`,
		},
		{
			name: "field only",
			err:  NewValidationError("must not be empty").WithField("name"),
			want: "must not be empty [name]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("expected an integer").WithCause(ErrInvalidNumber)

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("errors.Is(err, ErrInvalidInput) = false, want true")
	}
	if !errors.Is(err, ErrInvalidNumber) {
		t.Error("errors.Is(err, ErrInvalidNumber) = false, want true")
	}
	if errors.Is(err, ErrInvalidChoice) {
		t.Error("errors.Is(err, ErrInvalidChoice) = true, want false")
	}
}

func TestInputError(t *testing.T) {
	err := NewInputError("read choice", io.ErrUnexpectedEOF)

	if got, want := err.Error(), "input error [op=read choice]: reading input: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, io.ErrUnexpectedEOF) = false, want true")
	}
	if err.IsUserFacing() {
		t.Error("IsUserFacing() = true, want false")
	}
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", New("boom"), false},
		{"not found", NewNotFoundError("team", "1"), true},
		{"wrapped validation", fmt.Errorf("op: %w", NewValidationError("bad")), true},
		{"input", NewInputError("", io.ErrClosedPipe), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"nil", nil, SeverityDebug},
		{"plain", New("boom"), SeverityError},
		{"not found", NewNotFoundError("team", "1"), SeverityWarning},
		{"input", NewInputError("", io.ErrClosedPipe), SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrTeamNotFound, "adding player to team %d", 4)
	if got, want := err.Error(), "adding player to team 4: team not found"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !errors.Is(Wrap(ErrInvalidChoice, "menu"), ErrInvalidChoice) {
		t.Error("Wrap should preserve the wrapped error")
	}
}
