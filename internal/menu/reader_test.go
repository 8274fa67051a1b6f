package menu

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Iron-Ham/clubhouse/internal/errors"
)

func TestTokenReader_Next(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single spaces", "1 Reds Smith", []string{"1", "Reds", "Smith"}},
		{"mixed whitespace", "\t1\n\n  Reds \r\n Smith  ", []string{"1", "Reds", "Smith"}},
		{"unterminated last token", "Arena", []string{"Arena"}},
		{"unicode", "Atlético 浦和", []string{"Atlético", "浦和"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTokenReader(strings.NewReader(tt.input))
			var got []string
			for {
				tok, err := tr.next("field")
				if errors.Is(err, errors.ErrInputClosed) {
					break
				}
				if err != nil {
					t.Fatalf("next() error = %v", err)
				}
				got = append(got, tok)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenReader_LongToken(t *testing.T) {
	long := strings.Repeat("X", 200*1024)
	tr := newTokenReader(strings.NewReader(long + " next"))

	tok, err := tr.next("team name")
	if err != nil {
		t.Fatalf("next() error = %v", err)
	}
	if len(tok) != len(long) {
		t.Errorf("token length = %d, want %d", len(tok), len(long))
	}
	if tok, _ := tr.next("coach name"); tok != "next" {
		t.Errorf("following token = %q, want %q", tok, "next")
	}
}

func TestTokenReader_ReadError(t *testing.T) {
	tr := newTokenReader(iotest.TimeoutReader(strings.NewReader("1 Reds")))

	if tok, err := tr.next("choice"); err != nil || tok != "1" {
		t.Fatalf("next() = %q, %v; want 1", tok, err)
	}
	_, err := tr.next("team name")
	var ie *errors.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("next() error = %v, want *InputError", err)
	}
	if ie.Operation != "team name" || !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("InputError = %+v, want team name wrapping ErrTimeout", ie)
	}
}
