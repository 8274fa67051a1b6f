package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNew_NilPaletteUsesDefault(t *testing.T) {
	s := New(lipgloss.NewRenderer(&bytes.Buffer{}), nil)
	if s.Palette.Primary != DefaultPalette().Primary {
		t.Errorf("Palette.Primary = %q, want default", s.Palette.Primary)
	}
}

func TestNew_PlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(lipgloss.NewRenderer(&buf), DraculaPalette())

	for name, style := range map[string]lipgloss.Style{
		"Heading": s.Heading,
		"Number":  s.Number,
		"Error":   s.Error,
		"Label":   s.Label,
	} {
		if got := style.Render("Reds"); got != "Reds" {
			t.Errorf("%s.Render() = %q, want plain text on a non-terminal writer", name, got)
		}
	}
}

func TestForWriter(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	t.Run("builtin", func(t *testing.T) {
		s, err := ForWriter(&bytes.Buffer{}, "nord")
		if err != nil {
			t.Fatalf("ForWriter() error = %v", err)
		}
		if s.Palette.Primary != NordPalette().Primary {
			t.Errorf("Palette.Primary = %q, want nord", s.Palette.Primary)
		}
	})

	t.Run("empty means default", func(t *testing.T) {
		s, err := ForWriter(&bytes.Buffer{}, "")
		if err != nil {
			t.Fatalf("ForWriter() error = %v", err)
		}
		if s.Palette.Primary != DefaultPalette().Primary {
			t.Errorf("Palette.Primary = %q, want default", s.Palette.Primary)
		}
	})

	t.Run("unknown falls back with error", func(t *testing.T) {
		s, err := ForWriter(&bytes.Buffer{}, "neon")
		if err == nil || !strings.Contains(err.Error(), "neon") {
			t.Errorf("error = %v, want unknown theme error", err)
		}
		if s == nil || s.Palette.Primary != DefaultPalette().Primary {
			t.Error("unknown theme should still yield default styles")
		}
	})
}
