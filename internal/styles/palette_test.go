package styles

import (
	"slices"
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()

	expected := []string{"default", "monokai", "dracula", "nord", "gruvbox", "solarized-light"}
	if len(themes) != len(expected) {
		t.Fatalf("BuiltinThemes() returned %d themes, want %d", len(themes), len(expected))
	}
	for _, want := range expected {
		if !slices.Contains(themes, want) {
			t.Errorf("BuiltinThemes() missing %q", want)
		}
	}
}

func TestIsValidTheme(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	RegisterCustomTheme("club", &ThemeFile{Name: "Club", Version: "1"})

	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default theme", "default", true},
		{"nord theme", "nord", true},
		{"solarized-light theme", "solarized-light", true},
		{"custom theme", "club", true},
		{"invalid theme", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.theme); got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	ClearCustomThemes()

	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			p := GetPalette(ThemeName(name))
			if p == nil {
				t.Fatal("GetPalette returned nil")
			}
			colors := map[string]string{
				"Primary":      string(p.Primary),
				"Secondary":    string(p.Secondary),
				"Warning":      string(p.Warning),
				"Error":        string(p.Error),
				"Muted":        string(p.Muted),
				"Text":         string(p.Text),
				"Border":       string(p.Border),
				"PlayerName":   string(p.PlayerName),
				"JerseyNumber": string(p.JerseyNumber),
				"KindBadge":    string(p.KindBadge),
			}
			for field, c := range colors {
				if !isValidHexColor(c) {
					t.Errorf("%s = %q, want hex color", field, c)
				}
			}
		})
	}

	t.Run("unknown falls back to default", func(t *testing.T) {
		if got, want := GetPalette("nope").Primary, DefaultPalette().Primary; got != want {
			t.Errorf("Primary = %q, want %q", got, want)
		}
	})
}

func TestGetPalette_DistinctThemes(t *testing.T) {
	if GetPalette(ThemeNord).Primary == GetPalette(ThemeDracula).Primary {
		t.Error("nord and dracula should not share a primary color")
	}
}
