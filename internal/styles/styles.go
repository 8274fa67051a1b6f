package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles built from a color palette and bound
// to one output renderer.
type Styles struct {
	Palette *ColorPalette

	Banner    lipgloss.Style
	MenuItem  lipgloss.Style
	Prompt    lipgloss.Style
	Heading   lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Kind      lipgloss.Style
	Record    lipgloss.Style
	Player    lipgloss.Style
	Number    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
}

// New builds styles for the palette using the given renderer. A renderer
// writing to a non-terminal degrades every style to plain text.
func New(r *lipgloss.Renderer, p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	return &Styles{
		Palette: p,

		Banner:    r.NewStyle().Bold(true).Foreground(p.Primary),
		MenuItem:  r.NewStyle().Foreground(p.Text),
		Prompt:    r.NewStyle().Foreground(p.Warning),
		Heading:   r.NewStyle().Bold(true).Foreground(p.Primary),
		Label:     r.NewStyle().Foreground(p.Muted),
		Value:     r.NewStyle().Foreground(p.Text),
		Kind:      r.NewStyle().Foreground(p.KindBadge),
		Record:    r.NewStyle().Foreground(p.Secondary),
		Player:    r.NewStyle().Foreground(p.PlayerName),
		Number:    r.NewStyle().Bold(true).Foreground(p.JerseyNumber),
		Success:   r.NewStyle().Foreground(p.Secondary),
		Error:     r.NewStyle().Bold(true).Foreground(p.Error),
		Separator: r.NewStyle().Foreground(p.Border),
	}
}

// ForWriter resolves the named theme and builds styles rendering to w.
// An unknown theme yields the default styles along with an error so the
// caller can warn and carry on.
func ForWriter(w io.Writer, theme string) (*Styles, error) {
	r := lipgloss.NewRenderer(w)
	if theme == "" {
		theme = string(ThemeDefault)
	}
	if !IsValidTheme(theme) {
		return New(r, DefaultPalette()), fmt.Errorf("unknown theme %q (available: %v)", theme, ValidThemes())
	}
	return New(r, GetPalette(ThemeName(theme))), nil
}
