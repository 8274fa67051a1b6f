package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/clubhouse/internal/team"
	"github.com/Iron-Ham/clubhouse/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// separatorWidth is the length of the rule printed between teams, capped by
// the display width.
const separatorWidth = 40

// displayTeams prints every team in ascending ID order.
func (l *Loop) displayTeams() {
	entries := l.reg.Snapshot()
	l.logger.WithOperation("display_teams").Debug("listing teams", "count", len(entries))

	if len(entries) == 0 {
		l.println(l.styles.Label.Render("No teams"))
		return
	}
	for i, e := range entries {
		if i > 0 {
			l.separator()
		}
		l.displayTeam(e.ID, e.Team)
	}
}

func (l *Loop) displayTeam(id int, t *team.Team) {
	l.line(l.styles.Heading.Render("Team ID: " + strconv.Itoa(id)))
	l.field("Name:", l.styles.Value.Render(t.Name()))
	l.field("Coach:", l.styles.Value.Render(t.Coach()))
	l.field("Stadium:", l.styles.Value.Render(t.Stadium()))
	if l.showKind {
		l.field("Kind:", l.styles.Kind.Render(t.Kind().String()))
	}
	if l.showStatistics {
		s := t.Statistics()
		l.field("Record:", l.styles.Record.Render(fmt.Sprintf("%s (played %d)", s, s.Played())))
	}
	l.line(l.styles.Label.Render("Players:"))
	for name, number := range t.Players() {
		l.player(name, number)
	}
}

func (l *Loop) field(label, value string) {
	l.line(l.styles.Label.Render(label) + " " + value)
}

// player prints "<name> - <number>". Only the name is shortened to fit the
// width; the number is always printed.
func (l *Loop) player(name string, number int) {
	suffix := " - " + l.styles.Number.Render(strconv.Itoa(number))
	if avail := l.width - lipgloss.Width(suffix); l.width > 0 && lipgloss.Width(name) > avail {
		name = util.TruncateANSI(name, avail)
	}
	l.println(l.styles.Player.Render(name) + suffix)
}

func (l *Loop) separator() {
	n := separatorWidth
	if l.width > 0 {
		n = min(n, l.width)
	}
	l.println(l.styles.Separator.Render(strings.Repeat("-", n)))
}

// line prints s truncated to the configured width. A width of 0 prints s
// unchanged.
func (l *Loop) line(s string) {
	l.println(util.FitWidth(s, l.width))
}
