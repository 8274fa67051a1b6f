package menu

import (
	"strings"
	"testing"
)

// between returns the text after the first display heading and before the
// next menu.
func between(t *testing.T, out string) string {
	t.Helper()
	start := strings.Index(out, "Team ID: ")
	if start < 0 {
		t.Fatalf("no team display in output:\n%s", out)
	}
	rest := out[start:]
	if end := strings.Index(rest, WelcomeText); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func TestDisplay_Scenario(t *testing.T) {
	input := "1 Reds Smith Arena 2 Blues Jones Field 3 0 Alice 7 6 0 3 1 2 5 9"
	out, _, err := runLoop(t, input)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		"Team ID: 0",
		"Name: Reds",
		"Coach: Smith",
		"Stadium: Arena",
		"Kind: professional",
		"Record: 3-1-2 (played 6)",
		"Players:",
		"Alice - 7",
		strings.Repeat("-", separatorWidth),
		"Team ID: 1",
		"Name: Blues",
		"Coach: Jones",
		"Stadium: Field",
		"Kind: amateur",
		"Record: 0-0-0 (played 0)",
		"Players:",
		"",
	}, "\n")

	if got := between(t, out); got != want {
		t.Errorf("display =\n%s\nwant\n%s", got, want)
	}
}

func TestDisplay_Empty(t *testing.T) {
	out, _, err := runLoop(t, "5 9")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No teams\n") {
		t.Errorf("missing empty marker:\n%s", out)
	}
}

func TestDisplay_PlayersSortedByName(t *testing.T) {
	out, _, err := runLoop(t, "1 Reds Smith Arena 3 0 Zed 1 3 0 Amy 2 3 0 Mo 3 5 9")
	if err != nil {
		t.Fatal(err)
	}
	got := between(t, out)
	amy, mo, zed := strings.Index(got, "Amy - 2"), strings.Index(got, "Mo - 3"), strings.Index(got, "Zed - 1")
	if amy < 0 || mo < 0 || zed < 0 || !(amy < mo && mo < zed) {
		t.Errorf("players not listed in name order:\n%s", got)
	}
}

func TestDisplay_OptionalLines(t *testing.T) {
	out, _, err := runLoop(t, "1 Reds Smith Arena 5 9", WithKind(false), WithStatistics(false), WithWelcome(false))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Kind:") || strings.Contains(out, "Record:") {
		t.Errorf("disabled lines printed:\n%s", out)
	}
	if !strings.Contains(out, "Stadium: Arena\nPlayers:\n") {
		t.Errorf("expected roster directly after stadium:\n%s", out)
	}
}

func TestDisplay_TruncatesToWidth(t *testing.T) {
	long := "Borussia-Moenchengladbach-Football-Club"
	out, _, err := runLoop(t, "1 "+long+" Smith Arena 3 0 "+long+" 11 5 9", WithWidth(24))
	if err != nil {
		t.Fatal(err)
	}
	got := between(t, out)
	if strings.Contains(got, long) {
		t.Errorf("long name not truncated:\n%s", got)
	}
	if !strings.Contains(got, "Name: Borussia-Moench...\n") {
		t.Errorf("expected truncated name line:\n%s", got)
	}
	if !strings.Contains(got, "Borussia-Moenche... - 11\n") {
		t.Errorf("expected truncated player name with number kept:\n%s", got)
	}
	if !strings.Contains(got, "Coach: Smith\n") {
		t.Error("short lines should be untouched")
	}
}

func TestDisplay_PlayerNumberKeptAtNarrowWidth(t *testing.T) {
	out, _, err := runLoop(t, "1 Reds Smith Arena 3 0 Maximilian 12345 3 0 Al 9 5 9", WithWidth(12))
	if err != nil {
		t.Fatal(err)
	}
	got := between(t, out)
	if !strings.Contains(got, "M... - 12345\n") {
		t.Errorf("number dropped from narrow player line:\n%s", got)
	}
	if !strings.Contains(got, "Al - 9\n") {
		t.Errorf("short player line should be untouched:\n%s", got)
	}
}

func TestDisplay_NoWidthPrintsFullNames(t *testing.T) {
	long := strings.Repeat("X", 100)
	out, _, err := runLoop(t, "1 "+long+" Smith Arena 3 0 "+long+" 7 5 9", WithWidth(0))
	if err != nil {
		t.Fatal(err)
	}
	got := between(t, out)
	if !strings.Contains(got, "Name: "+long+"\n") || !strings.Contains(got, long+" - 7\n") {
		t.Errorf("names should be printed in full:\n%s", got)
	}
}

func TestDisplay_SeparatorFitsWidth(t *testing.T) {
	out, _, err := runLoop(t, "1 A B C 1 D E F 5 9", WithWidth(25))
	if err != nil {
		t.Fatal(err)
	}
	got := between(t, out)
	if !strings.Contains(got, "\n"+strings.Repeat("-", 25)+"\nTeam ID: 1") {
		t.Errorf("expected a 25-column rule between teams:\n%s", got)
	}
	if strings.Count(got, strings.Repeat("-", 25)) != 1 {
		t.Errorf("rule should appear only between teams:\n%s", got)
	}
}
