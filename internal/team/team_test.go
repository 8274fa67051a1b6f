package team

import (
	"testing"
)

func collectPlayers(t *Team) map[string]int {
	out := make(map[string]int)
	for name, number := range t.Players() {
		out[name] = number
	}
	return out
}

func TestNew(t *testing.T) {
	tm := New(KindAmateur, Info{Name: "Blues", Coach: "Jones", Stadium: "Field"})

	if tm.Name() != "Blues" || tm.Coach() != "Jones" || tm.Stadium() != "Field" {
		t.Errorf("identity = %q/%q/%q", tm.Name(), tm.Coach(), tm.Stadium())
	}
	if tm.Kind() != KindAmateur {
		t.Errorf("Kind() = %v, want %v", tm.Kind(), KindAmateur)
	}
	if tm.PlayerCount() != 0 {
		t.Errorf("PlayerCount() = %d, want 0", tm.PlayerCount())
	}
	if tm.Statistics() != (Statistics{}) {
		t.Errorf("Statistics() = %+v, want zero", tm.Statistics())
	}
}

func TestNew_EmptyStringsAllowed(t *testing.T) {
	tm := New(KindProfessional, Info{})
	if tm.Info() != (Info{}) {
		t.Errorf("Info() = %+v, want zero value", tm.Info())
	}
}

func TestTeam_AddPlayer(t *testing.T) {
	tm := New(KindProfessional, Info{Name: "Reds"})

	if replaced := tm.AddPlayer("Alice", 7); replaced {
		t.Error("first AddPlayer reported replaced")
	}
	if n, ok := tm.Number("Alice"); !ok || n != 7 {
		t.Errorf("Number(Alice) = %d, %v; want 7, true", n, ok)
	}

	if replaced := tm.AddPlayer("Alice", 10); !replaced {
		t.Error("second AddPlayer did not report replaced")
	}

	players := collectPlayers(tm)
	if len(players) != 1 || players["Alice"] != 10 {
		t.Errorf("players = %v, want map[Alice:10]", players)
	}
}

func TestTeam_RemovePlayer(t *testing.T) {
	tm := New(KindProfessional, Info{Name: "Reds"})
	tm.AddPlayer("Alice", 7)
	tm.AddPlayer("Bob", 9)

	if removed := tm.RemovePlayer("Carol"); removed {
		t.Error("removing an absent player reported removed")
	}
	if tm.PlayerCount() != 2 {
		t.Errorf("PlayerCount() = %d after no-op remove, want 2", tm.PlayerCount())
	}

	if removed := tm.RemovePlayer("Alice"); !removed {
		t.Error("removing Alice reported not removed")
	}
	players := collectPlayers(tm)
	if len(players) != 1 || players["Bob"] != 9 {
		t.Errorf("players = %v, want map[Bob:9]", players)
	}
}

func TestTeam_PlayersOrderAndEarlyStop(t *testing.T) {
	tm := New(KindAmateur, Info{})
	tm.AddPlayer("Zoe", 1)
	tm.AddPlayer("Adam", 2)
	tm.AddPlayer("Mia", 3)

	var names []string
	for name := range tm.Players() {
		names = append(names, name)
	}
	want := []string{"Adam", "Mia", "Zoe"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	count := 0
	for range tm.Players() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break visited %d players, want 1", count)
	}
}

func TestTeam_SetStatisticsOverwrites(t *testing.T) {
	tm := New(KindProfessional, Info{})

	tm.SetStatistics(Statistics{Wins: 5, Losses: 5, Draws: 5})
	tm.SetStatistics(Statistics{Wins: 3, Losses: 1, Draws: 2})

	want := Statistics{Wins: 3, Losses: 1, Draws: 2}
	if got := tm.Statistics(); got != want {
		t.Errorf("Statistics() = %+v, want %+v", got, want)
	}
}

func TestTeam_Clone(t *testing.T) {
	orig := New(KindProfessional, Info{Name: "Reds", Coach: "Smith", Stadium: "Arena"})
	orig.AddPlayer("Alice", 7)
	orig.SetStatistics(Statistics{Wins: 1})

	clone := orig.Clone()
	clone.AddPlayer("Bob", 9)
	clone.RemovePlayer("Alice")
	clone.SetStatistics(Statistics{Losses: 4})

	if _, ok := orig.Number("Alice"); !ok {
		t.Error("mutating clone removed Alice from original")
	}
	if _, ok := orig.Number("Bob"); ok {
		t.Error("mutating clone added Bob to original")
	}
	if orig.Statistics().Wins != 1 {
		t.Errorf("original statistics changed: %+v", orig.Statistics())
	}
	if clone.Info() != orig.Info() || clone.Kind() != orig.Kind() {
		t.Error("clone identity differs from original")
	}
}

func TestIDGenerator(t *testing.T) {
	g := NewIDGenerator()
	for want := 0; want < 5; want++ {
		if got := g.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}
