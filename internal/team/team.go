package team

import (
	"iter"
	"maps"
	"slices"
)

// Team is a single club record: identity fixed at creation, plus a roster
// and statistics that are mutated in place.
//
// Team is not safe for concurrent use.
type Team struct {
	info    Info
	kind    Kind
	players map[string]int // player name -> jersey number
	stats   Statistics
}

// New creates a Team with an empty roster and a zero record.
func New(kind Kind, info Info) *Team {
	return &Team{
		info:    info,
		kind:    kind,
		players: make(map[string]int),
	}
}

// Name returns the team name.
func (t *Team) Name() string { return t.info.Name }

// Coach returns the coach name.
func (t *Team) Coach() string { return t.info.Coach }

// Stadium returns the stadium name.
func (t *Team) Stadium() string { return t.info.Stadium }

// Info returns the identity fields the team was created with.
func (t *Team) Info() Info { return t.info }

// Kind returns the team's kind tag.
func (t *Team) Kind() Kind { return t.kind }

// AddPlayer sets the jersey number for name, replacing any previous number.
// It reports whether an entry for name already existed.
func (t *Team) AddPlayer(name string, number int) (replaced bool) {
	_, replaced = t.players[name]
	t.players[name] = number
	return replaced
}

// RemovePlayer deletes name from the roster. Removing an absent player is a
// no-op; the return value reports whether anything was removed.
func (t *Team) RemovePlayer(name string) (removed bool) {
	_, removed = t.players[name]
	delete(t.players, name)
	return removed
}

// Number returns the jersey number for name.
func (t *Team) Number(name string) (int, bool) {
	n, ok := t.players[name]
	return n, ok
}

// PlayerCount returns the roster size.
func (t *Team) PlayerCount() int {
	return len(t.players)
}

// Players yields (name, number) pairs in ascending name order. The roster is
// read lazily, so the sequence must not be held across mutations.
func (t *Team) Players() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, name := range slices.Sorted(maps.Keys(t.players)) {
			if !yield(name, t.players[name]) {
				return
			}
		}
	}
}

// SetStatistics replaces the record wholesale; values are not accumulated.
func (t *Team) SetStatistics(s Statistics) {
	t.stats = s
}

// Statistics returns the current record.
func (t *Team) Statistics() Statistics {
	return t.stats
}

// Clone returns a deep copy of the team.
func (t *Team) Clone() *Team {
	return &Team{
		info:    t.info,
		kind:    t.kind,
		players: maps.Clone(t.players),
		stats:   t.stats,
	}
}
