// Package team holds the roster model for clubhouse.
//
// # Records
//
// A [Team] carries a name, coach and stadium fixed at creation, a roster
// mapping player names to jersey numbers, and a [Statistics] win/loss/draw
// record. Every team is tagged with a [Kind] (professional or amateur); the tag
// changes no behavior.
//
// # Registry
//
// [Registry] owns all teams, keyed by integer IDs from an injected
// [IDGenerator]. IDs start at 0, increase by one per team, and are never
// reused because teams are never removed. Lookups of unknown IDs return an
// error matching errors.ErrTeamNotFound instead of creating an entry, and
// the mutating helpers ([Registry.AddPlayer], [Registry.RemovePlayer],
// [Registry.SetStatistics]) change nothing when the lookup fails.
//
// # Events
//
// With [WithBus], the registry publishes an event.Event for every change so
// that logging can observe the roster without the registry knowing about it.
package team
