// Package event defines roster events and a synchronous bus that carries
// them, so the team registry can report changes without depending on logging
// or display code.
//
// # Event Types
//
// Types follow the "category.action" pattern:
//   - [TypeTeamCreated]: a team was added to the registry
//   - [TypePlayerAdded]: a roster entry was inserted or overwritten
//   - [TypePlayerRemoved]: a remove was requested, whether or not the player existed
//   - [TypeStatisticsUpdated]: a team's record was replaced
//
// # Bus
//
// [Bus] calls handlers synchronously in subscription order. It is safe for
// concurrent use, and a panicking handler is recovered so the remaining
// handlers still run.
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TypePlayerAdded, func(e event.Event) {
//	    added := e.(event.PlayerAddedEvent)
//	    fmt.Println(added.Player, added.Number)
//	})
//	bus.SubscribeAll(func(e event.Event) {
//	    log.Printf("%s at %v", e.EventType(), e.Timestamp())
//	})
package event
