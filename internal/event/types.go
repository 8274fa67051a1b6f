package event

import "time"

// Event types published by the team registry.
const (
	TypeTeamCreated       = "team.created"
	TypePlayerAdded       = "player.added"
	TypePlayerRemoved     = "player.removed"
	TypeStatisticsUpdated = "team.statistics_updated"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// TeamCreatedEvent is emitted when a team is added to the registry.
type TeamCreatedEvent struct {
	baseEvent
	TeamID int
	Name   string
	Kind   string
}

// NewTeamCreatedEvent creates a TeamCreatedEvent.
func NewTeamCreatedEvent(teamID int, name, kind string) TeamCreatedEvent {
	return TeamCreatedEvent{
		baseEvent: newBaseEvent(TypeTeamCreated),
		TeamID:    teamID,
		Name:      name,
		Kind:      kind,
	}
}

// PlayerAddedEvent is emitted when a roster entry is inserted or overwritten.
type PlayerAddedEvent struct {
	baseEvent
	TeamID   int
	Player   string
	Number   int
	Replaced bool // true if the player already had a number
}

// NewPlayerAddedEvent creates a PlayerAddedEvent.
func NewPlayerAddedEvent(teamID int, player string, number int, replaced bool) PlayerAddedEvent {
	return PlayerAddedEvent{
		baseEvent: newBaseEvent(TypePlayerAdded),
		TeamID:    teamID,
		Player:    player,
		Number:    number,
		Replaced:  replaced,
	}
}

// PlayerRemovedEvent is emitted on every remove request, including no-ops.
type PlayerRemovedEvent struct {
	baseEvent
	TeamID  int
	Player  string
	Existed bool
}

// NewPlayerRemovedEvent creates a PlayerRemovedEvent.
func NewPlayerRemovedEvent(teamID int, player string, existed bool) PlayerRemovedEvent {
	return PlayerRemovedEvent{
		baseEvent: newBaseEvent(TypePlayerRemoved),
		TeamID:    teamID,
		Player:    player,
		Existed:   existed,
	}
}

// StatisticsUpdatedEvent is emitted when a team's win/loss/draw record is replaced.
type StatisticsUpdatedEvent struct {
	baseEvent
	TeamID int
	Wins   int
	Losses int
	Draws  int
}

// NewStatisticsUpdatedEvent creates a StatisticsUpdatedEvent.
func NewStatisticsUpdatedEvent(teamID, wins, losses, draws int) StatisticsUpdatedEvent {
	return StatisticsUpdatedEvent{
		baseEvent: newBaseEvent(TypeStatisticsUpdated),
		TeamID:    teamID,
		Wins:      wins,
		Losses:    losses,
		Draws:     draws,
	}
}
