package team

import "github.com/Iron-Ham/clubhouse/internal/event"

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// registryConfig holds optional settings for the Registry.
type registryConfig struct {
	bus *event.Bus
}

// WithBus makes the registry publish roster events (team.created,
// player.added, player.removed, team.statistics_updated) on bus.
func WithBus(bus *event.Bus) RegistryOption {
	return func(c *registryConfig) {
		c.bus = bus
	}
}
