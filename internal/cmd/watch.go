package cmd

import (
	"github.com/Iron-Ham/clubhouse/internal/config"
	"github.com/Iron-Ham/clubhouse/internal/event"
	"github.com/Iron-Ham/clubhouse/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// watchConfig re-applies the log level whenever the active config file
// changes. Without a config file there is nothing to watch.
func watchConfig(logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(configChangeHandler(logger))
	viper.WatchConfig()
}

// configChangeHandler builds the viper change callback. Only settings that
// can change mid-session are applied; the rest take effect on next start.
func configChangeHandler(logger *logging.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "error", err.Error())
			return
		}
		logger.SetLevel(cfg.Logging.Level)
		logger.Info("config reloaded", "file", e.Name, "level", logger.Level())
	}
}

// subscribeRosterLog records every roster change in the session log.
func subscribeRosterLog(bus *event.Bus, logger *logging.Logger) {
	bus.SubscribeAll(func(e event.Event) {
		log := logger.With("event", e.EventType())
		switch ev := e.(type) {
		case event.TeamCreatedEvent:
			log.WithTeam(ev.TeamID).Info("roster change", "name", ev.Name, "kind", ev.Kind)
		case event.PlayerAddedEvent:
			log.WithTeam(ev.TeamID).Info("roster change", "player", ev.Player, "number", ev.Number, "replaced", ev.Replaced)
		case event.PlayerRemovedEvent:
			log.WithTeam(ev.TeamID).Info("roster change", "player", ev.Player, "existed", ev.Existed)
		case event.StatisticsUpdatedEvent:
			log.WithTeam(ev.TeamID).Info("roster change", "wins", ev.Wins, "losses", ev.Losses, "draws", ev.Draws)
		default:
			log.Debug("unhandled event")
		}
	})
}
