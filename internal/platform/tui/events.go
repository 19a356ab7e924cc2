package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// eventSink logs game events and persists the ones the history keeps.
// Both fields are optional.
type eventSink struct {
	store  *storage.Store
	logger *log.Logger
}

func (s eventSink) handle(gameID string, events []core.Event) {
	for _, ev := range events {
		if s.logger != nil {
			s.log(gameID, ev)
		}
		if s.store == nil {
			continue
		}
		if err := s.store.RecordEvent(gameID, ev); err != nil && s.logger != nil {
			s.logger.Warn("could not record event", "game", gameID, "event", ev.Kind, "error", err)
		}
	}
}

func (s eventSink) log(gameID string, ev core.Event) {
	switch ev.Kind {
	case core.EventBossResult:
		s.logger.Info("boss duel finished",
			"game", gameID,
			"level", ev.Level,
			"won", ev.Won,
			"player", ev.PlayerMarks,
			"boss", ev.BossMarks,
			"reason", ev.Reason,
			"elapsed_ms", ev.ElapsedMS,
		)
	case core.EventLevelStart:
		s.logger.Debug("level started", "game", gameID, "level", ev.Level, "lives", ev.Lives)
	default:
		s.logger.Info(ev.Kind.String(), "game", gameID, "level", ev.Level, "lives", ev.Lives)
	}
}
