package host

import (
	"github.com/google/uuid"
	"github.com/plus3/tetris/game"
	"github.com/rs/zerolog"
)

// LogSystem writes game lifecycle and scoring events to a logger. Each game
// gets its own session id so consecutive games can be told apart.
type LogSystem struct {
	Logger zerolog.Logger

	session uuid.UUID
	started bool
	over    bool
	paused  bool
}

// Session returns the id of the game currently being logged.
func (s *LogSystem) Session() uuid.UUID {
	return s.session
}

func (s *LogSystem) Execute(frame *Frame) {
	g := frame.Game

	if !s.started || (s.over && !g.GameOver()) {
		s.session = uuid.New()
		s.started = true
		s.Logger.Info().
			Str("session", s.session.String()).
			Str("current", g.Current().Shape.String()).
			Str("next", g.Next().Shape.String()).
			Msg("game started")
	}

	for _, ev := range frame.Events {
		switch ev.Kind {
		case game.EventLinesCleared:
			s.Logger.Info().
				Str("session", s.session.String()).
				Int("lines", ev.Lines).
				Int("score", g.Score()).
				Msg("lines cleared")
		case game.EventGameOver:
			if s.over {
				continue
			}
			stats := g.Stats()
			s.Logger.Info().
				Str("session", s.session.String()).
				Int("score", ev.Score).
				Int("games_over", stats.GamesOver).
				Msg("game over")
		}
	}

	if g.Paused() != s.paused {
		s.Logger.Debug().
			Str("session", s.session.String()).
			Bool("paused", g.Paused()).
			Msg("pause toggled")
	}

	s.over = g.GameOver()
	s.paused = g.Paused()
}
