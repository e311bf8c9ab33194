package round

import cfg "github.com/automoto/invaders/config"

// Session carries level, score and lives from one round to the next.
type Session struct {
	Level int
	Score int
	Lives int

	// Set by Apply when a round is lost.
	FinalLevel int
	FinalScore int

	opts []Option
}

// NewSession starts a run at level with the configured starting lives.
// opts are passed to every Game the session builds.
func NewSession(level int, opts ...Option) *Session {
	s := &Session{opts: opts}
	s.Restart()
	s.Level = max(level, 0)
	return s
}

// NewRound builds a Game from the carried values.
func (s *Session) NewRound() *Game {
	return NewGame(s.Level, s.Score, s.Lives, s.opts...)
}

// Apply folds a finished round into the session. It reports whether the
// run goes on; a loss records the final values and resets the run.
func (s *Session) Apply(r Result) bool {
	switch r.Outcome {
	case Won:
		s.Level = r.Level
		s.Score = r.Score
		s.Lives = r.Lives
		return true
	case Lost:
		s.FinalLevel = r.Level
		s.FinalScore = r.Score
		s.Restart()
		return false
	}
	return true
}

// Restart resets to level 0 with no score.
func (s *Session) Restart() {
	s.Level = 0
	s.Score = 0
	s.Lives = cfg.Player.StartingLives
}
