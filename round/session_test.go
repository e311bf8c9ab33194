package round

import (
	"testing"

	cfg "github.com/automoto/invaders/config"
)

func TestSession_WinCarriesOver(t *testing.T) {
	s := NewSession(0, WithSeed(1))
	ok := s.Apply(Result{Outcome: Won, Level: 1, Score: 300, Lives: 2})
	if !ok {
		t.Fatalf("a win should continue the run")
	}
	if s.Level != 1 || s.Score != 300 || s.Lives != 2 {
		t.Fatalf("unexpected session %+v", s)
	}

	g := s.NewRound()
	if res := g.Result(); res.Level != 1 || res.Score != 300 || res.Lives != 2 {
		t.Fatalf("new round should start from the carried values, got %+v", res)
	}
}

func TestSession_LossResets(t *testing.T) {
	s := NewSession(4)
	s.Score = 900
	ok := s.Apply(Result{Outcome: Lost, Level: 4, Score: 900, Lives: -1})
	if ok {
		t.Fatalf("a loss should end the run")
	}
	if s.FinalLevel != 4 || s.FinalScore != 900 {
		t.Fatalf("expected final level 4 score 900, got %d %d", s.FinalLevel, s.FinalScore)
	}
	if s.Level != 0 || s.Score != 0 || s.Lives != cfg.Player.StartingLives {
		t.Fatalf("expected a reset run, got %+v", s)
	}
}

func TestSession_InProgressIsIgnored(t *testing.T) {
	s := NewSession(2)
	s.Apply(Result{Outcome: InProgress, Level: 9, Score: 9, Lives: 9})
	if s.Level != 2 || s.Score != 0 {
		t.Fatalf("in-progress results must not change the session, got %+v", s)
	}
}
