package round

import (
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems"
	"github.com/automoto/invaders/systems/factory"
)

func singleEnemy(legendary int) systems.Wave {
	return systems.Wave{Rows: [][]cfg.Tier{{cfg.TierRare}}, Legendary: legendary}
}

func TestGame_BulletHitsPlayerLosesRound(t *testing.T) {
	for _, level := range []int{0, 3} {
		g := NewGame(level, 120, 1, WithSeed(1), WithWave(singleEnemy(0)))
		factory.CreateEnemyBullet(g.ECS(), 360, 665, cfg.BulletRare)

		res := g.Update(InputState{})

		if res.Outcome != Lost {
			t.Fatalf("level %d: expected lost, got %s", level, res.Outcome)
		}
		if res.Lives != -1 {
			t.Fatalf("level %d: expected lives -1, got %d", level, res.Lives)
		}
		if res.Level != level {
			t.Fatalf("expected level %d to be reported unchanged, got %d", level, res.Level)
		}
		if res.Score != 120 {
			t.Fatalf("expected score 120 carried, got %d", res.Score)
		}
	}
}

func TestGame_ClearingWaveWins(t *testing.T) {
	g := NewGame(0, 0, 1, WithSeed(1), WithWave(singleEnemy(0)))
	factory.CreatePlayerBullet(g.ECS(), 90, 116)

	res := g.Update(InputState{})

	want := Result{Outcome: Won, Level: 1, Score: 10, Lives: 2}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}
	next, ok := res.NextLevel()
	if !ok || next != 1 {
		t.Fatalf("expected next level 1, got %d (%v)", next, ok)
	}
}

func TestGame_TerminalResultIsStable(t *testing.T) {
	g := NewGame(0, 0, 1, WithSeed(1), WithWave(singleEnemy(0)))
	factory.CreateEnemyBullet(g.ECS(), 360, 665, cfg.BulletRare)
	first := g.Update(InputState{})
	frame := components.Round.Get(g.round).Frame

	for i := 0; i < 10; i++ {
		if res := g.Update(InputState{Fire: true, Left: true}); res != first {
			t.Fatalf("update %d after the end changed the result: %+v vs %+v", i, res, first)
		}
	}
	if f := components.Round.Get(g.round).Frame; f != frame {
		t.Fatalf("ended round kept simulating: frame %d -> %d", frame, f)
	}
}

func TestGame_EmptyWaveWinsImmediately(t *testing.T) {
	g := NewGame(4, 50, 3, WithSeed(1), WithWave(systems.Wave{}))
	res := g.Update(InputState{})
	if res.Outcome != Won || res.Level != 5 || res.Lives != 4 || res.Score != 50 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestGame_NegativeInputsClamped(t *testing.T) {
	g := NewGame(-3, -5, -1, WithSeed(1))
	res := g.Result()
	if res.Outcome != InProgress || res.Level != 0 || res.Score != 0 || res.Lives != 0 {
		t.Fatalf("expected a clamped in-progress round, got %+v", res)
	}
}

func TestGame_InitialSnapshot(t *testing.T) {
	g := NewGame(0, 0, 1, WithSeed(11))
	f := g.Snapshot()

	if n := f.Count(SpriteEnemy); n != 48 {
		t.Fatalf("expected 48 enemies, got %d", n)
	}
	if n := f.Count(SpriteBlock); n != 236 {
		t.Fatalf("expected 236 blocks, got %d", n)
	}
	if n := f.Count(SpritePlayer); n != 1 {
		t.Fatalf("expected one player, got %d", n)
	}
	if f.Lives != 1 || f.Level != 0 || f.Score != 0 {
		t.Fatalf("unexpected HUD values %+v", f)
	}
}

func TestGame_NoLegendaryWithoutQuota(t *testing.T) {
	g := NewGame(0, 0, 1000, WithSeed(2), WithWave(singleEnemy(0)))
	for i := 0; i < 1200; i++ {
		g.Update(InputState{})
		if n := g.Snapshot().Count(SpriteLegendary); n != 0 {
			t.Fatalf("frame %d: legendary spawned with quota 0", i)
		}
		if g.State() != cfg.RoundInProgress {
			break
		}
	}
}

func TestGame_LegendaryArrivesWithQuota(t *testing.T) {
	g := NewGame(0, 0, 1000, WithSeed(2), WithWave(singleEnemy(1)))
	for i := 0; i < 801; i++ {
		g.Update(InputState{})
		if g.Snapshot().Count(SpriteLegendary) > 0 {
			return
		}
	}
	t.Fatalf("expected a legendary within 800 frames")
}

func TestGame_LivesNeverIncreaseMidRound(t *testing.T) {
	g := NewGame(5, 0, 20, WithSeed(3))
	prev := g.Result().Lives
	for i := 0; i < 3000 && g.State() == cfg.RoundInProgress; i++ {
		res := g.Update(InputState{Fire: i%2 == 0, Left: i%200 < 100, Right: i%200 >= 100})
		if res.Outcome == InProgress && res.Lives > prev {
			t.Fatalf("frame %d: lives rose from %d to %d", i, prev, res.Lives)
		}
		prev = res.Lives
	}
}

func TestGame_FireQueuesSound(t *testing.T) {
	g := NewGame(0, 0, 1, WithSeed(1), WithWave(singleEnemy(0)))
	g.Update(InputState{Fire: true})

	sounds := g.DrainSounds()
	found := false
	for _, s := range sounds {
		if s == cfg.SoundPlayerFire {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a player fire sound, got %v", sounds)
	}
	if again := g.DrainSounds(); len(again) != 0 {
		t.Fatalf("drain should empty the queue, got %v", again)
	}
}

func TestGame_SameSeedSameRound(t *testing.T) {
	a := NewGame(7, 0, 50, WithSeed(99))
	b := NewGame(7, 0, 50, WithSeed(99))
	for i := 0; i < 600; i++ {
		in := InputState{Fire: true, Right: i%120 < 60, Left: i%120 >= 60}
		ra, rb := a.Update(in), b.Update(in)
		if ra != rb {
			t.Fatalf("frame %d: results diverged %+v vs %+v", i, ra, rb)
		}
	}
}
