package systems

import (
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/automoto/invaders/tags"
)

func TestCollisions_PlayerBulletDamagesEnemy(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	enemy := factory.CreateEnemy(e, 200, 200, cfg.TierEpic)

	factory.CreatePlayerBullet(e, 220, 216)
	UpdateCollisions(e)

	if hp := components.Enemy.Get(enemy).Health; hp != 1 {
		t.Fatalf("expected health 1 after one hit, got %d", hp)
	}
	if score := GetRound(e).Score; score != 20 {
		t.Fatalf("expected score 20 after one hit, got %d", score)
	}
	if n := count(e, tags.PlayerBullet); n != 0 {
		t.Fatalf("bullet should be consumed, %d left", n)
	}

	factory.CreatePlayerBullet(e, 220, 216)
	UpdateCollisions(e)

	if n := count(e, components.Enemy); n != 0 {
		t.Fatalf("enemy at 0 health should be removed, %d left", n)
	}
	if score := GetRound(e).Score; score != 40 {
		t.Fatalf("expected score 40 after two hits, got %d", score)
	}
	if n := count(e, components.Explosion); n != 1 {
		t.Fatalf("expected one explosion effect, got %d", n)
	}
	if !queued(e, cfg.SoundExplosion) {
		t.Fatalf("expected an explosion sound to be queued")
	}
}

func TestCollisions_BlockShieldsEnemy(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreateFortifications(e)
	enemy := factory.CreateEnemy(e, 60, 470, cfg.TierEpic)

	factory.CreatePlayerBullet(e, 72, 490)
	UpdateCollisions(e)

	if hp := components.Enemy.Get(enemy).Health; hp != 2 {
		t.Fatalf("block should absorb the bullet, enemy health %d", hp)
	}
	if score := GetRound(e).Score; score != 0 {
		t.Fatalf("no score for hitting a block, got %d", score)
	}
	if n := count(e, tags.PlayerBullet); n != 0 {
		t.Fatalf("bullet should be consumed by the block, %d left", n)
	}
	if n := count(e, tags.Block); n >= 236 {
		t.Fatalf("expected blocks to be removed, %d left", n)
	}
}

func TestCollisions_BulletClash(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreateEnemyBullet(e, 300, 300, cfg.BulletRare)
	factory.CreatePlayerBullet(e, 300, 305)

	UpdateCollisions(e)

	if score := GetRound(e).Score; score != 5 {
		t.Fatalf("expected 5 points for a bullet clash, got %d", score)
	}
	if n := count(e, components.Bullet); n != 0 {
		t.Fatalf("both bullets should be removed, %d left", n)
	}
}

func TestCollisions_LegendaryKill(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	legendary := factory.CreateLegendary(e, cfg.SideLeft)
	obj := components.Object.Get(legendary)
	obj.X = 100
	obj.Update()

	factory.CreatePlayerBullet(e, 130, 94)
	UpdateCollisions(e)

	if n := count(e, components.Legendary); n != 0 {
		t.Fatalf("legendary should be destroyed, %d left", n)
	}
	if score := GetRound(e).Score; score != 1000 {
		t.Fatalf("expected 1000 points, got %d", score)
	}
}

func TestCollisions_EnemyBulletHitsPlayer(t *testing.T) {
	e := newTestWorld(0, 3, 0)
	factory.CreatePlayer(e, 360, 680)

	factory.CreateEnemyBullet(e, 360, 665, cfg.BulletRare)
	UpdateCollisions(e)

	round := GetRound(e)
	if round.Lives != 2 {
		t.Fatalf("expected 2 lives, got %d", round.Lives)
	}
	if round.State != cfg.RoundInProgress {
		t.Fatalf("expected round in progress, got %s", round.State)
	}
	if n := count(e, tags.EnemyBullet); n != 0 {
		t.Fatalf("bullet should be consumed, %d left", n)
	}

	factory.CreateEnemyBullet(e, 355, 665, cfg.BulletRare)
	factory.CreateEnemyBullet(e, 365, 665, cfg.BulletEpic)
	UpdateCollisions(e)

	if round.Lives != 0 {
		t.Fatalf("each bullet costs a life, expected 0, got %d", round.Lives)
	}
	if round.State != cfg.RoundLost {
		t.Fatalf("expected round lost, got %s", round.State)
	}
}

func TestCollisions_EnemyBulletStoppedByBlock(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreateFortifications(e)
	factory.CreateEnemyBullet(e, 72, 490, cfg.BulletRare)

	UpdateCollisions(e)

	if n := count(e, tags.EnemyBullet); n != 0 {
		t.Fatalf("bullet should be consumed by the block, %d left", n)
	}
	if n := count(e, tags.Block); n >= 236 {
		t.Fatalf("expected blocks to be removed, %d left", n)
	}
}

func TestCollisions_EnemyTouchesPlayer(t *testing.T) {
	e := newTestWorld(0, 3, 0)
	factory.CreatePlayer(e, 360, 680)
	factory.CreateEnemy(e, 340, 640, cfg.TierRare)

	UpdateCollisions(e)

	round := GetRound(e)
	if round.State != cfg.RoundLost {
		t.Fatalf("expected round lost, got %s", round.State)
	}
	if round.Lives != -1 {
		t.Fatalf("expected lives -1, got %d", round.Lives)
	}
}
