package systems

import (
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
)

func TestUpdateEnemyFire_Cooldown(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreateEnemy(e, 100, 100, cfg.TierEpic)

	for i := 0; i < 60; i++ {
		UpdateEnemyFire(e)
	}
	if n := count(e, tags.EnemyBullet); n != 0 {
		t.Fatalf("no shot expected before the cooldown passes 60, got %d", n)
	}

	UpdateEnemyFire(e)
	if n := count(e, tags.EnemyBullet); n != 1 {
		t.Fatalf("expected one shot, got %d", n)
	}
	if c := getSpawner(e).EnemyCooldown; c != 0 {
		t.Fatalf("cooldown should reset, got %d", c)
	}
	if !queued(e, cfg.SoundEnemyFire) {
		t.Fatalf("expected an enemy fire sound to be queued")
	}

	var kind cfg.BulletKind
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		kind = components.Bullet.Get(entry).Kind
	})
	if kind != cfg.BulletEpic {
		t.Fatalf("expected an Epic bullet, got %v", kind)
	}
}

func TestUpdateEnemyFire_HigherLevelFiresSooner(t *testing.T) {
	e := newTestWorld(2, 1, 0)
	factory.CreateEnemy(e, 100, 100, cfg.TierRare)

	for i := 0; i < 21; i++ {
		UpdateEnemyFire(e)
	}
	if n := count(e, tags.EnemyBullet); n != 1 {
		t.Fatalf("level 2 fires once the cooldown passes 20, got %d shots", n)
	}
}

func TestUpdateEnemyFire_NoEnemies(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	for i := 0; i < 200; i++ {
		UpdateEnemyFire(e)
	}
	if n := count(e, tags.EnemyBullet); n != 0 {
		t.Fatalf("expected no shots without enemies, got %d", n)
	}
}

func TestUpdateLegendarySpawner_ZeroQuota(t *testing.T) {
	e := newTestWorld(10, 1, 0)
	for i := 0; i < 2000; i++ {
		UpdateLegendarySpawner(e)
	}
	if n := count(e, components.Legendary); n != 0 {
		t.Fatalf("no legendary may spawn with quota 0, got %d", n)
	}
}

func TestUpdateLegendarySpawner_SpawnsAndReseeds(t *testing.T) {
	e := newTestWorld(10, 1, 2)
	spawner := getSpawner(e)
	spawner.LegendaryTimer = 1

	UpdateLegendarySpawner(e)

	if n := count(e, components.Legendary); n != 1 {
		t.Fatalf("expected a legendary, got %d", n)
	}
	if spawner.LegendaryQuota != 1 {
		t.Fatalf("expected quota 1, got %d", spawner.LegendaryQuota)
	}
	if spawner.LegendaryTimer < 400 || spawner.LegendaryTimer > 800 {
		t.Fatalf("timer should be reseeded in [400,800], got %d", spawner.LegendaryTimer)
	}

	// A second arrival waits for the first to leave.
	spawner.LegendaryTimer = 1
	UpdateLegendarySpawner(e)
	if n := count(e, components.Legendary); n != 1 {
		t.Fatalf("at most one legendary alive, got %d", n)
	}
	if spawner.LegendaryQuota != 1 {
		t.Fatalf("quota should not change while blocked, got %d", spawner.LegendaryQuota)
	}
}

func TestUpdateLegendary_CrossesAndLeaves(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	legendary := factory.CreateLegendary(e, cfg.SideLeft)

	for i := 0; i < 420; i++ {
		UpdateLegendary(e)
	}
	if x := components.Object.Get(legendary).X; x != 790 {
		t.Fatalf("expected x 790 after 420 frames, got %.0f", x)
	}

	UpdateLegendary(e)
	if n := count(e, components.Legendary); n != 0 {
		t.Fatalf("legendary past the far side should be removed, %d left", n)
	}
}

func TestUpdateLegendary_RightSideMovesLeft(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	legendary := factory.CreateLegendary(e, cfg.SideRight)

	UpdateLegendary(e)

	if x := components.Object.Get(legendary).X; x != 768 {
		t.Fatalf("expected x 768, got %.0f", x)
	}
}

func TestUpdateLegendaryFire_ThreeBulletSpread(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	legendary := factory.CreateLegendary(e, cfg.SideLeft)
	obj := components.Object.Get(legendary)
	obj.X = 300
	obj.Update()

	for i := 0; i < 1000; i++ {
		UpdateLegendaryFire(e)
	}

	n := count(e, tags.EnemyBullet)
	if n == 0 || n%3 != 0 {
		t.Fatalf("expected a positive multiple of 3 bullets, got %d", n)
	}
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		if kind := components.Bullet.Get(entry).Kind; kind != cfg.BulletLegendary {
			t.Errorf("expected legendary bullets, got %v", kind)
		}
	})
}
