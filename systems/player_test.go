package systems

import (
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/automoto/invaders/tags"
)

func TestUpdatePlayer_Movement(t *testing.T) {
	tests := []struct {
		name    string
		startX  float64
		control components.ControlData
		wantX   float64
	}{
		{name: "left", startX: 330, control: components.ControlData{Left: true}, wantX: 322},
		{name: "right", startX: 330, control: components.ControlData{Right: true}, wantX: 338},
		{name: "both holds left", startX: 330, control: components.ControlData{Left: true, Right: true}, wantX: 322},
		{name: "left wall", startX: 5, control: components.ControlData{Left: true}, wantX: 5},
		{name: "right wall", startX: 655, control: components.ControlData{Right: true}, wantX: 655},
		{name: "idle", startX: 330, wantX: 330},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(0, 1, 0)
			player := factory.CreatePlayer(e, 360, 680)
			obj := components.Object.Get(player)
			obj.X = tt.startX
			obj.Update()
			*GetControl(e) = tt.control

			UpdatePlayer(e)

			if obj.X != tt.wantX {
				t.Fatalf("expected x %.0f, got %.0f", tt.wantX, obj.X)
			}
		})
	}
}

func TestUpdatePlayer_FireCooldown(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreatePlayer(e, 360, 680)
	*GetControl(e) = components.ControlData{Fire: true}
	round := GetRound(e)

	UpdatePlayer(e)
	if n := count(e, tags.PlayerBullet); n != 1 {
		t.Fatalf("expected the first shot immediately, got %d bullets", n)
	}
	if !queued(e, cfg.SoundPlayerFire) {
		t.Fatalf("expected a player fire sound to be queued")
	}

	// 27 frames is just short of 450ms.
	round.Frame = 27
	UpdatePlayer(e)
	if n := count(e, tags.PlayerBullet); n != 1 {
		t.Fatalf("shot inside the cooldown, got %d bullets", n)
	}

	round.Frame = 28
	UpdatePlayer(e)
	if n := count(e, tags.PlayerBullet); n != 2 {
		t.Fatalf("expected a second shot after the cooldown, got %d bullets", n)
	}
}

func TestUpdatePlayer_BulletSpawnsCentred(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreatePlayer(e, 360, 680)
	*GetControl(e) = components.ControlData{Fire: true}

	UpdatePlayer(e)

	bullet, ok := tags.PlayerBullet.First(e.World)
	if !ok {
		t.Fatalf("expected a bullet")
	}
	obj := components.Object.Get(bullet)
	if obj.X != 358 || obj.Y != 655 {
		t.Fatalf("expected bullet at (358,655), got (%.0f,%.0f)", obj.X, obj.Y)
	}
}

func TestUpdateExplosions_Finish(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	entry := factory.SpawnExplosion(e, 100, 100, 40)

	UpdateExplosions(e)
	if alpha := components.Explosion.Get(entry).Alpha; alpha >= 1 {
		t.Fatalf("explosion should start fading, alpha %v", alpha)
	}

	for i := 0; i < 60; i++ {
		UpdateExplosions(e)
	}
	if n := count(e, components.Explosion); n != 0 {
		t.Fatalf("finished explosions should be removed, %d left", n)
	}
}

func TestUpdateOutcome(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	factory.CreateEnemy(e, 100, 100, cfg.TierRare)

	UpdateOutcome(e)
	if state := GetRound(e).State; state != cfg.RoundInProgress {
		t.Fatalf("enemies remain, expected in progress, got %s", state)
	}

	e = newTestWorld(0, 1, 0)
	factory.CreateLegendary(e, cfg.SideLeft)
	UpdateOutcome(e)
	if state := GetRound(e).State; state != cfg.RoundWon {
		t.Fatalf("a legendary alone does not hold the round, got %s", state)
	}

	e = newTestWorld(0, 1, 0)
	GetRound(e).State = cfg.RoundLost
	UpdateOutcome(e)
	if state := GetRound(e).State; state != cfg.RoundLost {
		t.Fatalf("a lost round stays lost, got %s", state)
	}
}
