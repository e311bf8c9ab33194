package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the ship from the frame's control state and fires when
// the cooldown has elapsed. Left wins when both directions are held.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	round := GetRound(e)
	if round == nil {
		return
	}

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	control := GetControl(e)

	if control.Left && obj.X > cfg.Player.MinX {
		obj.X -= player.Speed
	} else if control.Right && obj.X < cfg.Player.MaxX {
		obj.X += player.Speed
	}
	obj.Update()

	now := GameTime(round)
	if !control.Fire {
		return
	}
	if player.HasShot && now-player.LastShot < cfg.Player.FireCooldown {
		return
	}

	cx, cy := obj.Center()
	factory.CreatePlayerBullet(e, cx, cy)
	player.LastShot = now
	player.HasShot = true
	PlaySFX(e, cfg.SoundPlayerFire)
}
