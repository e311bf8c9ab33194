package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the ship with its bottom edge centred on (centerX, bottomY).
func CreatePlayer(ecs *ecs.ECS, centerX, bottomY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	attachObject(ecs, player, centerX-w/2, bottomY-h, w, h, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.Speed,
	})

	return player
}
