package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a formation enemy of the given tier with its top-left at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, tier cfg.Tier) *donburi.Entry {
	tierCfg, ok := cfg.Enemy.Tiers[tier]
	if !ok {
		tier = cfg.TierRare
		tierCfg = cfg.Enemy.Tiers[tier]
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	attachObject(ecs, enemy, x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Tier:   tier,
		Health: tierCfg.Health,
		Value:  tierCfg.Value,
	})

	return enemy
}

// CreateLegendary spawns the bonus enemy just off the given screen edge,
// heading towards the other one.
func CreateLegendary(ecs *ecs.ECS, side cfg.Side) *donburi.Entry {
	x, speed := cfg.Legendary.LeftSpawnX, cfg.Legendary.Speed
	if side == cfg.SideRight {
		x, speed = cfg.Legendary.RightSpawnX, -cfg.Legendary.Speed
	}

	legendary := archetypes.Legendary.Spawn(ecs)
	attachObject(ecs, legendary, x, cfg.Legendary.Y, cfg.Legendary.Width, cfg.Legendary.Height, tags.ResolvLegendary)

	components.Legendary.SetValue(legendary, components.LegendaryData{
		SpeedX: speed,
		Side:   side,
	})

	return legendary
}
