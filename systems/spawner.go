package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyFire lets a random live enemy shoot once the cooldown exceeds
// the level's threshold. Higher levels fire more often.
func UpdateEnemyFire(e *ecs.ECS) {
	spawner := getSpawner(e)
	round := GetRound(e)
	rng := getRand(e)
	if spawner == nil || round == nil || rng == nil {
		return
	}

	spawner.EnemyCooldown++
	threshold := cfg.Spawner.BaseFireFrames / float64(round.Level+1)
	if float64(spawner.EnemyCooldown) <= threshold {
		return
	}

	var alive []*donburi.Entry
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		alive = append(alive, entry)
	})
	if len(alive) == 0 {
		return
	}

	shooter := alive[rng.Intn(len(alive))]
	enemy := components.Enemy.Get(shooter)
	cx, cy := components.Object.Get(shooter).Center()
	factory.CreateEnemyBullet(e, cx, cy, cfg.Enemy.Tiers[enemy.Tier].BulletKind)

	spawner.EnemyCooldown = 0
	PlaySFX(e, cfg.SoundEnemyFire)
}

// UpdateLegendarySpawner counts down to the next legendary arrival. An
// arrival needs quota left and no legendary already on screen.
func UpdateLegendarySpawner(e *ecs.ECS) {
	spawner := getSpawner(e)
	rng := getRand(e)
	if spawner == nil || rng == nil {
		return
	}

	spawner.LegendaryTimer--
	if spawner.LegendaryTimer > 0 || spawner.LegendaryQuota <= 0 {
		return
	}
	if _, alive := components.Legendary.First(e.World); alive {
		return
	}

	side := cfg.SideLeft
	if rng.Intn(2) == 1 {
		side = cfg.SideRight
	}
	factory.CreateLegendary(e, side)
	spawner.LegendaryQuota--
	spawner.LegendaryTimer = factory.LegendaryDelay(rng)
}

// UpdateLegendaryFire gives a live legendary a per-frame chance to fire a
// three-bullet spread.
func UpdateLegendaryFire(e *ecs.ECS) {
	entry, ok := components.Legendary.First(e.World)
	if !ok {
		return
	}
	rng := getRand(e)
	if rng == nil {
		return
	}

	l := cfg.Legendary
	if rng.Intn(l.FireRoll)+1 > l.FireChance {
		return
	}

	cx, cy := components.Object.Get(entry).Center()
	for _, dx := range []float64{-l.SpreadOffset, 0, l.SpreadOffset} {
		factory.CreateEnemyBullet(e, cx+dx, cy, cfg.BulletLegendary)
	}
}

// UpdateLegendary flies the legendary across the screen and removes it once
// it is past the opposite spawn point.
func UpdateLegendary(e *ecs.ECS) {
	entry, ok := components.Legendary.First(e.World)
	if !ok {
		return
	}
	legendary := components.Legendary.Get(entry)
	obj := components.Object.Get(entry)

	obj.X += legendary.SpeedX
	obj.Update()

	l := cfg.Legendary
	if legendary.Side == cfg.SideLeft && obj.X > l.RightSpawnX+l.CullMargin ||
		legendary.Side == cfg.SideRight && obj.X < l.LeftSpawnX-l.CullMargin {
		factory.Destroy(e, entry)
	}
}
