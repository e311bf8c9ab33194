package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns an upward bullet centred on (cx, cy).
func CreatePlayerBullet(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	bullet := archetypes.PlayerBullet.Spawn(ecs)
	createBullet(ecs, bullet, cx, cy, -cfg.Bullet.PlayerSpeed, cfg.BulletPlayer, tags.ResolvPlayerBullet)
	return bullet
}

// CreateEnemyBullet spawns a downward bullet centred on (cx, cy).
func CreateEnemyBullet(ecs *ecs.ECS, cx, cy float64, kind cfg.BulletKind) *donburi.Entry {
	bullet := archetypes.EnemyBullet.Spawn(ecs)
	createBullet(ecs, bullet, cx, cy, cfg.Bullet.EnemySpeed, kind, tags.ResolvEnemyBullet)
	return bullet
}

func createBullet(ecs *ecs.ECS, bullet *donburi.Entry, cx, cy, speedY float64, kind cfg.BulletKind, tag string) {
	w, h := cfg.Bullet.Width, cfg.Bullet.Height
	attachObject(ecs, bullet, cx-w/2, cy-h/2, w, h, tag)
	components.Bullet.SetValue(bullet, components.BulletData{
		SpeedY: speedY,
		Kind:   kind,
	})
}
