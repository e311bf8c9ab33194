package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion creates a burst centred at (cx, cy) sized relative to the
// destroyed body. It has no collision body.
func SpawnExplosion(ecs *ecs.ECS, cx, cy, size float64) *donburi.Entry {
	ex := cfg.Explosion
	entry := archetypes.Explosion.Spawn(ecs)
	components.Explosion.SetValue(entry, components.ExplosionData{
		CenterX:    cx,
		CenterY:    cy,
		Size:       size,
		Color:      ex.Color,
		ScaleTween: gween.New(ex.StartScale, ex.EndScale, ex.Duration, ease.OutQuad),
		AlphaTween: gween.New(1, 0, ex.Duration, ease.InQuad),
		Scale:      ex.StartScale,
		Alpha:      1,
	})
	return entry
}
