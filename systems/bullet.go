package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets advances every bullet and removes those past the vertical bounds.
func UpdateBullets(e *ecs.ECS) {
	var culled []*donburi.Entry
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)

		obj.Y += bullet.SpeedY
		if obj.Y <= cfg.Bullet.TopCull || obj.Y >= cfg.Bullet.BottomCull {
			culled = append(culled, entry)
			return
		}
		obj.Update()
	})

	for _, entry := range culled {
		factory.Destroy(e, entry)
	}
}
