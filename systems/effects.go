package systems

import (
	"github.com/automoto/invaders/components"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const effectDelta = float32(1.0 / 60.0)

// UpdateExplosions advances explosion tweens and removes finished ones.
func UpdateExplosions(e *ecs.ECS) {
	var finished []*donburi.Entry
	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		scale, scaleDone := ex.ScaleTween.Update(effectDelta)
		alpha, alphaDone := ex.AlphaTween.Update(effectDelta)
		ex.Scale = scale
		ex.Alpha = alpha
		if scaleDone && alphaDone {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		factory.Destroy(e, entry)
	}
}
