package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFormation steps every enemy horizontally, then flips the shared
// direction at the screen edges. The drop is applied at most once per frame
// no matter how many enemies touched an edge.
func UpdateFormation(e *ecs.ECS) {
	formation := getFormation(e)
	if formation == nil {
		return
	}

	step := formation.Direction * cfg.Formation.Step
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.X += step
	})

	triggered := false
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.X+obj.W >= cfg.Formation.RightBound {
			formation.Direction = -1
			triggered = true
		} else if obj.X <= cfg.Formation.LeftBound {
			formation.Direction = 1
			triggered = true
		}
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if triggered {
			obj.Y += cfg.Formation.DropStep
		}
		obj.Update()
	})
}
