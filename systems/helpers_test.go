package systems

import (
	"math/rand"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type eacher interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// newTestWorld builds an empty round world with a space and the round singletons.
func newTestWorld(level, lives, legendaryQuota int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateRound(e, level, 0, lives, legendaryQuota, rand.New(rand.NewSource(1)))
	return e
}

func count(e *ecs.ECS, q eacher) int {
	n := 0
	q.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func queued(e *ecs.ECS, sound cfg.SoundID) bool {
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == sound {
			return true
		}
	}
	return false
}
