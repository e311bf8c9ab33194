package factory

import (
	"math/rand"

	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound spawns the round singletons. legendaryQuota is the number of
// legendary enemies the wave allows. The first arrival is scheduled from rng.
func CreateRound(ecs *ecs.ECS, level, score, lives, legendaryQuota int, rng *rand.Rand) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)

	components.Round.SetValue(round, components.RoundData{
		Level: level,
		Score: score,
		Lives: lives,
		State: cfg.RoundInProgress,
	})
	components.Formation.SetValue(round, components.FormationData{Direction: 1})
	components.Spawner.SetValue(round, components.SpawnerData{
		LegendaryTimer: LegendaryDelay(rng),
		LegendaryQuota: legendaryQuota,
	})
	components.Random.SetValue(round, components.RandomData{Rand: rng})
	components.Audio.SetValue(round, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})

	return round
}

// LegendaryDelay returns a uniform frame count in [SpawnMin, SpawnMax].
func LegendaryDelay(rng *rand.Rand) int {
	l := cfg.Legendary
	return l.SpawnMin + rng.Intn(l.SpawnMax-l.SpawnMin+1)
}
