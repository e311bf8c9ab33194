package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi/ecs"
)

// frameDuration is the game time that passes in one Update.
const frameDuration = time.Second / 60

// GetRound returns the round singleton, or nil outside a round world.
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

func getFormation(e *ecs.ECS) *components.FormationData {
	entry, ok := components.Formation.First(e.World)
	if !ok {
		return nil
	}
	return components.Formation.Get(entry)
}

func getSpawner(e *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(e.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}

func getRand(e *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(e.World)
	if !ok {
		return nil
	}
	return components.Random.Get(entry).Rand
}

// GetControl returns the abstract input consumed by the round systems.
func GetControl(e *ecs.ECS) *components.ControlData {
	entry, ok := components.Control.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Control))
	}
	return components.Control.Get(entry)
}

// gameplayActive reports whether the round still simulates frames.
func gameplayActive(e *ecs.ECS) bool {
	round := GetRound(e)
	return round != nil && !round.State.Terminal()
}

// WithRoundCheck wraps a system to skip execution once the round has ended.
func WithRoundCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !gameplayActive(e) {
			return
		}
		system(e)
	}
}

// addScore credits points to the round.
func addScore(e *ecs.ECS, points int) {
	if round := GetRound(e); round != nil {
		round.Score += points
	}
}

func loseRound(e *ecs.ECS) {
	if round := GetRound(e); round != nil {
		round.State = cfg.RoundLost
	}
}

// GameTime is the simulated time elapsed in the round.
func GameTime(round *components.RoundData) time.Duration {
	return time.Duration(round.Frame) * frameDuration
}
