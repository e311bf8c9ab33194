package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOutcome marks the round won once no enemy is left. A legendary
// still on screen does not hold the round open.
func UpdateOutcome(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil || round.State != cfg.RoundInProgress {
		return
	}
	if _, alive := components.Enemy.First(e.World); !alive {
		round.State = cfg.RoundWon
	}
}
