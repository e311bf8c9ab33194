package components

import (
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
)

// EnemyData is a formation member.
type EnemyData struct {
	Tier   cfg.Tier
	Health int
	Value  int
}

var Enemy = donburi.NewComponentType[EnemyData]()

// LegendaryData is the bonus enemy crossing the top of the screen.
type LegendaryData struct {
	SpeedX float64
	Side   cfg.Side // edge it entered from
}

var Legendary = donburi.NewComponentType[LegendaryData]()

// BlockData is one square of a fortification.
type BlockData struct {
	Fort int // index of the fortification it belongs to
}

var Block = donburi.NewComponentType[BlockData]()
