package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PlayerData holds per-ship state. Lives live on the round.
type PlayerData struct {
	Speed    float64
	LastShot time.Duration // game time of the last shot
	HasShot  bool
}

var Player = donburi.NewComponentType[PlayerData]()
