package components

import (
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-world sound event queue. The round only appends,
// the shell drains and plays.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
