package scenes

import (
	"math/rand"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/round"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewSession starts a fresh run honouring the debug start level and seed.
func NewSession() *round.Session {
	var opts []round.Option
	if cfg.Debug.Seed != 0 {
		opts = append(opts, round.WithRand(rand.New(rand.NewSource(cfg.Debug.Seed))))
	}
	return round.NewSession(cfg.Debug.StartLevel, opts...)
}
