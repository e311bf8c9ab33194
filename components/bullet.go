package components

import (
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
)

// BulletData is a constant-velocity vertical projectile.
// Negative SpeedY travels up (player fired), positive travels down.
type BulletData struct {
	SpeedY float64
	Kind   cfg.BulletKind
}

var Bullet = donburi.NewComponentType[BulletData]()
