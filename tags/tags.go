package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Legendary    = donburi.NewTag().SetName("Legendary")
	Block        = donburi.NewTag().SetName("Block")
	Effect       = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision broadphase
const (
	ResolvPlayer       = "Player"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
	ResolvEnemy        = "Enemy"
	ResolvLegendary    = "Legendary"
	ResolvBlock        = "block"
)
