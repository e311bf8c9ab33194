package round

import (
	"image/color"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
)

// SpriteKind identifies what a Sprite depicts.
type SpriteKind int

const (
	SpriteBlock SpriteKind = iota
	SpriteEnemy
	SpriteLegendary
	SpritePlayer
	SpritePlayerBullet
	SpriteEnemyBullet
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteBlock:
		return "block"
	case SpriteEnemy:
		return "enemy"
	case SpriteLegendary:
		return "legendary"
	case SpritePlayer:
		return "player"
	case SpritePlayerBullet:
		return "player_bullet"
	case SpriteEnemyBullet:
		return "enemy_bullet"
	}
	return "unknown"
}

// Sprite is one drawable rectangle. Tier is only set for enemies.
type Sprite struct {
	Kind  SpriteKind
	X, Y  float64
	W, H  float64
	Color color.RGBA
	Tier  cfg.Tier
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Sprites []Sprite
	Score   int
	Lives   int
	Level   int
}

// Snapshot copies the current render state out of the world.
func (g *Game) Snapshot() Frame {
	data := components.Round.Get(g.round)
	f := Frame{
		Score: data.Score,
		Lives: data.Lives,
		Level: data.Level,
	}

	add := func(entry *donburi.Entry, kind SpriteKind, c color.RGBA, tier cfg.Tier) {
		obj := components.Object.Get(entry)
		f.Sprites = append(f.Sprites, Sprite{
			Kind:  kind,
			X:     obj.X,
			Y:     obj.Y,
			W:     obj.W,
			H:     obj.H,
			Color: c,
			Tier:  tier,
		})
	}

	w := g.ecs.World
	components.Block.Each(w, func(entry *donburi.Entry) {
		add(entry, SpriteBlock, cfg.Fortification.Color, 0)
	})
	components.Enemy.Each(w, func(entry *donburi.Entry) {
		tier := components.Enemy.Get(entry).Tier
		add(entry, SpriteEnemy, cfg.Enemy.Tiers[tier].Color, tier)
	})
	components.Legendary.Each(w, func(entry *donburi.Entry) {
		add(entry, SpriteLegendary, cfg.Legendary.Color, 0)
	})
	components.Player.Each(w, func(entry *donburi.Entry) {
		add(entry, SpritePlayer, cfg.Player.Color, 0)
	})
	tags.PlayerBullet.Each(w, func(entry *donburi.Entry) {
		add(entry, SpritePlayerBullet, cfg.Bullet.Colors[components.Bullet.Get(entry).Kind], 0)
	})
	tags.EnemyBullet.Each(w, func(entry *donburi.Entry) {
		add(entry, SpriteEnemyBullet, cfg.Bullet.Colors[components.Bullet.Get(entry).Kind], 0)
	})

	return f
}

// Count returns how many sprites of kind the frame holds.
func (f Frame) Count(kind SpriteKind) int {
	n := 0
	for _, s := range f.Sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
