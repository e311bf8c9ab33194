package systems

import (
	"image/color"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	sprites = map[string]*ebiten.Image{}
)

// SetSprites installs the images keyed by sprite key. Entities without a
// loaded image are drawn as filled rectangles.
func SetSprites(images map[string]*ebiten.Image) {
	sprites = images
}

// DrawEntities renders fortifications, enemies, the legendary, the player and bullets.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	components.Block.Each(e.World, func(entry *donburi.Entry) {
		fillObject(screen, components.Object.Get(entry), cfg.Fortification.Color)
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		tier := cfg.Enemy.Tiers[components.Enemy.Get(entry).Tier]
		drawSprite(screen, components.Object.Get(entry), tier.SpriteKey, tier.Color)
	})

	components.Legendary.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, components.Object.Get(entry), cfg.Legendary.SpriteKey, cfg.Legendary.Color)
	})

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, components.Object.Get(entry), cfg.Player.SpriteKey, cfg.Player.Color)
	})

	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		kind := components.Bullet.Get(entry).Kind
		fillObject(screen, components.Object.Get(entry), cfg.Bullet.Colors[kind])
	})
}

// DrawExplosions renders the fading explosion bursts.
func DrawExplosions(e *ecs.ECS, screen *ebiten.Image) {
	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		if ex.Alpha <= 0 {
			return
		}
		radius := float32(ex.Size/2) * ex.Scale
		vector.FillCircle(screen, float32(ex.CenterX), float32(ex.CenterY), radius, fade(ex.Color, ex.Alpha), true)
	})
}

func drawSprite(screen *ebiten.Image, obj *components.ObjectData, key string, fallback color.RGBA) {
	img, ok := sprites[key]
	if !ok || img == nil {
		fillObject(screen, obj, fallback)
		return
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(obj.W/float64(w), obj.H/float64(h))
	drawOp.GeoM.Translate(obj.X, obj.Y)
	screen.DrawImage(img, drawOp)
}

func fillObject(screen *ebiten.Image, obj *components.ObjectData, c color.RGBA) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

// fade scales a colour by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
