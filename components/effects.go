package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExplosionData is a purely visual burst. Scale and Alpha are driven by tweens.
type ExplosionData struct {
	CenterX, CenterY float64
	Size             float64
	Color            color.RGBA
	ScaleTween       *gween.Tween
	AlphaTween       *gween.Tween
	Scale            float32
	Alpha            float32
}

var Explosion = donburi.NewComponentType[ExplosionData]()
