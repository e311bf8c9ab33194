package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi/ecs"
)

// CreateFortifications lays out one fort per configured offset from the
// shape mask and returns the number of blocks created.
func CreateFortifications(ecs *ecs.ECS) int {
	f := cfg.Fortification
	count := 0
	for fort, offset := range f.Offsets {
		for row, line := range f.Shape {
			for col, ch := range line {
				if ch != 'x' {
					continue
				}
				x := float64(col)*f.BlockSize + f.StartX + offset
				y := float64(row)*f.BlockSize + f.StartY
				createBlock(ecs, x, y, fort)
				count++
			}
		}
	}
	return count
}

func createBlock(ecs *ecs.ECS, x, y float64, fort int) {
	block := archetypes.Block.Spawn(ecs)
	attachObject(ecs, block, x, y, cfg.Fortification.BlockSize, cfg.Fortification.BlockSize, tags.ResolvBlock)
	components.Block.SetValue(block, components.BlockData{Fort: fort})
}
