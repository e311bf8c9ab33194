package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/fonts"
	"github.com/automoto/invaders/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Hitboxes})
	}
	return components.Debug.Get(entry)
}

// UpdateDebugToggle flips the hitbox overlay on F3.
func UpdateDebugToggle(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines every collision body in the round's space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image, enabled bool) {
	if !enabled {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvBlock) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy, tags.ResolvLegendary) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvPlayerBullet) {
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	info := fmt.Sprintf("bodies: %d  tps: %.0f", len(space.Objects()), ebiten.ActualTPS())
	if spawner := getSpawner(e); spawner != nil {
		info += fmt.Sprintf("  legendary in %d (quota %d)", spawner.LegendaryTimer, spawner.LegendaryQuota)
	}
	text.Draw(screen, info, fonts.Small.Get(), cfg.UI.HUDMargin, screen.Bounds().Dy()-cfg.UI.HUDMargin, cfg.UI.HUDTextColor)
}
