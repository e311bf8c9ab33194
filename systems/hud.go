package systems

import (
	"fmt"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score top-left, health top-right and level top-centre.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(e)
	if round == nil {
		return
	}

	face := fonts.HUD.Get()
	margin := cfg.UI.HUDMargin
	width := screen.Bounds().Dx()
	baseline := face.Metrics().Ascent.Ceil() + margin/2

	score := fmt.Sprintf("Score: %d", round.Score)
	text.Draw(screen, score, face, margin, baseline, cfg.UI.HUDTextColor)

	lives := round.Lives
	if lives < 0 {
		lives = 0
	}
	health := fmt.Sprintf("Health: %d", lives)
	hb := text.BoundString(face, health)
	text.Draw(screen, health, face, width-margin-hb.Dx(), baseline, cfg.UI.HUDTextColor)

	level := fmt.Sprintf("Level %d", round.Level+1)
	lb := text.BoundString(face, level)
	text.Draw(screen, level, face, (width-lb.Dx())/2, baseline, cfg.UI.HUDTextColor)
}
