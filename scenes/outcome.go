package scenes

import (
	"sync"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/round"
	"github.com/automoto/invaders/systems"
	"github.com/automoto/invaders/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OutcomeScene is the victory or defeat screen between rounds.
type OutcomeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *round.Session
	result       round.Result
	outcomeUI    *ui.MenuUI
	once         sync.Once
	shouldPlay   bool
	shouldQuit   bool
}

// NewOutcomeScene shows result. The session has already had result applied.
func NewOutcomeScene(sc SceneChanger, session *round.Session, result round.Result) *OutcomeScene {
	return &OutcomeScene{sceneChanger: sc, session: session, result: result}
}

func (oc *OutcomeScene) Update() {
	oc.once.Do(oc.configure)
	oc.ecs.Update()
	oc.outcomeUI.Update()

	if oc.shouldQuit {
		oc.sceneChanger.ChangeScene(NewMenuScene(oc.sceneChanger))
		return
	}
	if oc.shouldPlay {
		oc.sceneChanger.ChangeScene(NewWorldScene(oc.sceneChanger, oc.session))
	}
}

func (oc *OutcomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if oc.ecs == nil {
		return
	}
	oc.outcomeUI.UI.Draw(screen)
}

func (oc *OutcomeScene) configure() {
	oc.ecs = ecs.NewECS(donburi.NewWorld())

	play := func() { oc.shouldPlay = true }
	quit := func() { oc.shouldQuit = true }
	if oc.result.Outcome == round.Won {
		oc.outcomeUI = ui.NewVictoryUI(oc.result.Level-1, play, quit)
	} else {
		oc.outcomeUI = ui.NewDefeatUI(oc.session.FinalLevel, oc.session.FinalScore, play, quit)
	}

	// Prime input so a button still held from the last scene does not select
	systems.UpdateInput(oc.ecs)

	oc.ecs.AddSystem(systems.UpdateAudio)
	oc.ecs.AddSystem(systems.UpdateInput)
	oc.ecs.AddSystem(menuShortcuts(oc.outcomeUI))
}
