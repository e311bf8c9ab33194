package scenes

import (
	"sync"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems"
	"github.com/automoto/invaders/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldPlay   bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldQuit {
		ms.sceneChanger.Quit()
		return
	}
	if ms.shouldPlay {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, NewSession()))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.menuUI = ui.NewMainMenuUI(
		func() { ms.shouldPlay = true },
		func() { ms.shouldQuit = true },
	)

	// Prime input so a button still held from the last scene does not select
	systems.UpdateInput(ms.ecs)

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(menuShortcuts(ms.menuUI))

	systems.PlayMusic(cfg.Sound.Music)
}

// menuShortcuts maps select to the first button and back to the last one.
func menuShortcuts(mui *ui.MenuUI) ecs.System {
	return func(e *ecs.ECS) {
		input := systems.GetOrCreateInput(e)
		switch {
		case systems.GetAction(input, cfg.ActionMenuSelect).JustPressed:
			mui.Choose(0)
		case systems.GetAction(input, cfg.ActionMenuBack).JustPressed:
			mui.Choose(mui.Choices() - 1)
		}
	}
}
