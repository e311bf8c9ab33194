package scenes

import (
	"sync"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/round"
	"github.com/automoto/invaders/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one round. The scene's own ECS owns input, pause, debug
// and audio; the round runs in its own world inside game.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *round.Session
	game         *round.Game
	once         sync.Once
}

// NewWorldScene starts the next round of session.
func NewWorldScene(sc SceneChanger, session *round.Session) *WorldScene {
	return &WorldScene{sceneChanger: sc, session: session}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).QuitRequested {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ws.ecs == nil {
		return
	}
	ws.game.Draw(screen)
	systems.DrawDebug(ws.game.ECS(), screen, systems.GetOrCreateDebug(ws.ecs).Enabled)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.game = ws.session.NewRound()
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateDebugToggle)
	ws.ecs.AddSystem(systems.UpdatePause)

	// The round only advances while unpaused
	ws.ecs.AddSystem(systems.WithPauseCheck(ws.stepRound))

	// Audio last so sounds queued by this frame's round play now
	ws.ecs.AddSystem(systems.UpdateAudio)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	systems.PlayMusic(cfg.Sound.Music)
}

// stepRound feeds one frame of input into the round and forwards its sounds.
func (ws *WorldScene) stepRound(e *ecs.ECS) {
	control := systems.ControlFromInput(systems.GetOrCreateInput(e))
	result := ws.game.Update(round.InputState{
		Left:  control.Left,
		Right: control.Right,
		Fire:  control.Fire,
	})

	for _, sound := range ws.game.DrainSounds() {
		systems.PlaySFX(e, sound)
	}

	if result.Outcome == round.InProgress {
		return
	}
	ws.session.Apply(result)
	ws.sceneChanger.ChangeScene(NewOutcomeScene(ws.sceneChanger, ws.session, result))
}
