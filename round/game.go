// Package round runs a single level of play. A Game owns its own donburi
// world and is stepped one frame at a time with an abstract input state.
package round

import (
	"math/rand"
	"time"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems"
	"github.com/automoto/invaders/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputState is the held controls for one frame.
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}

// Outcome is the externally visible state of a round.
type Outcome int

const (
	InProgress Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	}
	return "unknown"
}

// Result is returned by every Update.
//
// While in progress Level, Score and Lives are the current values. On a
// loss Lives is -1 and Level is the level that was being played. On a win
// Level and Lives are the values the next round should start with.
type Result struct {
	Outcome Outcome
	Level   int
	Score   int
	Lives   int
}

// NextLevel returns the level to start next and true when the round was won.
func (r Result) NextLevel() (int, bool) {
	if r.Outcome != Won {
		return 0, false
	}
	return r.Level, true
}

type options struct {
	rng  *rand.Rand
	wave *systems.Wave
}

// Option configures a Game.
type Option func(*options)

// WithRand makes the game draw all randomness from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWave replaces the generated wave with a fixed layout.
func WithWave(w systems.Wave) Option {
	return func(o *options) {
		o.wave = &w
	}
}

// Game is one round of play.
type Game struct {
	ecs    *ecs.ECS
	round  *donburi.Entry
	result Result
}

// NewGame builds a round at level with the carried score and lives.
// Negative inputs are treated as 0.
func NewGame(level, score, lives int, opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	level = max(level, 0)
	score = max(score, 0)
	lives = max(lives, 0)

	var wave systems.Wave
	if o.wave != nil {
		wave = *o.wave
	} else {
		wave = systems.GenerateWave(o.rng, level)
	}

	g := &Game{ecs: ecs.NewECS(donburi.NewWorld())}

	factory.CreateSpace(g.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	g.round = factory.CreateRound(g.ecs, level, score, lives, wave.Legendary, o.rng)
	factory.CreatePlayer(g.ecs, cfg.Player.SpawnCenterX, cfg.Player.SpawnBottomY)
	factory.CreateFortifications(g.ecs)
	systems.SpawnWave(g.ecs, wave)

	// Core systems
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdatePlayer))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateBullets))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateFormation))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateEnemyFire))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateLegendarySpawner))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateLegendaryFire))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateLegendary))
	g.ecs.AddSystem(systems.WithRoundCheck(systems.UpdateCollisions))
	g.ecs.AddSystem(systems.UpdateExplosions)
	g.ecs.AddSystem(systems.UpdateOutcome)

	// Renderers
	g.ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	g.ecs.AddRenderer(cfg.Default, systems.DrawExplosions)
	g.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	g.result = g.currentResult()
	return g
}

// Update advances one frame. Once the round has ended it returns the final
// result without simulating anything.
func (g *Game) Update(in InputState) Result {
	if g.State() != cfg.RoundInProgress {
		return g.result
	}

	data := components.Round.Get(g.round)
	data.Frame++
	control := systems.GetControl(g.ecs)
	*control = components.ControlData{Left: in.Left, Right: in.Right, Fire: in.Fire}

	g.ecs.Update()

	g.result = g.currentResult()
	return g.result
}

func (g *Game) currentResult() Result {
	data := components.Round.Get(g.round)
	switch data.State {
	case cfg.RoundLost:
		return Result{Outcome: Lost, Level: data.Level, Score: data.Score, Lives: -1}
	case cfg.RoundWon:
		return Result{Outcome: Won, Level: data.Level + 1, Score: data.Score, Lives: data.Lives + 1}
	}
	return Result{Outcome: InProgress, Level: data.Level, Score: data.Score, Lives: data.Lives}
}

// Result returns the result of the latest frame.
func (g *Game) Result() Result {
	return g.result
}

// State returns the round's lifecycle state.
func (g *Game) State() cfg.RoundState {
	return components.Round.Get(g.round).State
}

// DrainSounds returns the sound events queued since the last call.
func (g *Game) DrainSounds() []cfg.SoundID {
	return systems.DrainSFX(g.ecs)
}

// Draw renders the round.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
}

// ECS exposes the round's world to the shell.
func (g *Game) ECS() *ecs.ECS {
	return g.ecs
}
