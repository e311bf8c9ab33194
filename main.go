package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/invaders/assets"
	"github.com/automoto/invaders/config"
	"github.com/automoto/invaders/fonts"
	"github.com/automoto/invaders/scenes"
	"github.com/automoto/invaders/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, scenes.NewSession())
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		systems.SaveCurrentSettings()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", 0, "Starting level (zero based)")
	lives := flag.Int("lives", config.Player.StartingLives, "Starting lives")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	debug := flag.Bool("debug", false, "Draw collision bodies")
	assetDir := flag.String("assets", config.Assets.Dir, "Asset directory")
	skipMenu := flag.Bool("skip-menu", false, "Start playing immediately")
	flag.Parse()

	config.Debug.StartLevel = max(*level, 0)
	config.Debug.Seed = *seed
	config.Debug.Hitboxes = *debug
	config.Debug.SkipMenu = *skipMenu
	config.Player.StartingLives = max(*lives, 0)

	fsys, err := assets.Open(*assetDir)
	if err != nil {
		log.Printf("Warning: %v; running without sprites or sound", err)
	}

	if err := fonts.LoadAll(assets.ReadFont(fsys, config.Assets.Font), map[fonts.FontName]float64{
		fonts.HUD:   config.UI.HUDFontSize,
		fonts.Menu:  config.UI.MenuFontSize,
		fonts.Title: config.UI.TitleFontSize,
		fonts.Small: config.UI.SmallFontSize,
	}); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Settings.WindowTitle)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	systems.InitAudio(fsys)

	sprites, err := assets.LoadSprites(fsys, config.SpriteKeys()...)
	if err != nil {
		log.Printf("Warning: Could not load sprites: %v", err)
	}
	systems.SetSprites(sprites)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
