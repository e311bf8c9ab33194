package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateFortifications(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	if n := CreateFortifications(e); n != 236 {
		t.Fatalf("expected 236 blocks, got %d", n)
	}

	perFort := map[int]int{}
	minX, minY := 1e9, 1e9
	components.Block.Each(e.World, func(entry *donburi.Entry) {
		perFort[components.Block.Get(entry).Fort]++
		obj := components.Object.Get(entry)
		if obj.W != 6 || obj.H != 6 {
			t.Errorf("block size %.0fx%.0f, want 6x6", obj.W, obj.H)
		}
		minX = min(minX, obj.X)
		minY = min(minY, obj.Y)
	})

	for fort := 0; fort < 4; fort++ {
		if perFort[fort] != 59 {
			t.Errorf("fort %d: expected 59 blocks, got %d", fort, perFort[fort])
		}
	}
	if minX != 57 || minY != 480 {
		t.Errorf("expected the first fort to start at (57,480), got (%.0f,%.0f)", minX, minY)
	}

	space, _ := components.Space.First(e.World)
	if n := len(components.Space.Get(space).Objects()); n != 236 {
		t.Errorf("expected every block registered in the space, got %d", n)
	}
}

func TestCreatePlayer_Position(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	obj := components.Object.Get(CreatePlayer(e, 360, 680))
	if obj.X != 330 || obj.Y != 650 || obj.W != 60 || obj.H != 30 {
		t.Fatalf("expected 60x30 at (330,650), got %.0fx%.0f at (%.0f,%.0f)", obj.W, obj.H, obj.X, obj.Y)
	}
}

func TestLegendaryDelay_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		if d := LegendaryDelay(rng); d < 400 || d > 800 {
			t.Fatalf("delay %d outside [400,800]", d)
		}
	}
}
