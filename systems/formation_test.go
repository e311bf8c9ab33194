package systems

import (
	"testing"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
)

func TestUpdateFormation_RightEdgeFlipsAndDropsOnce(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	a := factory.CreateEnemy(e, 679, 100, cfg.TierRare)
	b := factory.CreateEnemy(e, 679, 150, cfg.TierRare)

	UpdateFormation(e)

	if dir := getFormation(e).Direction; dir != -1 {
		t.Fatalf("expected direction -1 after touching the right edge, got %v", dir)
	}
	if y := components.Object.Get(a).Y; y != 102 {
		t.Fatalf("first enemy: expected a single 2 unit drop to 102, got %.0f", y)
	}
	if y := components.Object.Get(b).Y; y != 152 {
		t.Fatalf("second enemy: expected a single 2 unit drop to 152, got %.0f", y)
	}
	if x := components.Object.Get(a).X; x != 680 {
		t.Fatalf("expected horizontal step to 680 before the flip, got %.0f", x)
	}

	UpdateFormation(e)

	if x := components.Object.Get(a).X; x != 679 {
		t.Fatalf("expected the formation to move left to 679, got %.0f", x)
	}
	if y := components.Object.Get(a).Y; y != 102 {
		t.Fatalf("no edge touched, expected no drop, got y %.0f", y)
	}
}

func TestUpdateFormation_LeftEdgeFlips(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	enemy := factory.CreateEnemy(e, 1, 100, cfg.TierRare)
	getFormation(e).Direction = -1

	UpdateFormation(e)

	if dir := getFormation(e).Direction; dir != 1 {
		t.Fatalf("expected direction +1 after touching the left edge, got %v", dir)
	}
	obj := components.Object.Get(enemy)
	if obj.X != 0 || obj.Y != 102 {
		t.Fatalf("expected (0,102), got (%.0f,%.0f)", obj.X, obj.Y)
	}
}

func TestUpdateFormation_NoEnemies(t *testing.T) {
	e := newTestWorld(0, 1, 0)
	UpdateFormation(e)
	if dir := getFormation(e).Direction; dir != 1 {
		t.Fatalf("direction should stay +1, got %v", dir)
	}
}
