package components

import (
	"math/rand"

	cfg "github.com/automoto/invaders/config"
	"github.com/yohamta/donburi"
)

// RoundData is the singleton holding the round's progress.
type RoundData struct {
	Level int
	Score int
	Lives int
	State cfg.RoundState
	Frame int
}

var Round = donburi.NewComponentType[RoundData]()

// FormationData is the shared horizontal direction of every enemy.
type FormationData struct {
	Direction float64 // -1 or +1
}

var Formation = donburi.NewComponentType[FormationData]()

// SpawnerData drives enemy fire and legendary arrivals.
type SpawnerData struct {
	EnemyCooldown  int
	LegendaryTimer int
	LegendaryQuota int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// RandomData carries the round's random source.
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// ControlData is the abstract input for the current frame.
type ControlData struct {
	Left  bool
	Right bool
	Fire  bool
}

var Control = donburi.NewComponentType[ControlData]()
