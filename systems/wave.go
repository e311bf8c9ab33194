package systems

import (
	"math/rand"
	"sort"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Wave is a generated enemy layout. Rows[r][c] is the tier at row r, column c.
type Wave struct {
	Rows      [][]cfg.Tier
	Legendary int // number of overflow rolls, the round's legendary quota
}

// Count returns the number of enemies in the wave.
func (w Wave) Count() int {
	n := 0
	for _, row := range w.Rows {
		n += len(row)
	}
	return n
}

// GenerateWave rolls one tier per formation slot. Higher levels push rolls
// towards the stronger tiers. Rolls past the Mythic cutoff still place a
// Mythic and also add one legendary to the quota.
func GenerateWave(rng *rand.Rand, level int) Wave {
	if level < 0 {
		level = 0
	}
	w := cfg.Wave
	total := w.Rows * w.Columns

	tiers := make([]cfg.Tier, 0, total)
	legendary := 0
	for i := 0; i < total; i++ {
		roll := float64(rng.Intn(w.RollMax)+1) * float64(level) / w.LevelDivisor
		switch {
		case roll <= w.RareMax:
			tiers = append(tiers, cfg.TierRare)
		case roll <= w.EpicMax:
			tiers = append(tiers, cfg.TierEpic)
		case roll <= w.MythicMax:
			tiers = append(tiers, cfg.TierMythic)
		default:
			tiers = append(tiers, cfg.TierMythic)
			legendary++
		}
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i] > tiers[j] })

	rows := make([][]cfg.Tier, w.Rows)
	for r := range rows {
		rows[r] = SortHighInMiddle(tiers[r*w.Columns : (r+1)*w.Columns])
	}

	return Wave{Rows: rows, Legendary: legendary}
}

// SortHighInMiddle reorders values so the largest sit in the middle and the
// smallest at both ends. The input is not modified.
func SortHighInMiddle[T ~int | ~float64](in []T) []T {
	sorted := make([]T, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]T, 0, len(sorted))
	for i := len(sorted) % 2; i < len(sorted); i += 2 {
		out = append(out, sorted[i])
	}
	for i := len(sorted) - 1; i >= 0; i -= 2 {
		out = append(out, sorted[i])
	}
	return out
}

// SpawnWave creates every enemy of the wave in formation.
func SpawnWave(e *ecs.ECS, wave Wave) {
	w := cfg.Wave
	for r, row := range wave.Rows {
		for c, tier := range row {
			x := float64(c)*w.ColumnGap + w.OffsetX
			y := float64(r)*w.RowGap + w.OffsetY
			factory.CreateEnemy(e, x, y, tier)
		}
	}
}
