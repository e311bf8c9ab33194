package archetypes

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.Bullet,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Bullet,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Legendary = newArchetype(
		tags.Legendary,
		components.Legendary,
		components.Object,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Effect,
		components.Explosion,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
		components.Formation,
		components.Spawner,
		components.Random,
		components.Control,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
