package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/systems/factory"
	"github.com/automoto/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// removalSet collects entities consumed during a collision pass. Nothing is
// removed from the world until the pass has finished.
type removalSet struct {
	entries map[donburi.Entity]*donburi.Entry
	order   []*donburi.Entry
}

func newRemovalSet() *removalSet {
	return &removalSet{entries: make(map[donburi.Entity]*donburi.Entry)}
}

func (r *removalSet) add(entry *donburi.Entry) {
	if _, ok := r.entries[entry.Entity()]; ok {
		return
	}
	r.entries[entry.Entity()] = entry
	r.order = append(r.order, entry)
}

func (r *removalSet) has(entry *donburi.Entry) bool {
	_, ok := r.entries[entry.Entity()]
	return ok
}

func (r *removalSet) commit(e *ecs.ECS) {
	for _, entry := range r.order {
		factory.Destroy(e, entry)
	}
}

// overlapping returns the entries carrying tag whose bodies strictly overlap
// entry's body. The space lookup is only a broadphase.
func overlapping(entry *donburi.Entry, tag string, removed *removalSet) []*donburi.Entry {
	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	seen := make(map[donburi.Entity]struct{}, len(check.Objects))
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == nil || !other.Valid() || removed.has(other) {
			continue
		}
		if _, dup := seen[other.Entity()]; dup {
			continue
		}
		seen[other.Entity()] = struct{}{}
		if obj.Overlaps(components.Object.Get(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}

func collect(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var entries []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// UpdateCollisions resolves every population pair once per frame in a fixed
// priority order. Each player bullet resolves at most one outcome.
func UpdateCollisions(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil {
		return
	}
	removed := newRemovalSet()

	for _, bullet := range collect(e, tags.PlayerBullet) {
		resolvePlayerBullet(e, bullet, removed)
	}

	for _, enemy := range collect(e, tags.Enemy) {
		if removed.has(enemy) {
			continue
		}
		for _, block := range overlapping(enemy, tags.ResolvBlock, removed) {
			removed.add(block)
		}
		if len(overlapping(enemy, tags.ResolvPlayer, removed)) > 0 {
			loseRound(e)
			round.Lives = -1
		}
	}

	for _, bullet := range collect(e, tags.EnemyBullet) {
		if removed.has(bullet) {
			continue
		}
		if blocks := overlapping(bullet, tags.ResolvBlock, removed); len(blocks) > 0 {
			for _, block := range blocks {
				removed.add(block)
			}
			removed.add(bullet)
			continue
		}
		if len(overlapping(bullet, tags.ResolvPlayer, removed)) > 0 {
			removed.add(bullet)
			if round.State == cfg.RoundLost {
				continue
			}
			round.Lives--
			if round.Lives <= 0 {
				loseRound(e)
			}
		}
	}

	removed.commit(e)
}

func resolvePlayerBullet(e *ecs.ECS, bullet *donburi.Entry, removed *removalSet) {
	if blocks := overlapping(bullet, tags.ResolvBlock, removed); len(blocks) > 0 {
		for _, block := range blocks {
			removed.add(block)
		}
		removed.add(bullet)
		return
	}

	if enemies := overlapping(bullet, tags.ResolvEnemy, removed); len(enemies) > 0 {
		for _, entry := range enemies {
			enemy := components.Enemy.Get(entry)
			enemy.Health--
			addScore(e, enemy.Value)
			if enemy.Health <= 0 {
				enemy.Health = 0
				removed.add(entry)
				explode(e, entry)
			}
		}
		removed.add(bullet)
		return
	}

	if legendaries := overlapping(bullet, tags.ResolvLegendary, removed); len(legendaries) > 0 {
		for _, entry := range legendaries {
			removed.add(entry)
			explode(e, entry)
		}
		addScore(e, cfg.Legendary.Value)
		removed.add(bullet)
		return
	}

	if shots := overlapping(bullet, tags.ResolvEnemyBullet, removed); len(shots) > 0 {
		for _, shot := range shots {
			removed.add(shot)
		}
		addScore(e, cfg.Score.BulletClash)
		removed.add(bullet)
	}
}

func explode(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	cx, cy := obj.Center()
	size := obj.W
	if obj.H > size {
		size = obj.H
	}
	factory.SpawnExplosion(e, cx, cy, size)
	PlaySFX(e, cfg.SoundExplosion)
}
