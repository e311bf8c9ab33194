package factory

import (
	"github.com/automoto/invaders/archetypes"
	"github.com/automoto/invaders/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives entry a rectangle body registered in the world's space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// Destroy removes an entity and its body from the world.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			obj := components.Object.Get(entry)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}
