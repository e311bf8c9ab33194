package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Overlaps reports a strict axis-aligned overlap. Touching edges do not count.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.X < other.X+other.W &&
		o.X+o.W > other.X &&
		o.Y < other.Y+other.H &&
		o.Y+o.H > other.Y
}

// Center returns the centre point of the object.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
