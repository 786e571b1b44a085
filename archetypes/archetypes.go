package archetypes

import (
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Health,
	)
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Motion,
		components.Path,
		components.Vision,
		components.State,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Alarm = newArchetype(
		components.Alarm,
	)
	Detection = newArchetype(
		components.Detection,
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

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	comps := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	comps = append(comps, a.components...)
	comps = append(comps, cs...)
	return w.Entry(w.Create(comps...))
}
