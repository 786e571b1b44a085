package factory

import (
	"github.com/automoto/lurk/archetypes"
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	size := cfg.Player.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))

	components.Player.SetValue(player, components.PlayerData{
		Exposers: map[string]bool{},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	if levelEntry, ok := components.Level.First(w); ok {
		components.Level.Get(levelEntry).Grid.Space().Add(obj)
	}
	return player
}
