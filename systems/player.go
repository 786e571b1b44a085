package systems

import (
	"math"

	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	"github.com/automoto/lurk/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer moves the player by its input vector, one axis at a time so
// it slides along walls. Barriers, agents and the grid edge block movement.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	g := components.Level.Get(levelEntry).Grid

	if playerEntry.HasComponent(components.Health) && components.Health.Get(playerEntry).Dead() {
		return
	}

	move := components.PlayerInput.Get(playerEntry).Move
	if l := math.Hypot(move.X, move.Y); l > 1 {
		move.X /= l
		move.Y /= l
	}
	obj := components.Object.Get(playerEntry)
	moveAxis(g, obj, move.X*cfg.Player.Speed, 0)
	moveAxis(g, obj, 0, move.Y*cfg.Player.Speed)
}

func moveAxis(g *grid.Grid, obj *components.ObjectData, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	r := obj.Rect().Translate(dx, dy)
	if !g.Contains(r) {
		return
	}
	if hits, err := g.CollidingBarriers(r); err != nil || len(hits) > 0 {
		return
	}
	if blockedByAgent(obj, r, dx, dy) {
		return
	}
	obj.X += dx
	obj.Y += dy
	obj.Update()
}

func blockedByAgent(obj *components.ObjectData, r gamemath.Rect, dx, dy float64) bool {
	if obj.Space == nil {
		return false
	}
	check := obj.Check(dx, dy, tags.ResolvAgent)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvAgent) {
		if r.Overlaps(gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			return true
		}
	}
	return false
}
