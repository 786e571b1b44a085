package main

import (
	"math"

	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	"github.com/automoto/lurk/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// RouteDriver steers the player along a fixed route: every key on the map,
// nearest first, then the nearest exit.
type RouteDriver struct {
	Waypoints []dmath.Vec2
	next      int
	nav       *NavGrid
}

func NewRouteDriver(w donburi.World, level *components.LevelData) *RouteDriver {
	g := level.Grid
	d := &RouteDriver{nav: CreateNavGrid(g.Space(), g.Size, g.Gap)}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return d
	}
	center := components.Object.Get(playerEntry).Rect().Center()
	start, err := level.Grid.NodeAt(center.X, center.Y)
	if err != nil {
		return d
	}

	pending := append([]*grid.Node(nil), level.Grid.KeyNodes()...)
	current := start
	for len(pending) > 0 {
		i := nearest(current, pending)
		current = d.appendLeg(current, pending[i])
		pending = append(pending[:i], pending[i+1:]...)
	}
	if exits := level.Grid.ExitNodes(); len(exits) > 0 {
		d.appendLeg(current, exits[nearest(current, exits)])
	}

	logger.Log.WithFields(logrus.Fields{
		"waypoints": len(d.Waypoints),
		"keys":      len(level.Grid.KeyNodes()),
	}).Debug("player route planned")
	return d
}

// appendLeg adds the path from start to goal and returns where the route
// now ends. Unreachable goals are skipped.
func (d *RouteDriver) appendLeg(start, goal *grid.Node) *grid.Node {
	path := d.nav.FindPath(start.X, start.Y, goal.X, goal.Y)
	if len(path) == 0 {
		logger.Log.WithFields(logrus.Fields{"row": goal.Row, "col": goal.Col}).Warn("route goal unreachable")
		return start
	}
	for _, n := range path {
		x, y := d.nav.GridToWorld(n.X, n.Y)
		d.Waypoints = append(d.Waypoints, dmath.Vec2{X: x, Y: y})
	}
	return goal
}

func nearest(from *grid.Node, nodes []*grid.Node) int {
	best, bestDist := 0, math.Inf(1)
	for i, n := range nodes {
		if dist := gamemath.Distance(from.Center(), n.Center()); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// Done reports whether the final waypoint was reached.
func (d *RouteDriver) Done() bool {
	return d.next >= len(d.Waypoints)
}

// Update writes the player's input for this frame.
func (d *RouteDriver) Update(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	input := components.PlayerInput.Get(playerEntry)
	center := components.Object.Get(playerEntry).Rect().Center()

	for !d.Done() && gamemath.Distance(center, d.Waypoints[d.next]) <= config.Player.Speed {
		d.next++
	}
	if d.Done() {
		input.Move = dmath.Vec2{}
		return
	}

	target := d.Waypoints[d.next]
	dx, dy := target.X-center.X, target.Y-center.Y
	dist := math.Hypot(dx, dy)
	input.Move = dmath.Vec2{X: dx / dist, Y: dy / dist}
}
