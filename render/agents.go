package render

import (
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// mode mirrors the behavior mode: an aligning agent keeps the colour of the
// state it will resume.
func mode(e *donburi.Entry) config.AgentStateID {
	state := components.State.Get(e).CurrentState
	if state == config.StateAligning {
		return components.Motion.Get(e).ResumeState
	}
	return state
}

// DrawFans outlines every agent's vision fan in its state colour.
func DrawFans(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	v := viewFor(screen, level)

	tags.Agent.Each(e.World, func(entry *donburi.Entry) {
		fan := components.Vision.Get(entry).Fan
		if fan.Empty() {
			return
		}
		agent := components.Agent.Get(entry)
		c := stateColor(*agent.TypeConfig, mode(entry))

		poly := fan.Polygon()
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			x0, y0 := v.pt(a.X, a.Y)
			x1, y1 := v.pt(b.X, b.Y)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
		}
	})
}

// DrawPaths draws each agent's remaining smoothed points and its current
// target when config.Debug.ShowPaths is on.
func DrawPaths(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowPaths {
		return
	}
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	v := viewFor(screen, level)

	tags.Agent.Each(e.World, func(entry *donburi.Entry) {
		path := components.Path.Get(entry)
		if !path.HasNext {
			return
		}
		pos := components.Motion.Get(entry).Position
		x0, y0 := v.pt(pos.X, pos.Y)
		x1, y1 := v.pt(path.Next.X, path.Next.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Lightskyblue, true)

		for _, p := range path.Points {
			x, y := v.pt(p.X, p.Y)
			vector.FillRect(screen, x-1, y-1, 2, 2, colornames.Lightskyblue, false)
		}
		if path.EndNode != nil {
			x, y := v.pt(path.EndNode.X, path.EndNode.Y)
			vector.StrokeCircle(screen, x, y, v.len(path.EndNode.Bounds().W/4), 1, colornames.Lightskyblue, true)
		}
	})
}

// DrawAgents draws agent bodies with a heading tick.
func DrawAgents(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	v := viewFor(screen, level)

	tags.Agent.Each(e.World, func(entry *donburi.Entry) {
		agent := components.Agent.Get(entry)
		motion := components.Motion.Get(entry)
		body := components.Object.Get(entry)

		x, y := v.pt(motion.Position.X, motion.Position.Y)
		r := v.len(body.W / 2)
		vector.FillCircle(screen, x, y, r, agent.TypeConfig.Color, true)
		vector.StrokeCircle(screen, x, y, r, 2, stateColor(*agent.TypeConfig, mode(entry)), true)

		dx, dy := gamemath.Direction(motion.Angle)
		hx, hy := v.pt(motion.Position.X+dx*body.W, motion.Position.Y+dy*body.W)
		vector.StrokeLine(screen, x, y, hx, hy, 2, colornames.White, true)
	})
}

// DrawPlayer draws the player hitbox, red while exposed.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	v := viewFor(screen, level)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	r := components.Object.Get(playerEntry).Rect()
	c := colornames.Deepskyblue
	if components.Player.Get(playerEntry).Exposed {
		c = colornames.Red
	}
	x, y := v.pt(r.X, r.Y)
	vector.FillRect(screen, x, y, v.len(r.W), v.len(r.H), c, false)
}
