package systems

import (
	"fmt"
	"math"

	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	"github.com/automoto/lurk/shared/pathfind"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// RequestPath replaces the agent's path with a route to goal. The first
// smoothed point sits on the agent's own node and is dropped. It reports
// false when no route exists; the old path is discarded either way, except
// when smoothing fails, in which case the agent keeps its last waypoint.
func (a *AgentContext) RequestPath(goal *grid.Node) bool {
	start, err := a.Node()
	if err != nil {
		a.log().WithError(err).Warn("agent off grid")
		return false
	}

	nodes := a.Level.Pathfinder.Find(a.Level.Grid, start, goal)
	if len(nodes) < 2 {
		a.Path.Clear()
		return false
	}

	segments := a.segments()
	points, err := smoothPath(nodes, segments)
	if err != nil {
		a.log().WithError(err).Warn("path smoothing failed")
		return false
	}
	points = points[1:]

	a.Path.StartNode = start
	a.Path.EndNode = goal
	a.Path.Nodes = nodes
	a.Path.Points = points
	a.Path.Segments = segments
	a.Path.Advance()

	if a.State.CurrentState != cfg.StateAligning {
		bearing := gamemath.Bearing(a.Motion.Position, a.Path.Next)
		if gamemath.AngleDiff(bearing, a.Motion.Angle) > cfg.Motion.AlignThreshold {
			beginAligning(a, bearing)
		}
	}
	return true
}

// segments is the smoothing density for the agent's current speed.
func (a *AgentContext) segments() int {
	if a.Agent.Speed > a.Agent.TypeConfig.Speed && cfg.Smoother.FastSegments > 0 {
		return cfg.Smoother.FastSegments
	}
	return cfg.Smoother.Segments
}

// smooth is the path smoother. Tests swap it to simulate failures.
var smooth = gamemath.Smooth

func smoothPath(nodes []*grid.Node, segments int) ([]dmath.Vec2, error) {
	points, err := smooth(pathfind.Centers(nodes), segments)
	if err != nil {
		return nil, fmt.Errorf("smooth %d nodes: %w", len(nodes), err)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("smooth %d nodes: degenerate path", len(nodes))
	}
	return points, nil
}

// beginAligning rotates the agent in place toward bearing before it moves.
func beginAligning(a *AgentContext, bearing float64) {
	delta := gamemath.AngleDelta(a.Motion.Angle, bearing)
	frames := math.Max(1, math.Abs(delta)/math.Max(a.Agent.RotationSpeed, 1e-3))
	a.Motion.Turn = gween.New(float32(a.Motion.Angle), float32(a.Motion.Angle+delta), float32(frames), ease.InOutSine)
	a.Motion.ResumeState = a.State.CurrentState
	a.State.PreviousState = a.State.CurrentState
	a.State.CurrentState = cfg.StateAligning
	a.State.StateTimer = 0
}

func updateAligning(a *AgentContext) {
	if a.Motion.Turn == nil {
		a.State.CurrentState = a.Motion.ResumeState
		return
	}
	v, done := a.Motion.Turn.Update(1)
	a.Motion.Angle = gamemath.NormalizeDegrees(float64(v))
	if done {
		a.Motion.Turn = nil
		a.State.PreviousState = cfg.StateAligning
		a.State.CurrentState = a.Motion.ResumeState
		a.State.StateTimer = 0
	}
}

// stepMotion advances one agent by one frame along its path, asking the
// policy for a new goal when the path runs out.
func stepMotion(a *AgentContext, policy BehaviorPolicy) {
	if a.State.CurrentState == cfg.StateAligning {
		updateAligning(a)
		return
	}
	if a.Agent.IdleFrames > 0 {
		a.Agent.IdleFrames--
		return
	}

	current, err := a.Node()
	if err != nil {
		a.log().WithError(err).Warn("agent off grid")
		return
	}

	if !a.Path.HasNext || current == a.Path.EndNode {
		goal, ok := policy.NextGoal(a)
		switch {
		case !ok:
			idle(a)
			return
		case !a.RequestPath(goal):
			// A failed smoothing keeps the last waypoint to head for.
			if !a.Path.HasNext {
				idle(a)
				return
			}
		case a.State.CurrentState == cfg.StateAligning:
			return
		}
	}

	follow(a, current)
}

func idle(a *AgentContext) {
	if a.Agent.IdleFrames == 0 {
		a.Agent.IdleFrames = idleFrames(a)
	}
}

func idleFrames(a *AgentContext) int {
	if a.Mode() == cfg.StateChasing {
		return cfg.Pathfinding.RepathFrames
	}
	return cfg.Pathfinding.IdleFrames
}

// follow steers toward the next waypoint and moves forward. Sharp turns
// skip ahead up to MaxSkips waypoints first.
func follow(a *AgentContext, current *grid.Node) {
	trimNodes(a, current)

	pos := a.Motion.Position
	for gamemath.Chebyshev(pos, a.Path.Next) <= cfg.Motion.ReachThreshold {
		if !a.Path.Advance() {
			return
		}
	}

	bearing := gamemath.Bearing(pos, a.Path.Next)
	for skips := 0; skips < cfg.Motion.MaxSkips && len(a.Path.Points) > 0; skips++ {
		if gamemath.AngleDiff(bearing, a.Motion.Angle) <= cfg.Motion.SkipAngle {
			break
		}
		a.Path.Advance()
		bearing = gamemath.Bearing(pos, a.Path.Next)
	}
	a.Motion.Angle = bearing

	step := math.Min(a.Agent.Speed, gamemath.Distance(pos, a.Path.Next))
	hx, hy := gamemath.HeadingVector(a.Motion.Angle)
	a.Motion.Position = dmath.Vec2{X: pos.X - hx*step, Y: pos.Y - hy*step}
}

// trimNodes drops the path nodes the agent has already passed.
func trimNodes(a *AgentContext, current *grid.Node) {
	for i, n := range a.Path.Nodes {
		if n == current {
			a.Path.Nodes = a.Path.Nodes[i+1:]
			return
		}
	}
}
