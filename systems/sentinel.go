package systems

import (
	"math"

	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// sentinelPolicy never moves. It sweeps its view back and forth around its
// home heading and tracks the player while it can see them.
type sentinelPolicy struct{}

func (sentinelPolicy) Enter(a *AgentContext) {
	a.SetState(cfg.StatePatrolling)
}

func (sentinelPolicy) Observe(a *AgentContext) {
	t := a.Agent.TypeConfig
	switch a.Mode() {
	case cfg.StatePatrolling:
		if a.Agent.SeesPlayer {
			a.SetState(cfg.StateChasing)
			a.Motion.Turn = nil
			a.RaiseAlarm(a.Player)
			return
		}
		sweep(a)
	case cfg.StateChasing:
		if a.Agent.SeesPlayer {
			turnToward(a, gamemath.Bearing(a.Motion.Position, a.Player))
			return
		}
		if a.Agent.LostFrames >= t.GiveUpFrames {
			a.SetState(cfg.StatePatrolling)
		}
	}
}

// sweep advances the sweep tween, starting the next leg when one ends.
func sweep(a *AgentContext) {
	t := a.Agent.TypeConfig
	if t.SweepArc <= 0 {
		turnToward(a, a.Agent.HomeHeading)
		return
	}
	if a.Motion.Turn == nil {
		a.Motion.SweepLeft = !a.Motion.SweepLeft
		target := a.Agent.HomeHeading - t.SweepArc/2
		if a.Motion.SweepLeft {
			target = a.Agent.HomeHeading + t.SweepArc/2
		}
		delta := gamemath.AngleDelta(a.Motion.Angle, target)
		frames := math.Max(1, math.Abs(delta)/t.SweepArc*t.SweepFrames)
		a.Motion.Turn = gween.New(float32(a.Motion.Angle), float32(a.Motion.Angle+delta), float32(frames), ease.InOutSine)
	}
	v, done := a.Motion.Turn.Update(1)
	a.Motion.Angle = gamemath.NormalizeDegrees(float64(v))
	if done {
		a.Motion.Turn = nil
	}
}

func (sentinelPolicy) NextGoal(*AgentContext) (*grid.Node, bool) {
	return nil, false
}

func (sentinelPolicy) Notified(*AgentContext, dmath.Vec2) {}
