package systems

import (
	"math/rand/v2"

	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BehaviorPolicy holds the kind-specific transitions of an agent. The
// shared motion controller drives every policy the same way:
//
//   - Enter runs once at spawn.
//   - Observe runs every frame before motion, with the sighting fields from
//     the previous frame's detection pass.
//   - NextGoal runs when the agent has no waypoint or reached its end node.
//     Returning false leaves the agent idle for a while.
//   - Notified runs when an alarm is raised within range.
type BehaviorPolicy interface {
	Enter(a *AgentContext)
	Observe(a *AgentContext)
	NextGoal(a *AgentContext) (*grid.Node, bool)
	Notified(a *AgentContext, at dmath.Vec2)
}

var policies = map[string]BehaviorPolicy{
	cfg.KindGuard:    guardPolicy{},
	cfg.KindCivilian: civilianPolicy{},
	cfg.KindSentinel: sentinelPolicy{},
	cfg.KindSecurity: securityPolicy{},
}

// PolicyFor returns the behavior of an agent kind. Unknown kinds behave
// like guards.
func PolicyFor(kind string) BehaviorPolicy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return policies[cfg.KindGuard]
}

// AgentContext bundles the components of one agent for a single update.
type AgentContext struct {
	Entry  *donburi.Entry
	Agent  *components.AgentData
	Motion *components.MotionData
	Path   *components.PathData
	Vision *components.VisionData
	State  *components.StateData
	Level  *components.LevelData
	Alarm  *components.AlarmData // nil when the world has no alarm

	Player    dmath.Vec2
	HasPlayer bool
}

func newAgentContext(w donburi.World, e *donburi.Entry, level *components.LevelData) *AgentContext {
	a := &AgentContext{
		Entry:  e,
		Agent:  components.Agent.Get(e),
		Motion: components.Motion.Get(e),
		Path:   components.Path.Get(e),
		Vision: components.Vision.Get(e),
		State:  components.State.Get(e),
		Level:  level,
	}
	if alarmEntry, ok := components.Alarm.First(w); ok {
		a.Alarm = components.Alarm.Get(alarmEntry)
	}
	if playerEntry, ok := components.Player.First(w); ok {
		a.Player = components.Object.Get(playerEntry).Rect().Center()
		a.HasPlayer = true
	}
	return a
}

func (a *AgentContext) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"agent": a.Agent.Kind,
		"id":    a.Entry.Entity(),
		"state": a.Mode().String(),
	})
}

func (a *AgentContext) rng() *rand.Rand {
	return a.Level.Rand
}

// Mode is the behavior state, looking through an in-progress alignment.
func (a *AgentContext) Mode() cfg.AgentStateID {
	if a.State.CurrentState == cfg.StateAligning {
		return a.Motion.ResumeState
	}
	return a.State.CurrentState
}

// SetState switches behavior state, cancelling any alignment and applying
// the state's speed. A real change also ends any idle wait.
func (a *AgentContext) SetState(s cfg.AgentStateID) {
	if a.State.CurrentState == cfg.StateAligning {
		a.Motion.Turn = nil
	}
	if a.Mode() != s {
		a.log().WithField("next", s.String()).Debug("state change")
		a.Agent.IdleFrames = 0
	}
	a.State.PreviousState = a.State.CurrentState
	a.State.CurrentState = s
	a.State.StateTimer = 0
	a.Agent.Speed = speedFor(a.Agent.TypeConfig, s)
}

func speedFor(t *cfg.AgentTypeConfig, s cfg.AgentStateID) float64 {
	switch s {
	case cfg.StateChasing:
		if t.ChaseSpeed > 0 {
			return t.ChaseSpeed
		}
	case cfg.StateEscaping:
		if t.FleeSpeed > 0 {
			return t.FleeSpeed
		}
	}
	return t.Speed
}

// Node returns the grid node under the agent.
func (a *AgentContext) Node() (*grid.Node, error) {
	return a.Level.Grid.NodeAt(a.Motion.Position.X, a.Motion.Position.Y)
}

// PlayerNode returns the grid node under the player.
func (a *AgentContext) PlayerNode() (*grid.Node, bool) {
	if !a.HasPlayer {
		return nil, false
	}
	n, err := a.Level.Grid.NodeAt(a.Player.X, a.Player.Y)
	if err != nil || n.IsBarrier {
		return nil, false
	}
	return n, true
}

// RaiseAlarm reports the player at p. Kinds that do not raise alarms
// ignore the call. The alarm system picks the report up next frame.
func (a *AgentContext) RaiseAlarm(p dmath.Vec2) {
	if a.Alarm == nil || !a.Agent.TypeConfig.RaisesAlarm {
		return
	}
	a.Alarm.Pending = true
	a.Alarm.PendingAt = p
	a.Alarm.PendingBy = a.Agent.Kind
}

// patrolGoal picks a random node in the zone at the head of the agent's
// queue and rotates the queue. An empty queue or an empty zone falls back
// to any open node.
func patrolGoal(a *AgentContext) (*grid.Node, bool) {
	g := a.Level.Grid
	if q := a.Agent.ZoneQueue; len(q) > 0 {
		zone := q[0]
		a.Agent.ZoneQueue = append(q[1:], zone)
		if n, ok := g.RandomNodeInZone(a.rng(), zone); ok {
			return n, true
		}
		a.log().WithField("zone", zone).Debug("empty zone, roaming")
	}
	return g.RandomNode(a.rng(), true)
}

// investigate sends the agent to p and switches to Investigating.
func investigate(a *AgentContext, p dmath.Vec2) {
	a.SetState(cfg.StateInvestigating)
	n, err := a.Level.Grid.NodeAt(p.X, p.Y)
	if err != nil || n.IsBarrier {
		a.log().WithError(err).Debug("investigate target unreachable")
		a.Path.Clear()
		return
	}
	a.RequestPath(n)
}

// chase switches to Chasing toward the player's node.
func chase(a *AgentContext) {
	a.SetState(cfg.StateChasing)
	a.Agent.Suspicion = 0
	a.RaiseAlarm(a.Player)
	if n, ok := a.PlayerNode(); ok {
		a.RequestPath(n)
		a.Agent.RepathTimer = cfg.Pathfinding.RepathFrames
	}
}

// repathChase follows a moving player, at most once per RepathFrames.
func repathChase(a *AgentContext) {
	if a.Agent.RepathTimer > 0 || !a.Agent.SeesPlayer {
		return
	}
	n, ok := a.PlayerNode()
	if !ok || n == a.Path.EndNode {
		return
	}
	a.RequestPath(n)
	a.Agent.RepathTimer = cfg.Pathfinding.RepathFrames
}

// turnToward rotates the agent toward target by at most its rotation speed.
func turnToward(a *AgentContext, target float64) {
	d := gamemath.AngleDelta(a.Motion.Angle, target)
	step := a.Agent.RotationSpeed
	d = gamemath.Clamp(d, -step, step)
	a.Motion.Angle = gamemath.NormalizeDegrees(a.Motion.Angle + d)
}
