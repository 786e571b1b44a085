package systems

import (
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// civilianPolicy wanders its zones and runs from the player, raising the
// alarm as it goes.
type civilianPolicy struct{}

func (civilianPolicy) Enter(a *AgentContext) {
	a.SetState(cfg.StatePatrolling)
}

func (civilianPolicy) Observe(a *AgentContext) {
	if !a.Agent.SeesPlayer || a.Mode() == cfg.StateEscaping {
		return
	}
	a.log().Debug("fleeing")
	a.SetState(cfg.StateEscaping)
	a.RaiseAlarm(a.Player)
	if n, ok := fleeGoal(a); ok {
		a.RequestPath(n)
	}
}

func (civilianPolicy) NextGoal(a *AgentContext) (*grid.Node, bool) {
	if a.Mode() == cfg.StateEscaping {
		if a.Agent.SeesPlayer {
			return fleeGoal(a)
		}
		a.SetState(cfg.StatePatrolling)
	}
	return patrolGoal(a)
}

func (civilianPolicy) Notified(*AgentContext, dmath.Vec2) {}

// fleeGoal samples random open nodes and keeps the one farthest from the
// player.
func fleeGoal(a *AgentContext) (*grid.Node, bool) {
	samples := max(a.Agent.TypeConfig.FleeSamples, 1)
	var best *grid.Node
	bestDist := -1.0
	for i := 0; i < samples; i++ {
		n, ok := a.Level.Grid.RandomNode(a.rng(), true)
		if !ok {
			return nil, false
		}
		if d := gamemath.Distance(n.Center(), a.Player); d > bestDist {
			best, bestDist = n, d
		}
	}
	return best, true
}
