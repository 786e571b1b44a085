package systems

import (
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/detection"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// guardPolicy patrols its zones, chases on sight and searches the last
// known position when it loses the player.
type guardPolicy struct{}

func (guardPolicy) Enter(a *AgentContext) {
	a.SetState(cfg.StatePatrolling)
}

func (guardPolicy) Observe(a *AgentContext) {
	observeHostile(a)
}

// observeHostile is the sighting logic shared by guards and security.
func observeHostile(a *AgentContext) {
	t := a.Agent.TypeConfig
	switch a.Mode() {
	case cfg.StatePatrolling, cfg.StateInvestigating:
		if !a.Agent.SeesPlayer {
			a.Agent.Suspicion = max(a.Agent.Suspicion-1, 0)
			return
		}
		if a.Agent.Band == detection.BandSeen {
			chase(a)
			return
		}
		a.Agent.Suspicion++
		if a.Agent.Suspicion >= t.SuspicionFrames {
			chase(a)
		}
	case cfg.StateChasing:
		if a.Agent.SeesPlayer {
			repathChase(a)
			return
		}
		if a.Agent.LostFrames >= t.GiveUpFrames {
			a.log().Debug("lost the player")
			investigate(a, a.Agent.LastSeen)
		}
	}
}

func (guardPolicy) NextGoal(a *AgentContext) (*grid.Node, bool) {
	return hostileGoal(a, patrolGoal)
}

func hostileGoal(a *AgentContext, patrol func(a *AgentContext) (*grid.Node, bool)) (*grid.Node, bool) {
	switch a.Mode() {
	case cfg.StateChasing:
		if a.Agent.SeesPlayer {
			return a.PlayerNode()
		}
		n, err := a.Level.Grid.NodeAt(a.Agent.LastSeen.X, a.Agent.LastSeen.Y)
		return n, err == nil
	case cfg.StateInvestigating:
		// Arrived: look around, then go back to patrolling.
		a.SetState(cfg.StatePatrolling)
		a.Agent.IdleFrames = a.Agent.TypeConfig.InvestigateFrames
		return nil, false
	}
	return patrol(a)
}

func (guardPolicy) Notified(a *AgentContext, at dmath.Vec2) {
	switch a.Mode() {
	case cfg.StatePatrolling, cfg.StateInvestigating:
		investigate(a, at)
	}
}
