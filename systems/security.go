package systems

import (
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// securityPolicy patrols keys and exits and chases like a guard. On an
// alarm it runs to the nearest exit and locks it until the alarm ends.
type securityPolicy struct{}

func (securityPolicy) Enter(a *AgentContext) {
	a.SetState(cfg.StatePatrolling)
}

func (securityPolicy) Observe(a *AgentContext) {
	if a.Agent.LockedExit != nil && (a.Alarm == nil || !a.Alarm.Active) {
		a.Level.Grid.SetExit(a.Agent.LockedExit, true)
		a.log().WithField("exit", nodeField(a.Agent.LockedExit)).Info("exit unlocked")
		a.Agent.LockedExit = nil
		a.Agent.IdleFrames = 0
	}
	observeHostile(a)
}

func (securityPolicy) NextGoal(a *AgentContext) (*grid.Node, bool) {
	if a.Mode() == cfg.StateInvestigating && a.Agent.Notified {
		a.Agent.Notified = false
		n, err := a.Node()
		switch {
		case err != nil:
		case n == a.Agent.LockedExit:
			a.SetState(cfg.StatePatrolling)
			holdExit(a)
			return nil, false
		case n.IsExit && a.Agent.LockedExit == nil:
			a.SetState(cfg.StatePatrolling)
			lockExit(a, n)
			return nil, false
		}
	}
	return hostileGoal(a, securityPatrolGoal)
}

// securityPatrolGoal picks a random key or exit node, falling back to the
// zone patrol when the map has neither.
func securityPatrolGoal(a *AgentContext) (*grid.Node, bool) {
	g := a.Level.Grid
	targets := append(g.KeyNodes(), g.ExitNodes()...)
	if len(targets) == 0 {
		return patrolGoal(a)
	}
	return targets[a.rng().IntN(len(targets))], true
}

func (securityPolicy) Notified(a *AgentContext, at dmath.Vec2) {
	switch a.Mode() {
	case cfg.StatePatrolling, cfg.StateInvestigating:
	default:
		return
	}
	exit, ok := a.Agent.LockedExit, a.Agent.LockedExit != nil
	if ok {
		// One exit per agent: a renewed alarm sends it back to the same one.
		if n, err := a.Node(); err == nil && n == exit {
			holdExit(a)
			return
		}
	} else {
		exit, ok = nearestExit(a)
	}
	if !ok {
		investigate(a, at)
		return
	}
	a.SetState(cfg.StateInvestigating)
	a.Agent.Notified = true
	a.Agent.NotifyAt = at
	a.RequestPath(exit)
}

// lockExit closes exit n under the agent and holds position while the
// alarm lasts.
func lockExit(a *AgentContext, n *grid.Node) {
	a.Level.Grid.SetExit(n, false)
	a.Agent.LockedExit = n
	a.log().WithField("exit", nodeField(n)).Info("exit locked")
	holdExit(a)
}

func holdExit(a *AgentContext) {
	if a.Alarm != nil && a.Alarm.Active {
		a.Agent.IdleFrames = max(a.Alarm.FramesLeft, a.Agent.IdleFrames)
	}
}

func nearestExit(a *AgentContext) (*grid.Node, bool) {
	var best *grid.Node
	bestDist := 0.0
	for _, n := range a.Level.Grid.ExitNodes() {
		d := gamemath.Distance(n.Center(), a.Motion.Position)
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, best != nil
}

func nodeField(n *grid.Node) [2]int {
	return [2]int{n.Row, n.Col}
}
