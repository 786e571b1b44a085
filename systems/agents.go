package systems

import (
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/tags"
	"github.com/yohamta/donburi"
)

// UpdateAgents runs the behavior policy and the motion controller of every
// agent, then refreshes state-dependent vision and collision bodies.
func UpdateAgents(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	level.Frame++

	tags.Agent.Each(w, func(e *donburi.Entry) {
		a := newAgentContext(w, e, level)
		a.State.StateTimer++
		if a.Agent.RepathTimer > 0 {
			a.Agent.RepathTimer--
		}

		policy := PolicyFor(a.Agent.Kind)
		if !a.Agent.Entered {
			a.Agent.Entered = true
			policy.Enter(a)
		}
		policy.Observe(a)
		stepMotion(a, policy)

		applyVision(a)
		components.Object.Get(e).CenterOn(a.Motion.Position)
	})
}

// applyVision narrows and extends the cone while chasing.
func applyVision(a *AgentContext) {
	t := a.Agent.TypeConfig
	a.Vision.NearRadius = t.NearRadius
	if a.Mode() == cfg.StateChasing {
		a.Vision.ConeAngle = t.ChaseCone
		a.Vision.Reach = t.ChaseReach
		return
	}
	a.Vision.ConeAngle = t.PatrolCone
	a.Vision.Reach = t.PatrolReach
}
