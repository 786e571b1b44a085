package factory

import (
	"fmt"

	"github.com/automoto/lurk/archetypes"
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var kindTags = map[string]donburi.IComponentType{
	cfg.KindGuard:    tags.Guard,
	cfg.KindCivilian: tags.Civilian,
	cfg.KindSentinel: tags.Sentinel,
	cfg.KindSecurity: tags.Security,
}

// CreateAgent spawns an agent of the given kind centred on (x, y) with a
// patrol zone queue and an initial heading in degrees.
func CreateAgent(w donburi.World, kind string, x, y float64, zones []int, heading float64) (*donburi.Entry, error) {
	agentType, exists := cfg.Agents.Types[kind]
	if !exists {
		return nil, fmt.Errorf("create agent: unknown kind %q", kind)
	}

	var agent *donburi.Entry
	if tag, ok := kindTags[kind]; ok {
		agent = archetypes.Agent.Spawn(w, tag)
	} else {
		agent = archetypes.Agent.Spawn(w)
	}

	size := agentType.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvAgent)
	obj.Data = agent
	components.Object.SetValue(agent, components.ObjectData{Object: obj})

	pos := dmath.Vec2{X: x, Y: y}
	components.Agent.SetValue(agent, components.AgentData{
		Kind:          kind,
		TypeConfig:    &agentType, // Cache the config reference
		Speed:         agentType.Speed,
		RotationSpeed: agentType.RotationSpeed,
		ZoneQueue:     append([]int(nil), zones...),
		Home:          pos,
		HomeHeading:   heading,
	})
	components.Motion.SetValue(agent, components.MotionData{
		Position: pos,
		Angle:    heading,
	})
	components.Vision.SetValue(agent, components.VisionData{
		ConeAngle:  agentType.PatrolCone,
		Reach:      agentType.PatrolReach,
		NearRadius: agentType.NearRadius,
	})
	components.State.SetValue(agent, components.StateData{
		CurrentState:  cfg.StatePatrolling,
		PreviousState: cfg.StatePatrolling,
	})

	if levelEntry, ok := components.Level.First(w); ok {
		components.Level.Get(levelEntry).Grid.Space().Add(obj)
	}
	return agent, nil
}
