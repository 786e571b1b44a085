package components

import (
	"github.com/automoto/lurk/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.AgentStateID
	PreviousState config.AgentStateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
