package config

// AgentStateID identifies the behavior state of an agent.
type AgentStateID int

const (
	StatePatrolling AgentStateID = iota
	StateChasing
	StateEscaping
	StateInvestigating
	StateAligning // rotating in place before following a new path
)

// StateNames maps states to log-friendly names.
var StateNames = map[AgentStateID]string{
	StatePatrolling:    "patrolling",
	StateChasing:       "chasing",
	StateEscaping:      "escaping",
	StateInvestigating: "investigating",
	StateAligning:      "aligning",
}

func (s AgentStateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Agent kinds, used as keys of Agents.Types and as detection labels.
const (
	KindGuard    = "guard"
	KindCivilian = "civilian"
	KindSentinel = "sentinel"
	KindSecurity = "security"
)

// Kinds lists every agent kind in a stable order.
var Kinds = []string{KindGuard, KindCivilian, KindSentinel, KindSecurity}
