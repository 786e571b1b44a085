package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Agent    = donburi.NewTag().SetName("Agent")
	Guard    = donburi.NewTag().SetName("Guard")
	Civilian = donburi.NewTag().SetName("Civilian")
	Sentinel = donburi.NewTag().SetName("Sentinel")
	Security = donburi.NewTag().SetName("Security")
)

// Resolv tags for collision bodies
const (
	ResolvBarrier = "barrier"
	ResolvPlayer  = "Player"
	ResolvAgent   = "Agent"
)
