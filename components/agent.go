package components

import (
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/detection"
	"github.com/automoto/lurk/shared/grid"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type AgentData struct {
	Kind       string                  // config.KindGuard, config.KindCivilian...
	TypeConfig *config.AgentTypeConfig // Cached reference to kind configuration
	Entered    bool                    // behavior policy initialised

	Speed         float64 // current speed, world units per frame
	RotationSpeed float64 // degrees per frame
	ZoneQueue     []int   // patrol territory; empty roams anywhere

	// Sighting state, written by the detection pass
	SeesPlayer  bool
	Band        detection.ExposureBand
	Suspicion   int // frames the player has been seen in the suspicious band
	LastSeen    dmath.Vec2
	HasLastSeen bool
	LostFrames  int // frames since the player was last seen

	// Stationary agents return here
	Home        dmath.Vec2
	HomeHeading float64

	// Alarm inbox, consumed by the behavior policy
	Notified bool
	NotifyAt dmath.Vec2

	LockedExit  *grid.Node // exit closed by a security agent
	IdleFrames  int        // wait before retrying after an empty path
	RepathTimer int        // frames until the next chase repath is allowed
}

var Agent = donburi.NewComponentType[AgentData]()
