package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TickRate int    `yaml:"tick_rate"` // fixed update steps per second
	Level    string `yaml:"level"`     // manifest path inside the level FS
	Seed     uint64 `yaml:"seed"`
}

// GridConfig contains navigation grid configuration
type GridConfig struct {
	Gap           float64 `yaml:"gap"`            // world units per node edge
	BaseWeight    float64 `yaml:"base_weight"`    // traversal cost away from walls
	BarrierWeight float64 `yaml:"barrier_weight"` // added per orthogonal barrier
}

// PathfindingConfig contains A* and repath throttling values
type PathfindingConfig struct {
	Admissible   bool `yaml:"admissible"`    // use the strict heuristic instead of the weight-biased one
	RepathFrames int  `yaml:"repath_frames"` // minimum frames between chase repaths
	IdleFrames   int  `yaml:"idle_frames"`   // wait after an empty path before retrying
}

// SmootherConfig contains spline sampling density
type SmootherConfig struct {
	Segments     int `yaml:"segments"`
	FastSegments int `yaml:"fast_segments"` // used while moving at flee/chase speed
}

// MotionConfig contains path following values shared by every agent
type MotionConfig struct {
	ReachThreshold float64 `yaml:"reach_threshold"` // Chebyshev distance to count a waypoint as reached
	SkipAngle      float64 `yaml:"skip_angle"`      // degrees; sharper turns skip ahead
	MaxSkips       int     `yaml:"max_skips"`       // waypoint skips per frame
	AlignThreshold float64 `yaml:"align_threshold"` // degrees; sharper starts rotate in place first
}

// DetectionConfig contains exposure resolver values
type DetectionConfig struct {
	RasterScale        float64 `yaml:"raster_scale"` // raster pixels per world unit
	SeenDistance       float64 `yaml:"seen_distance"`
	SuspiciousDistance float64 `yaml:"suspicious_distance"`
}

// AgentTypeConfig contains configuration for specific agent kinds
type AgentTypeConfig struct {
	Name string `yaml:"name"`

	// Movement (world units and degrees per frame)
	Speed         float64 `yaml:"speed"`
	ChaseSpeed    float64 `yaml:"chase_speed"`
	FleeSpeed     float64 `yaml:"flee_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`

	// Vision; reach is in grid cells
	PatrolCone  float64 `yaml:"patrol_cone"`
	PatrolReach int     `yaml:"patrol_reach"`
	ChaseCone   float64 `yaml:"chase_cone"`
	ChaseReach  int     `yaml:"chase_reach"`
	NearRadius  float64 `yaml:"near_radius"`

	// Behavior timing (frames)
	SuspicionFrames   int `yaml:"suspicion_frames"`
	GiveUpFrames      int `yaml:"give_up_frames"`
	InvestigateFrames int `yaml:"investigate_frames"`

	// Sentinel sweep
	SweepArc    float64 `yaml:"sweep_arc"`
	SweepFrames float64 `yaml:"sweep_frames"`

	RaisesAlarm   bool    `yaml:"raises_alarm"`
	FleeSamples   int     `yaml:"flee_samples"` // random nodes tried when picking a flee goal
	CollisionSize float64 `yaml:"collision_size"`

	Color color.RGBA `yaml:"-"`
}

// AgentConfig contains per-kind agent configuration
type AgentConfig struct {
	Types map[string]AgentTypeConfig
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	CollisionSize  float64 `yaml:"collision_size"`
	Health         int     `yaml:"health"`
	DamageInterval int     `yaml:"damage_interval"` // frames of continuous exposure per lost health point
}

// AlarmConfig contains alarm propagation values
type AlarmConfig struct {
	DurationFrames int     `yaml:"duration_frames"`
	NotifyRadius   float64 `yaml:"notify_radius"` // 0 notifies every agent
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowPaths  bool `yaml:"show_paths"`
	ShowRaster bool `yaml:"show_raster"`
	ShowGrid   bool `yaml:"show_grid"`
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Pathfinding PathfindingConfig
var Smoother SmootherConfig
var Motion MotionConfig
var Detection DetectionConfig
var Agents AgentConfig
var Player PlayerConfig
var Alarm AlarmConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default. Tests call it to
// undo overrides.
func Reset() {
	C = &Config{
		Width:    640,
		Height:   640,
		TickRate: 60,
		Level:    "levels/warehouse.yaml",
		Seed:     1,
	}

	Grid = GridConfig{
		Gap:           32,
		BaseWeight:    1,
		BarrierWeight: 5,
	}

	Pathfinding = PathfindingConfig{
		Admissible:   false,
		RepathFrames: 15, // 0.25 seconds
		IdleFrames:   30,
	}

	Smoother = SmootherConfig{
		Segments:     8,
		FastSegments: 4,
	}

	Motion = MotionConfig{
		ReachThreshold: 1,
		SkipAngle:      45,
		MaxSkips:       2,
		AlignThreshold: 90,
	}

	Detection = DetectionConfig{
		RasterScale:        0.5,
		SeenDistance:       96,
		SuspiciousDistance: 192,
	}

	Agents = AgentConfig{
		Types: map[string]AgentTypeConfig{
			KindGuard: {
				Name:              KindGuard,
				Speed:             1.2,
				ChaseSpeed:        2.2,
				RotationSpeed:     6,
				PatrolCone:        70,
				PatrolReach:       6,
				ChaseCone:         40,
				ChaseReach:        9,
				NearRadius:        20,
				SuspicionFrames:   45,
				GiveUpFrames:      180, // 3 seconds out of sight
				InvestigateFrames: 120,
				CollisionSize:     20,
				Color:             Blue,
			},
			KindCivilian: {
				Name:          KindCivilian,
				Speed:         0.9,
				FleeSpeed:     2.4,
				RotationSpeed: 8,
				PatrolCone:    90,
				PatrolReach:   4,
				ChaseCone:     90,
				ChaseReach:    4,
				NearRadius:    16,
				RaisesAlarm:   true,
				FleeSamples:   12,
				CollisionSize: 18,
				Color:         Green,
			},
			KindSentinel: {
				Name:          KindSentinel,
				RotationSpeed: 2,
				PatrolCone:    50,
				PatrolReach:   10,
				ChaseCone:     30,
				ChaseReach:    12,
				NearRadius:    12,
				GiveUpFrames:  90,
				SweepArc:      120,
				SweepFrames:   180,
				RaisesAlarm:   true,
				CollisionSize: 20,
				Color:         Purple,
			},
			KindSecurity: {
				Name:              KindSecurity,
				Speed:             1.5,
				ChaseSpeed:        2.6,
				RotationSpeed:     8,
				PatrolCone:        60,
				PatrolReach:       7,
				ChaseCone:         40,
				ChaseReach:        10,
				NearRadius:        20,
				SuspicionFrames:   30,
				GiveUpFrames:      240,
				InvestigateFrames: 120,
				CollisionSize:     22,
				Color:             Orange,
			},
		},
	}

	Player = PlayerConfig{
		Speed:          2,
		CollisionSize:  16,
		Health:         5,
		DamageInterval: 60,
	}

	Alarm = AlarmConfig{
		DurationFrames: 600, // 10 seconds
		NotifyRadius:   0,
	}

	Debug = DebugConfig{
		ShowPaths:  true,
		ShowRaster: false,
		ShowGrid:   true,
	}
}
