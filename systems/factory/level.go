package factory

import (
	"math/rand/v2"

	"github.com/automoto/lurk/archetypes"
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/shared/detection"
	"github.com/automoto/lurk/shared/leveldata"
	"github.com/automoto/lurk/shared/pathfind"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the navigation grid for m and spawns the level, alarm
// and detection singletons.
func CreateLevel(w donburi.World, m *leveldata.MapData) *donburi.Entry {
	g := m.Build(cfg.Grid.Gap)
	g.BaseWeight = cfg.Grid.BaseWeight
	g.BarrierWeight = cfg.Grid.BarrierWeight
	g.SurroundingBarrierWeights()

	pf := pathfind.New()
	if cfg.Pathfinding.Admissible {
		pf.Heuristic = pathfind.Admissible(cfg.Grid.BaseWeight)
	}

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Map:        m,
		Grid:       g,
		Pathfinder: pf,
		Rand:       rand.New(rand.NewPCG(cfg.C.Seed, uint64(m.Size))),
	})

	alarm := archetypes.Alarm.Spawn(w)
	components.Alarm.SetValue(alarm, components.AlarmData{})

	size := g.WorldSize()
	det := archetypes.Detection.Spawn(w)
	components.Detection.SetValue(det, components.DetectionData{
		Resolver: detection.NewResolver(size, size, cfg.Detection.RasterScale),
	})

	logger.Log.WithFields(logrus.Fields{
		"map":   m.Name,
		"size":  m.Size,
		"open":  g.OpenCount(),
		"zones": g.Zones(),
	}).Info("level built")
	return level
}

// Populate spawns the player and every agent listed by the map. Agents of
// unknown kinds are skipped with a warning.
func Populate(w donburi.World, m *leveldata.MapData) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	g := components.Level.Get(levelEntry).Grid

	spawn := g.Node(m.PlayerSpawn.Row, m.PlayerSpawn.Col)
	if spawn != nil {
		CreatePlayer(w, spawn.X, spawn.Y)
	}

	for _, s := range m.Agents {
		n := g.Node(s.Row, s.Col)
		if n == nil || n.IsBarrier {
			logger.Log.WithFields(logrus.Fields{"kind": s.Kind, "row": s.Row, "col": s.Col}).Warn("agent spawn blocked")
			continue
		}
		if _, err := CreateAgent(w, s.Kind, n.X, n.Y, s.Zones, s.Heading); err != nil {
			logger.Log.WithError(err).Warn("agent not spawned")
		}
	}
}
