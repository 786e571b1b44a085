package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/input"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/render"
	"github.com/automoto/lurk/shared/leveldata"
	"github.com/automoto/lurk/systems"
	"github.com/automoto/lurk/systems/factory"
	"github.com/automoto/lurk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StealthScene plays one level with keyboard or gamepad control.
type StealthScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.MapData
	levelIndex   int
	input        *input.State
	reload       *Reloader
	once         sync.Once
}

// NewStealthScene creates a scene for levels[levelIndex]. reload may be nil.
func NewStealthScene(sc SceneChanger, levels []*leveldata.MapData, levelIndex int, reload *Reloader) *StealthScene {
	return &StealthScene{
		sceneChanger: sc,
		levels:       levels,
		levelIndex:   levelIndex % len(levels),
		input:        &input.State{},
		reload:       reload,
	}
}

func (ss *StealthScene) Update() {
	ss.once.Do(ss.configure)
	ss.input.Poll()

	if ss.reload != nil && ss.reload.Changed() {
		ss.restart(ss.levelIndex)
		return
	}
	if ss.input.Action(input.ActionRestart).JustPressed {
		ss.restart(ss.levelIndex)
		return
	}
	if ss.input.Action(input.ActionNextLevel).JustPressed {
		ss.restart(ss.levelIndex + 1)
		return
	}

	ss.ecs.Update()
}

func (ss *StealthScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StealthScene) restart(levelIndex int) {
	ss.sceneChanger.ChangeScene(NewStealthScene(ss.sceneChanger, ss.levels, levelIndex, ss.reload))
}

func (ss *StealthScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Viewer systems run even when paused
	ecs.AddSystem(ss.updatePause)
	ecs.AddSystem(ss.updateDebugToggles)

	// Simulation systems
	ecs.AddSystem(ss.updatePlayerInput)
	for _, system := range systems.FrameSystems {
		ecs.AddSystem(wrap(systems.WithGameplayChecks(system)))
	}
	ecs.AddSystem(wrap(systems.WithGameplayChecks(systems.UpdateOutcome)))
	ecs.AddSystem(ss.recordRun)

	// Add renderers
	ecs.AddRenderer(render.LayerWorld, render.DrawGrid)
	ecs.AddRenderer(render.LayerWorld, render.DrawRaster)
	ecs.AddRenderer(render.LayerWorld, render.DrawFans)
	ecs.AddRenderer(render.LayerWorld, render.DrawPaths)
	ecs.AddRenderer(render.LayerWorld, render.DrawAgents)
	ecs.AddRenderer(render.LayerWorld, render.DrawPlayer)
	ecs.AddRenderer(render.LayerOverlay, render.DrawAlarm)
	ecs.AddRenderer(render.LayerOverlay, render.DrawHUD)
	ecs.AddRenderer(render.LayerOverlay, render.DrawStatus)

	ss.ecs = ecs

	m := ss.levels[ss.levelIndex]
	factory.CreateLevel(ecs.World, m)
	factory.Populate(ecs.World, m)
	systems.GetOrCreatePause(ecs.World)
	systems.GetOrCreateLevelComplete(ecs.World)

	logger.Log.WithFields(logrus.Fields{
		"level": m.Name,
		"index": ss.levelIndex,
	}).Info("scene started")
}

// wrap adapts a world system to the ecs system signature.
func wrap(system func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}

func (ss *StealthScene) updatePause(e *ecs.ECS) {
	if ss.input.Action(input.ActionPause).JustPressed {
		pause := systems.GetOrCreatePause(e.World)
		pause.IsPaused = !pause.IsPaused
	}
}

func (ss *StealthScene) updateDebugToggles(e *ecs.ECS) {
	if ss.input.Action(input.ActionToggleGrid).JustPressed {
		cfg.Debug.ShowGrid = !cfg.Debug.ShowGrid
	}
	if ss.input.Action(input.ActionTogglePaths).JustPressed {
		cfg.Debug.ShowPaths = !cfg.Debug.ShowPaths
	}
	if ss.input.Action(input.ActionToggleRaster).JustPressed {
		cfg.Debug.ShowRaster = !cfg.Debug.ShowRaster
	}
}

func (ss *StealthScene) updatePlayerInput(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	components.PlayerInput.Get(playerEntry).Move = ss.input.Move()
}

// recordRun saves the run stats once the run ends.
func (ss *StealthScene) recordRun(e *ecs.ECS) {
	complete := systems.GetOrCreateLevelComplete(e.World)
	if !complete.IsComplete || complete.Recorded {
		return
	}
	complete.Recorded = true

	stats := systems.CollectRunStats(e.World)
	if err := systems.SaveRunStats(stats); err != nil {
		return
	}
	if h, err := systems.LoadStatsHistory(stats.Level); err == nil && h != nil {
		logger.Log.WithFields(logrus.Fields{
			"level":           stats.Level,
			"runs":            h.Runs,
			"best_detections": h.Best.Detections,
			"best_frames":     h.Best.Frames,
		}).Info("run recorded")
	}
}
