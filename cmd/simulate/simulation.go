package main

import (
	"errors"

	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/shared/leveldata"
	"github.com/automoto/lurk/systems"
	"github.com/automoto/lurk/systems/factory"
	"github.com/automoto/lurk/tags"
	"github.com/yohamta/donburi"
)

var errNoPlayer = errors.New("level has no player spawn")

// Simulation is one headless run of a level.
type Simulation struct {
	World  donburi.World
	Driver *RouteDriver
	level  *components.LevelData
}

func NewSimulation(m *leveldata.MapData) (*Simulation, error) {
	w := donburi.NewWorld()
	levelEntry := factory.CreateLevel(w, m)
	factory.Populate(w, m)

	if _, ok := tags.Player.First(w); !ok {
		return nil, errNoPlayer
	}
	level := components.Level.Get(levelEntry)
	return &Simulation{
		World:  w,
		Driver: NewRouteDriver(w, level),
		level:  level,
	}, nil
}

// Step feeds the scripted input and runs one frame.
func (s *Simulation) Step() {
	s.Driver.Update(s.World)
	systems.Step(s.World)
	systems.UpdateOutcome(s.World)
}

func (s *Simulation) Frame() int {
	return s.level.Frame
}

// Over reports whether the player escaped, was caught or ran out of route.
func (s *Simulation) Over() bool {
	return s.Driver.Done() || systems.GetOrCreateLevelComplete(s.World).IsComplete
}

// Escaped reports whether the player reached an exit.
func (s *Simulation) Escaped() bool {
	return systems.GetOrCreateLevelComplete(s.World).Escaped
}
