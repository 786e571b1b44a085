package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the YAML layout of a tuning file. Every section is
// optional; fields missing from a section keep their current value.
type overrideFile struct {
	Game        *Config              `yaml:"game"`
	Grid        *GridConfig          `yaml:"grid"`
	Pathfinding *PathfindingConfig   `yaml:"pathfinding"`
	Smoother    *SmootherConfig      `yaml:"smoother"`
	Motion      *MotionConfig        `yaml:"motion"`
	Detection   *DetectionConfig     `yaml:"detection"`
	Player      *PlayerConfig        `yaml:"player"`
	Alarm       *AlarmConfig         `yaml:"alarm"`
	Debug       *DebugConfig         `yaml:"debug"`
	Agents      map[string]yaml.Node `yaml:"agents"`
}

// LoadOverrides applies a YAML tuning document on top of the current
// globals. Nothing is changed when the document fails to parse.
func LoadOverrides(data []byte) error {
	game := *C
	grid, pf, sm, mo, det := Grid, Pathfinding, Smoother, Motion, Detection
	pl, al, dbg := Player, Alarm, Debug

	doc := overrideFile{
		Game:        &game,
		Grid:        &grid,
		Pathfinding: &pf,
		Smoother:    &sm,
		Motion:      &mo,
		Detection:   &det,
		Player:      &pl,
		Alarm:       &al,
		Debug:       &dbg,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse overrides: %w", err)
	}

	types := make(map[string]AgentTypeConfig, len(Agents.Types))
	for kind, t := range Agents.Types {
		types[kind] = t
	}
	for kind, node := range doc.Agents {
		t, ok := types[kind]
		if !ok {
			return fmt.Errorf("config: unknown agent kind %q", kind)
		}
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("config: agent %s: %w", kind, err)
		}
		types[kind] = t
	}

	if err := validate(&grid, &sm, &det); err != nil {
		return err
	}

	C = &game
	Grid, Pathfinding, Smoother, Motion, Detection = grid, pf, sm, mo, det
	Player, Alarm, Debug = pl, al, dbg
	Agents.Types = types
	return nil
}

// LoadOverridesFile reads and applies a YAML tuning file.
func LoadOverridesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadOverrides(data)
}

func validate(grid *GridConfig, sm *SmootherConfig, det *DetectionConfig) error {
	if grid.Gap <= 0 {
		return fmt.Errorf("config: grid gap must be positive, got %v", grid.Gap)
	}
	if sm.Segments < 1 || sm.FastSegments < 1 {
		return fmt.Errorf("config: smoother segments must be at least 1")
	}
	if det.RasterScale <= 0 {
		return fmt.Errorf("config: raster scale must be positive, got %v", det.RasterScale)
	}
	return nil
}
