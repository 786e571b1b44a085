package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Manifest describes a level: its CSV tables or TMX map plus spawn
// placement.
type Manifest struct {
	Name     string       `yaml:"name"`
	Border   string       `yaml:"border"`
	Tiles    string       `yaml:"tiles"`
	TMX      string       `yaml:"tmx"`
	Floating []int        `yaml:"floating"`
	Player   CellPos      `yaml:"player"`
	Agents   []AgentSpawn `yaml:"agents"`
}

// LoadManifest reads a level manifest and the map it references. Table
// paths are relative to the manifest. A manifest naming a tmx file loads
// the Tiled map instead of CSV tables; its agents, if any, replace the
// spawns found in the TMX.
func LoadManifest(fsys fs.FS, manifestPath string) (*MapData, error) {
	raw, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}
	var man Manifest
	if err := yaml.Unmarshal(raw, &man); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %v: %w", manifestPath, err, ErrMalformedMap)
	}

	dir := path.Dir(manifestPath)
	var m *MapData
	switch {
	case man.TMX != "":
		m, err = LoadTMX(fsys, path.Join(dir, man.TMX))
		if err == nil {
			m.ApplyFloating(man.Floating)
		}
	case man.Border != "":
		tiles := ""
		if man.Tiles != "" {
			tiles = path.Join(dir, man.Tiles)
		}
		m, err = LoadCSV(fsys, path.Join(dir, man.Border), tiles, man.Floating)
	default:
		return nil, fmt.Errorf("manifest %s: no border table or tmx: %w", manifestPath, ErrMalformedMap)
	}
	if err != nil {
		return nil, err
	}

	if man.Name != "" {
		m.Name = man.Name
	}
	if man.TMX == "" || man.Player != (CellPos{}) {
		m.PlayerSpawn = man.Player
	}
	if len(man.Agents) > 0 {
		m.Agents = man.Agents
	}
	if err := m.validateSpawns(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", manifestPath, err)
	}
	return m, nil
}

func (m *MapData) inside(row, col int) bool {
	return row >= 0 && col >= 0 && row < m.Size && col < m.Size
}

func (m *MapData) validateSpawns() error {
	if !m.inside(m.PlayerSpawn.Row, m.PlayerSpawn.Col) {
		return fmt.Errorf("player spawn (%d,%d) outside map: %w", m.PlayerSpawn.Row, m.PlayerSpawn.Col, ErrMalformedMap)
	}
	for i, a := range m.Agents {
		if !m.inside(a.Row, a.Col) {
			return fmt.Errorf("agent %d (%s) at (%d,%d) outside map: %w", i, a.Kind, a.Row, a.Col, ErrMalformedMap)
		}
	}
	return nil
}
