// Package leveldata parses grid maps from CSV tables or Tiled TMX files.
// Parsing is pure data; Build turns a parsed map into a navigation grid.
package leveldata

import "errors"

// ErrMalformedMap is wrapped by every parse failure caused by map content.
var ErrMalformedMap = errors.New("leveldata: malformed map")

// Cell is one parsed map cell.
type Cell struct {
	Barrier bool
	Zone    int
	Key     bool
	Exit    bool
}

// CellPos addresses a cell by row and column.
type CellPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// AgentSpawn places one agent at load time.
type AgentSpawn struct {
	Kind    string  `yaml:"kind"`
	Row     int     `yaml:"row"`
	Col     int     `yaml:"col"`
	Zones   []int   `yaml:"zones"`
	Heading float64 `yaml:"heading"`
}

// MapData is a square map: Size rows of Size cells.
type MapData struct {
	Name        string
	Size        int
	Cells       [][]Cell
	Tiles       [][]int // visual tile ids, -1 where empty
	PlayerSpawn CellPos
	Agents      []AgentSpawn
}

func newMapData(name string, size int) *MapData {
	m := &MapData{
		Name:  name,
		Size:  size,
		Cells: make([][]Cell, size),
		Tiles: make([][]int, size),
	}
	for row := range m.Cells {
		m.Cells[row] = make([]Cell, size)
		m.Tiles[row] = make([]int, size)
		for col := range m.Tiles[row] {
			m.Tiles[row][col] = -1
		}
	}
	return m
}

// ApplyFloating clears the barrier flag of every cell whose tile id is one
// of floating. It must run after barriers are parsed.
func (m *MapData) ApplyFloating(floating []int) {
	if len(floating) == 0 {
		return
	}
	ids := make(map[int]struct{}, len(floating))
	for _, id := range floating {
		ids[id] = struct{}{}
	}
	for row := range m.Tiles {
		for col, id := range m.Tiles[row] {
			if _, ok := ids[id]; ok {
				m.Cells[row][col].Barrier = false
			}
		}
	}
}
