package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names.
const (
	LayerWalls       = "walls"
	LayerTiles       = "tiles"
	GroupZones       = "Zones"
	GroupKeys        = "Keys"
	GroupExits       = "Exits"
	GroupAgentSpawn  = "AgentSpawn"
	GroupPlayerSpawn = "PlayerSpawn"
)

// LoadTMX parses a Tiled map. Any tile on the walls layer is a barrier.
// Zone rectangles assign their "zone" property to every cell whose centre
// they contain. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width != levelMap.Height {
		return nil, fmt.Errorf("TMX %s: %dx%d map is not square: %w", tmxPath, levelMap.Width, levelMap.Height, ErrMalformedMap)
	}

	size := levelMap.Width
	m := newMapData(strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"), size)
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerWalls:
			for i, tile := range layer.Tiles {
				if !tile.IsNil() {
					m.Cells[i/size][i%size].Barrier = true
				}
			}
		case LayerTiles:
			for i, tile := range layer.Tiles {
				if !tile.IsNil() {
					m.Tiles[i/size][i%size] = int(tile.ID)
				}
			}
		}
	}

	cellOf := func(x, y float64) (int, int, bool) {
		row := int(math.Floor(y / tileH))
		col := int(math.Floor(x / tileW))
		return row, col, m.inside(row, col)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupZones:
			for _, o := range og.Objects {
				zone := o.Properties.GetInt("zone")
				for row := 0; row < size; row++ {
					for col := 0; col < size; col++ {
						cx := (float64(col) + 0.5) * tileW
						cy := (float64(row) + 0.5) * tileH
						if cx >= o.X && cx < o.X+o.Width && cy >= o.Y && cy < o.Y+o.Height {
							m.Cells[row][col].Zone = zone
						}
					}
				}
			}
		case GroupKeys, GroupExits:
			for _, o := range og.Objects {
				row, col, ok := cellOf(o.X+o.Width/2, o.Y+o.Height/2)
				if !ok {
					return nil, fmt.Errorf("TMX %s: %s object %d outside map: %w", tmxPath, og.Name, o.ID, ErrMalformedMap)
				}
				if og.Name == GroupKeys {
					m.Cells[row][col].Key = true
				} else {
					m.Cells[row][col].Exit = true
				}
			}
		case GroupAgentSpawn:
			for _, o := range og.Objects {
				row, col, ok := cellOf(o.X, o.Y)
				if !ok {
					return nil, fmt.Errorf("TMX %s: agent spawn %d outside map: %w", tmxPath, o.ID, ErrMalformedMap)
				}
				zones, err := parseZones(o.Properties.GetString("zones"))
				if err != nil {
					return nil, fmt.Errorf("TMX %s: agent spawn %d: %w", tmxPath, o.ID, err)
				}
				m.Agents = append(m.Agents, AgentSpawn{
					Kind:    o.Properties.GetString("kind"),
					Row:     row,
					Col:     col,
					Zones:   zones,
					Heading: o.Properties.GetFloat("heading"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				row, col, ok := cellOf(o.X, o.Y)
				if ok {
					m.PlayerSpawn = CellPos{Row: row, Col: col}
				}
			}
		}
	}

	// Spawn order follows reading order so entity creation is stable.
	sort.SliceStable(m.Agents, func(i, j int) bool {
		if m.Agents[i].Row != m.Agents[j].Row {
			return m.Agents[i].Row < m.Agents[j].Row
		}
		return m.Agents[i].Col < m.Agents[j].Col
	})

	return m, nil
}

// parseZones reads a comma separated zone list such as "1,3".
func parseZones(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	zones := make([]int, 0, len(parts))
	for _, p := range parts {
		z, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("zone list %q: %w", s, ErrMalformedMap)
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// LoadAll loads every *.yaml manifest in dir within fsys and returns the
// maps keyed by name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*MapData, []string, error) {
	pattern := path.Join(dir, "*.yaml")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level manifests found in %s", dir)
	}

	levels := make(map[string]*MapData, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		m, err := LoadManifest(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[m.Name] = m
		names = append(names, m.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
