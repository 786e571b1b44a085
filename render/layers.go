// Package render draws the simulation with flat vector shapes.
package render

import (
	"image/color"

	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

var (
	floorColor   = color.RGBA{R: 28, G: 28, B: 34, A: 255}
	barrierColor = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	gridColor    = color.RGBA{R: 45, G: 45, B: 55, A: 255}
	rasterTint   = color.RGBA{R: 255, G: 255, B: 160, A: 255}
)

// zoneColors tints floor cells by zone id, cycling when ids run past the
// palette.
var zoneColors = []color.RGBA{
	{R: 34, G: 30, B: 40, A: 255},
	{R: 30, G: 38, B: 34, A: 255},
	{R: 40, G: 36, B: 28, A: 255},
	{R: 28, G: 34, B: 42, A: 255},
}

// stateColor picks the draw colour for an agent's behavior mode.
func stateColor(kind config.AgentTypeConfig, state config.AgentStateID) color.Color {
	switch state {
	case config.StateChasing:
		return colornames.Red
	case config.StateEscaping:
		return colornames.Gold
	case config.StateInvestigating:
		return colornames.Orange
	default:
		return kind.Color
	}
}

// view maps world coordinates onto the screen. Levels are square, so one
// scale fits the world into the shorter screen side.
type view struct {
	scale float32
}

func viewFor(screen *ebiten.Image, level *components.LevelData) view {
	size := level.Grid.WorldSize()
	if size <= 0 {
		return view{scale: 1}
	}
	b := screen.Bounds()
	side := min(b.Dx(), b.Dy())
	return view{scale: float32(float64(side) / size)}
}

func (v view) pt(x, y float64) (float32, float32) {
	return float32(x) * v.scale, float32(y) * v.scale
}

func (v view) len(d float64) float32 {
	return float32(d) * v.scale
}

func levelOf(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
