package render

import (
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawGrid draws floor, barriers, keys and exits, plus cell lines when
// config.Debug.ShowGrid is on.
func DrawGrid(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	v := viewFor(screen, level)
	g := level.Grid
	gap := v.len(g.Gap)

	g.Each(func(n *grid.Node) {
		x, y := v.pt(n.X-g.Gap/2, n.Y-g.Gap/2)
		switch {
		case n.IsBarrier:
			vector.FillRect(screen, x, y, gap, gap, barrierColor, false)
		case n.Zone > 0:
			vector.FillRect(screen, x, y, gap, gap, zoneColors[(n.Zone-1)%len(zoneColors)], false)
		default:
			vector.FillRect(screen, x, y, gap, gap, floorColor, false)
		}

		inset := gap / 4
		if n.IsKey {
			vector.FillRect(screen, x+inset, y+inset, gap-2*inset, gap-2*inset, colornames.Gold, false)
		}
		if n.IsExit {
			vector.StrokeRect(screen, x+2, y+2, gap-4, gap-4, 2, colornames.Limegreen, false)
		}
	})

	if !config.Debug.ShowGrid {
		return
	}
	side := v.len(g.WorldSize())
	for i := 0; i <= g.Size; i++ {
		p := float32(i) * gap
		vector.StrokeLine(screen, p, 0, p, side, 1, gridColor, false)
		vector.StrokeLine(screen, 0, p, side, p, 1, gridColor, false)
	}
}
