package components

import (
	"math/rand/v2"

	"github.com/automoto/lurk/shared/grid"
	"github.com/automoto/lurk/shared/leveldata"
	"github.com/automoto/lurk/shared/pathfind"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map        *leveldata.MapData
	Grid       *grid.Grid
	Pathfinder *pathfind.Pathfinder
	Rand       *rand.Rand
	Frame      int
}

var Level = donburi.NewComponentType[LevelData]()
